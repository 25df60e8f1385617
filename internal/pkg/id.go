package pkg

import "github.com/google/uuid"

// GenerateGameID returns a random identifier used to correlate log lines of one game.
func GenerateGameID() string {
	return uuid.NewString()
}
