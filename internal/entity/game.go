package entity

const (
	StatusAwaitingTurn = "awaiting_turn"
	StatusWon          = "won"
	StatusTied         = "tied"

	WinnerUndecided = "undecided"

	MaxTurns = BoardSize
)

// Game is the round state of one match.
type Game struct {
	ID      string `json:"id"`
	Board   *Board `json:"-"`
	Turn    int    `json:"turn"`
	Current int    `json:"current"`
	Status  string `json:"status"`
	Winner  string `json:"winner"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Board:   NewBoard(),
		Turn:    0,
		Current: 0,
		Status:  StatusAwaitingTurn,
		Winner:  WinnerUndecided,
	}
}

func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsTied()
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsTied() bool {
	return that.Status == StatusTied
}

func (that *Game) IsAwaitingTurn() bool {
	return that.Status == StatusAwaitingTurn
}

// NextPlayer returns the index of the participant moving after the current one.
func (that *Game) NextPlayer() int {
	return 1 - that.Current
}
