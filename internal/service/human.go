package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// HumanPlayer reads positions from the console without checking them.
type HumanPlayer struct {
	*entity.Player

	prompter prompter
}

func NewHumanPlayer(player *entity.Player, prompter prompter) *HumanPlayer {
	player.Kind = entity.HumanKind

	return &HumanPlayer{
		Player:   player,
		prompter: prompter,
	}
}

func (that *HumanPlayer) ChooseNextPosition(ctx context.Context, _ *entity.Board) (string, error) {
	answer, err := that.prompter.Ask(ctx, fmt.Sprintf("%s, where would you like to place your token? ", that.Name))
	if err != nil {
		return "", fmt.Errorf("failed to read placement of %s: %w", that.Name, err)
	}

	position := strings.TrimSpace(answer)
	that.SetPlacement(position)

	return position, nil
}
