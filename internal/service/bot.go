package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type randomSource interface {
	Intn(n int) int
}

type announcer interface {
	Say(msg string)
}

// BotPlayer proposes a uniformly random position on every request, taken or not.
type BotPlayer struct {
	*entity.Player

	rnd       randomSource
	announcer announcer
}

func NewBotPlayer(name, mark string, announcer announcer) *BotPlayer {
	return NewBotPlayerWithSource(name, mark, rand.New(rand.NewSource(time.Now().UnixNano())), announcer) //nolint: gosec // it's ok
}

func NewBotPlayerWithSource(name, mark string, rnd randomSource, announcer announcer) *BotPlayer {
	return &BotPlayer{
		Player:    entity.NewPlayer(name, mark, entity.BotKind),
		rnd:       rnd,
		announcer: announcer,
	}
}

func (that *BotPlayer) ChooseNextPosition(ctx context.Context, _ *entity.Board) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("bot interrupted: %w", err)
	}

	position := entity.Positions[that.rnd.Intn(len(entity.Positions))]
	that.SetPlacement(position)

	that.announcer.Say(fmt.Sprintf("%s chose %s", that.Name, position))

	return position, nil
}
