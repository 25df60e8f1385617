package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrParticipantMissing = errors.New("participant is missing")

// Participant proposes positions for its mark. Legality is checked by the RoundController only.
type Participant interface {
	GetName() string
	GetMark() string
	GetPlacement() string

	ChooseNextPosition(ctx context.Context, board *entity.Board) (string, error)
}

// Notifier is told about board state and rejected placements.
type Notifier interface {
	BoardChanged(board *entity.Board)
	PlacementRejected(participant Participant, position string, err error)
}

// RoundController alternates turns between two participants until one wins or the board is exhausted.
type RoundController struct {
	logger   *slog.Logger
	notifier Notifier

	game         *entity.Game
	participants [2]Participant
}

func NewRoundController(logger *slog.Logger, game *entity.Game, participants [2]Participant, notifier Notifier) (*RoundController, error) {
	for _, participant := range participants {
		if participant == nil {
			return nil, ErrParticipantMissing
		}

		if !entity.IsValidMark(participant.GetMark()) {
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, participant.GetMark())
		}
	}

	if participants[0].GetMark() == participants[1].GetMark() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSameMarks, participants[0].GetMark())
	}

	return &RoundController{
		logger:       logger.With("component", "round", "gameID", game.ID),
		notifier:     notifier,
		game:         game,
		participants: participants,
	}, nil
}

func (that *RoundController) Game() *entity.Game {
	return that.game
}

func (that *RoundController) Participants() [2]Participant {
	return that.participants
}

// Current returns the participant whose turn it is, or nil once the game is over.
func (that *RoundController) Current() Participant {
	if that.game.IsFinished() {
		return nil
	}

	return that.participants[that.game.Current]
}

// Winner returns the winning participant, or nil unless the game is won.
func (that *RoundController) Winner() Participant {
	if !that.game.IsWon() {
		return nil
	}

	for _, participant := range that.participants {
		if participant.GetMark() == that.game.Winner {
			return participant
		}
	}

	return nil
}

// Play runs turns until the game is won or tied.
func (that *RoundController) Play(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "Play")
	log.Info("game started")

	for !that.game.IsFinished() {
		if err := that.PlayTurn(ctx); err != nil {
			return that.game, fmt.Errorf("failed to play turn %d: %w", that.game.Turn+1, err)
		}
	}

	log.Info("game finished", "status", that.game.Status, "winner", that.game.Winner, "turns", that.game.Turn)

	return that.game, nil
}

// PlayTurn asks the current participant until a legal placement is made, then applies it.
func (that *RoundController) PlayTurn(ctx context.Context) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	participant := that.participants[that.game.Current]
	log := that.logger.With("method", "PlayTurn", "turn", that.game.Turn+1, "mark", participant.GetMark())

	that.notifier.BoardChanged(that.game.Board)

	for {
		position, err := participant.ChooseNextPosition(ctx, that.game.Board)
		if err != nil {
			return fmt.Errorf("failed to choose position: %w", err)
		}

		err = that.game.Board.Occupy(position, participant.GetMark())
		if err == nil {
			log.Debug("placement accepted", "position", position)
			break
		}

		if !isIllegalPlacement(err) {
			return fmt.Errorf("failed to occupy cell: %w", err)
		}

		log.Debug("placement rejected", "position", position, "error", err)
		that.notifier.PlacementRejected(participant, position, err)
	}

	that.game.Turn++
	that.updateGameStatus()

	return nil
}

// updateGameStatus - checks the game status after a placement.
func (that *RoundController) updateGameStatus() {
	switch winner := Evaluate(that.game.Board); {
	case winner != NoWinner:
		that.game.Winner = winner
		that.game.Status = entity.StatusWon
	case that.game.Turn >= entity.MaxTurns:
		that.game.Status = entity.StatusTied
	default:
		that.game.Current = that.game.NextPlayer()
	}
}

func isIllegalPlacement(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidPosition)
}
