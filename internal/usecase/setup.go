package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	OpponentBot   = "1"
	OpponentHuman = "2"
)

const (
	questionOpponent = "Would you like to play versus a computer (1) or someone else (2)? Please enter 1 or 2 "
	questionName     = "What is your name? "
	questionSymbol   = "What symbol would you like to play? (X or O) "

	messageInvalidOpponent = "Please enter either 1 (versus computer) or 2 (versus another human)"
	messageInvalidSymbol   = "That symbol is invalid. Please choose again."
	messageSymbolTaken     = "Symbol is taken. Please choose again."
)

var validate = validator.New()

type console interface {
	Ask(ctx context.Context, question string) (string, error)
	Say(msg string)
}

type SetupUseCase interface {
	SetupParticipants(ctx context.Context) ([2]tictactoe.Participant, error)
}

type setupUseCase struct {
	logger  *slog.Logger
	console console
	botName string

	newBot func(name, mark string) tictactoe.Participant
}

func NewSetupUseCase(logger *slog.Logger, console console, botName string) SetupUseCase {
	return &setupUseCase{
		logger:  logger.With("component", "setup"),
		console: console,
		botName: botName,
		newBot: func(name, mark string) tictactoe.Participant {
			return service.NewBotPlayer(name, mark, console)
		},
	}
}

// SetupParticipants asks for the opponent type, then builds two participants holding distinct marks.
func (that *setupUseCase) SetupParticipants(ctx context.Context) ([2]tictactoe.Participant, error) {
	log := that.logger.With("method", "SetupParticipants")

	var participants [2]tictactoe.Participant

	opponent, err := that.askOpponent(ctx)
	if err != nil {
		return participants, fmt.Errorf("failed to choose opponent: %w", err)
	}

	first, err := that.askHuman(ctx, "")
	if err != nil {
		return participants, fmt.Errorf("failed to set up first player: %w", err)
	}
	participants[0] = first

	if opponent == OpponentBot {
		participants[1] = that.newBot(that.botName, OppositeMark(first.GetMark()))
	} else {
		second, err := that.askHuman(ctx, first.GetMark())
		if err != nil {
			return participants, fmt.Errorf("failed to set up second player: %w", err)
		}
		participants[1] = second
	}

	if participants[0].GetMark() == participants[1].GetMark() {
		return participants, fmt.Errorf("%w: %s", apperror.ErrSameMarks, participants[0].GetMark())
	}

	log.Info("participants ready",
		"opponent", opponent,
		"first", participants[0].GetName(), "firstMark", participants[0].GetMark(),
		"second", participants[1].GetName(), "secondMark", participants[1].GetMark(),
	)

	return participants, nil
}

func (that *setupUseCase) askOpponent(ctx context.Context) (string, error) {
	for {
		answer, err := that.console.Ask(ctx, questionOpponent)
		if err != nil {
			return "", err
		}

		opponent := strings.TrimSpace(answer)
		if err = ValidateOpponent(opponent); err == nil {
			return opponent, nil
		}

		that.logger.Debug("opponent choice rejected", "answer", answer, "error", err)
		that.console.Say(messageInvalidOpponent)
	}
}

func (that *setupUseCase) askHuman(ctx context.Context, takenMark string) (*service.HumanPlayer, error) {
	name, err := that.console.Ask(ctx, questionName)
	if err != nil {
		return nil, err
	}

	mark, err := that.askMark(ctx, takenMark)
	if err != nil {
		return nil, err
	}

	return service.NewHumanPlayer(entity.NewPlayer(name, mark, entity.HumanKind), that.console), nil
}

func (that *setupUseCase) askMark(ctx context.Context, takenMark string) (string, error) {
	for {
		answer, err := that.console.Ask(ctx, questionSymbol)
		if err != nil {
			return "", err
		}

		mark := strings.ToUpper(strings.TrimSpace(answer))

		err = ValidateMark(mark, takenMark)
		switch {
		case err == nil:
			return mark, nil
		case errors.Is(err, apperror.ErrDuplicateSymbolChoice):
			that.console.Say(messageSymbolTaken)
		default:
			that.console.Say(messageInvalidSymbol)
		}

		that.logger.Debug("symbol choice rejected", "answer", answer, "error", err)
	}
}

func ValidateOpponent(opponent string) error {
	if !lo.Contains([]string{OpponentBot, OpponentHuman}, opponent) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidOpponentChoice, opponent)
	}

	return nil
}

// ValidateMark checks a mark against the allowed set and the mark already taken, if any.
func ValidateMark(mark, takenMark string) error {
	if err := validate.Var(mark, "required,oneof=X O"); err != nil {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSymbolChoice, mark)
	}

	if takenMark != "" && mark == takenMark {
		return fmt.Errorf("%w: %s", apperror.ErrDuplicateSymbolChoice, mark)
	}

	return nil
}

func OppositeMark(mark string) string {
	return lo.Ternary(mark == entity.PlayerX, entity.PlayerO, entity.PlayerX)
}
