package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs one game on the process console until it ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return PlayGame(ctx, logger, conf, os.Stdin, os.Stdout)
}

// PlayGame sets up the participants from in, plays a single round and prints the result to out.
func PlayGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "method", "PlayGame")

	prompter := console.NewPrompter(in, out)
	renderer := console.NewRenderer(out, !conf.NoColor)

	if !conf.HideInstructions {
		renderer.Instructions()
	}

	setup := usecase.NewSetupUseCase(logger, prompter, conf.BotName)

	participants, err := setup.SetupParticipants(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up participants: %w", err)
	}

	renderer.Roster(participants)

	game := entity.NewGame(pkg.GenerateGameID())

	controller, err := tictactoe.NewRoundController(logger, game, participants, renderer)
	if err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}

	if _, err = controller.Play(ctx); err != nil {
		return fmt.Errorf("failed to play game %s: %w", game.ID, err)
	}

	renderer.Result(game, controller.Winner())
	log.Info("game over", "gameID", game.ID, "status", game.Status, "winner", game.Winner)

	return nil
}
