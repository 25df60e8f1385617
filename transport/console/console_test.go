package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

func TestPrompter_Ask(t *testing.T) {
	t.Run("Returns lines in order and EOF at the end", func(t *testing.T) {
		// Given: a prompter over two input lines
		out := &bytes.Buffer{}
		prompter := NewPrompter(strings.NewReader("alice\n 5 \n"), out)

		// When: asking three times
		first, err := prompter.Ask(context.Background(), "name? ")
		require.NoError(t, err)
		second, err := prompter.Ask(context.Background(), "cell? ")
		require.NoError(t, err)
		_, err = prompter.Ask(context.Background(), "again? ")

		// Then: lines are returned untrimmed, then io.EOF
		assert.Equal(t, "alice", first)
		assert.Equal(t, " 5 ", second)
		require.ErrorIs(t, err, io.EOF)
		assert.Equal(t, "name? cell? again? ", out.String())
	})

	t.Run("Gives up when the context is cancelled", func(t *testing.T) {
		// Given: input that never produces a line
		reader, writer := io.Pipe()
		defer writer.Close()

		prompter := NewPrompter(reader, io.Discard)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		// When: asking
		_, err := prompter.Ask(ctx, "name? ")

		// Then: the context error is returned
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Say writes a full line", func(t *testing.T) {
		out := &bytes.Buffer{}
		prompter := NewPrompter(strings.NewReader(""), out)

		prompter.Say("hello")

		assert.Equal(t, "hello\n", out.String())
	})
}

func TestRenderer_RenderBoard(t *testing.T) {
	// Given: a board with marks at 1, 5 and 9
	board := entity.NewBoard()
	require.NoError(t, board.Occupy("1", entity.PlayerX))
	require.NoError(t, board.Occupy("5", entity.PlayerO))
	require.NoError(t, board.Occupy("9", entity.PlayerX))

	renderer := NewRenderer(io.Discard, false)

	// When: rendering without colors
	rendered := renderer.RenderBoard(board)

	// Then: three rows separated by pipes with blanks for empty cells
	assert.Equal(t, "X| | \n |O| \n | |X\n", rendered)
}

func TestRenderer_RenderBoard_Colored(t *testing.T) {
	board := entity.NewBoard()
	require.NoError(t, board.Occupy("2", entity.PlayerO))

	rendered := NewRenderer(io.Discard, true).RenderBoard(board)

	// color codes may be stripped when the output is not a terminal
	assert.Contains(t, rendered, "O")
	assert.Equal(t, 3, strings.Count(rendered, "\n"))
	assert.Equal(t, 6, strings.Count(rendered, "|"))
}

func TestRenderer_Notifications(t *testing.T) {
	t.Run("BoardChanged prints the board", func(t *testing.T) {
		out := &bytes.Buffer{}
		NewRenderer(out, false).BoardChanged(entity.NewBoard())

		assert.Equal(t, " | | \n | | \n | | \n", out.String())
	})

	t.Run("PlacementRejected distinguishes occupied and unknown cells", func(t *testing.T) {
		out := &bytes.Buffer{}
		renderer := NewRenderer(out, false)

		renderer.PlacementRejected(nil, "5", apperror.ErrCellOccupied)
		renderer.PlacementRejected(nil, "0", apperror.ErrInvalidPosition)

		assert.Equal(t, messageCellTaken+"\n"+messageInvalidPosition+"\n", out.String())
	})

	t.Run("Instructions show the position template", func(t *testing.T) {
		out := &bytes.Buffer{}
		NewRenderer(out, false).Instructions()

		assert.Contains(t, out.String(), "|1|2|3|")
		assert.Contains(t, out.String(), "|7|8|9|")
	})
}

func TestRenderer_Roster(t *testing.T) {
	// Given: a human and a computer
	out := &bytes.Buffer{}
	human := service.NewHumanPlayer(entity.NewPlayer("alice", entity.PlayerX, entity.HumanKind), nil)
	bot := service.NewBotPlayer("Computer", entity.PlayerO, nil)

	// When: printing the roster
	NewRenderer(out, false).Roster([2]tictactoe.Participant{human, bot})

	// Then: both rows are listed with their kind
	rendered := out.String()
	assert.Contains(t, rendered, "Alice")
	assert.Contains(t, rendered, "Computer")
	assert.Contains(t, rendered, entity.HumanKind)
	assert.Contains(t, rendered, entity.BotKind)
}

func TestRenderer_Result(t *testing.T) {
	t.Run("Announces the winner by name", func(t *testing.T) {
		out := &bytes.Buffer{}
		game := entity.NewGame("g")
		game.Status = entity.StatusWon
		game.Winner = entity.PlayerX
		winner := service.NewHumanPlayer(entity.NewPlayer("alice", entity.PlayerX, entity.HumanKind), nil)

		NewRenderer(out, false).Result(game, winner)

		assert.True(t, strings.HasSuffix(out.String(), "Game end. Winner is Alice!\n"))
	})

	t.Run("Announces a tie", func(t *testing.T) {
		out := &bytes.Buffer{}
		game := entity.NewGame("g")
		game.Status = entity.StatusTied

		NewRenderer(out, false).Result(game, nil)

		assert.True(t, strings.HasSuffix(out.String(), messageTie+"\n"))
	})
}
