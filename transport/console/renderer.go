package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const instructions = `
                    Welcome!!!!!!
                    ~How to Play~
To choose which part of the board, please use this template:
                       |1|2|3|
                       |4|5|6|
                       |7|8|9|

                      Objective:
Get three of your respective symbol in a row, column or diagonal,
        while obstructing the other from being able to.
                     For example:
                       |X| |O|
                       |X|X|O|
                       |O| |X|
                 In this case, X wins.
`

const (
	messageCellTaken       = "Sorry that placement is already taken. Please choose another."
	messageInvalidPosition = "Sorry that placement is not on the board. Please choose a number from 1 to 9."
	messageTie             = "Game ends. It's a tie :P"
)

// Renderer prints the board and game messages. It implements tictactoe.Notifier.
type Renderer struct {
	out     io.Writer
	colored bool
}

func NewRenderer(out io.Writer, colored bool) *Renderer {
	return &Renderer{
		out:     out,
		colored: colored,
	}
}

// RenderBoard formats the board as three rows of cells separated by "|".
func (that *Renderer) RenderBoard(board *entity.Board) string {
	cells := board.Snapshot()

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&sb, "%s|%s|%s\n",
			that.renderCell(cells[row*3]),
			that.renderCell(cells[row*3+1]),
			that.renderCell(cells[row*3+2]),
		)
	}

	return sb.String()
}

func (that *Renderer) renderCell(mark string) string {
	switch {
	case mark == entity.EmptyCell:
		return " "
	case !that.colored:
		return mark
	case mark == entity.PlayerX:
		return color.FgRed.Render(mark)
	default:
		return color.FgCyan.Render(mark)
	}
}

func (that *Renderer) BoardChanged(board *entity.Board) {
	fmt.Fprint(that.out, that.RenderBoard(board))
}

func (that *Renderer) PlacementRejected(_ tictactoe.Participant, _ string, err error) {
	if errors.Is(err, apperror.ErrCellOccupied) {
		fmt.Fprintln(that.out, messageCellTaken)
		return
	}

	fmt.Fprintln(that.out, messageInvalidPosition)
}

func (that *Renderer) Instructions() {
	fmt.Fprint(that.out, instructions)
}

// Roster prints who plays which mark.
func (that *Renderer) Roster(participants [2]tictactoe.Participant) {
	table := tablewriter.NewWriter(that.out)
	table.SetHeader([]string{"Player", "Symbol", "Type"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, participant := range participants {
		kind := entity.HumanKind
		if bot, ok := participant.(interface{ IsBot() bool }); ok && bot.IsBot() {
			kind = entity.BotKind
		}

		table.Append([]string{participant.GetName(), participant.GetMark(), kind})
	}

	table.Render()
}

// Result prints the final board and the outcome.
func (that *Renderer) Result(game *entity.Game, winner tictactoe.Participant) {
	fmt.Fprint(that.out, that.RenderBoard(game.Board))

	if game.IsWon() && winner != nil {
		fmt.Fprintf(that.out, "Game end. Winner is %s!\n", winner.GetName())
		return
	}

	fmt.Fprintln(that.out, messageTie)
}
