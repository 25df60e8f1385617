package entity

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// Positions are the labels players use to address cells, in board order.
var Positions = [BoardSize]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Board is the 3x3 grid. A cell is written at most once and never cleared.
type Board struct {
	cells [BoardSize]string
}

func NewBoard() *Board {
	return &Board{}
}

func IsValidMark(mark string) bool {
	return mark == PlayerX || mark == PlayerO
}

func IsValidPosition(position string) bool {
	return positionIndex(position) >= 0
}

func positionIndex(position string) int {
	return lo.IndexOf(Positions[:], position)
}

// Occupy places mark on the cell addressed by position.
func (that *Board) Occupy(position, mark string) error {
	index := positionIndex(position)
	if index < 0 {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, position)
	}

	if !IsValidMark(mark) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, mark)
	}

	if that.cells[index] != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, position)
	}

	that.cells[index] = mark

	return nil
}

// IsEmpty reports false for unknown positions.
func (that *Board) IsEmpty(position string) bool {
	index := positionIndex(position)
	if index < 0 {
		return false
	}

	return that.cells[index] == EmptyCell
}

func (that *Board) Cell(position string) string {
	index := positionIndex(position)
	if index < 0 {
		return EmptyCell
	}

	return that.cells[index]
}

func (that *Board) Snapshot() [BoardSize]string {
	return that.cells
}

func (that *Board) EmptyPositions() []string {
	return lo.Filter(Positions[:], func(position string, index int) bool {
		return that.cells[index] == EmptyCell
	})
}

func (that *Board) Occupied() int {
	return lo.CountBy(that.cells[:], func(cell string) bool {
		return cell != EmptyCell
	})
}

func (that *Board) IsFull() bool {
	return that.Occupied() == BoardSize
}
