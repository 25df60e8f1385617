package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

const NoWinner = entity.EmptyCell

// winTriples: 3 rows, 3 columns, 2 diagonals. Read-only.
var winTriples = [8][3]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{"1", "4", "7"},
	{"2", "5", "8"},
	{"3", "6", "9"},
	{"1", "5", "9"},
	{"3", "5", "7"},
}

// WinTriples returns a copy of the win table.
func WinTriples() [8][3]string {
	return winTriples
}

// Evaluate returns the mark holding a full triple, or NoWinner.
func Evaluate(board *entity.Board) string {
	for _, triple := range winTriples {
		a, b, c := board.Cell(triple[0]), board.Cell(triple[1]), board.Cell(triple[2])
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return NoWinner
}
