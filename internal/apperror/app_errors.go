package apperror

import "errors"

var (
	ErrGameFinished          = errors.New("game is already finished")
	ErrCellOccupied          = errors.New("cell is already occupied")
	ErrInvalidPosition       = errors.New("invalid position")
	ErrInvalidSymbol         = errors.New("invalid symbol")
	ErrInvalidSymbolChoice   = errors.New("symbol choice is invalid")
	ErrDuplicateSymbolChoice = errors.New("symbol is already taken")
	ErrInvalidOpponentChoice = errors.New("opponent choice is invalid")
	ErrSameMarks             = errors.New("participants hold the same mark")
)
