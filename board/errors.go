package board

import "errors"

var (
	// ErrPuzzleLength indicates the puzzle string does not contain exactly 81 cells.
	ErrPuzzleLength = errors.New("board: puzzle must contain 81 cells of digits or dots")
	// ErrBadDigit indicates a cell value outside 0..9.
	ErrBadDigit = errors.New("board: cell values must be 0 (blank) or 1..9")
)
