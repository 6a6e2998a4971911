package board

import "errors"

var (
	// Column outside of the 1..Cols range (0..Cols-1 in the API)
	ErrInvalidColumn = errors.New("invalid column")
	// Column has no free row left
	ErrColumnFull = errors.New("column is full")
	// Undo without a matching drop, a bug in the caller
	ErrEngineMisuse = errors.New("engine misuse")
	// Malformed notation string
	ErrNotation = errors.New("invalid notation")
)
