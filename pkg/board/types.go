package board

// Board dimensions and the line length needed to win
const (
	Rows      = 5
	Cols      = 5
	WinLength = 3
	Size      = Rows * Cols

	// Index of the centre column, the known-strong opening
	Center = Cols / 2
)

type Disc uint8

// Enum for the cell contents
const (
	Empty Disc = iota
	A
	B
)

// Get the other player's disc, Empty stays Empty
func (d Disc) Opponent() Disc {
	switch d {
	case A:
		return B
	case B:
		return A
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case A:
		return "A"
	case B:
		return "B"
	}
	return "."
}

// Symbol used when printing the grid
func (d Disc) Rune() rune {
	switch d {
	case A:
		return 'X'
	case B:
		return 'O'
	}
	return '.'
}

// Create disc from a rune, accepts both the names and the grid symbols
func DiscFromRune(r rune) Disc {
	switch r {
	case 'A', 'a', 'X', 'x':
		return A
	case 'B', 'b', 'O', 'o':
		return B
	}
	return Empty
}
