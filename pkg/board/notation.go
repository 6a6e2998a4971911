package board

import (
	"fmt"
	"strings"
)

// Move notation of the game so far: 1-based column labels, in order.
// For example a game that opened in the centre and was answered on the
// left of it is "32".
func (b *Board) Notation() string {
	builder := strings.Builder{}
	for _, column := range b.history {
		builder.WriteByte('1' + byte(column))
	}
	return builder.String()
}

// Replay a move notation string, 'first' makes the first move and the
// players alternate. Rejects unknown characters, invalid or full columns,
// and moves played after the game was already won.
func FromNotation(notation string, first Disc) (*Board, error) {
	b := NewBoard()
	disc := first

	for i, r := range strings.TrimSpace(notation) {
		if r < '1' || r > '0'+Cols {
			return nil, fmt.Errorf("%w: unexpected character %q at %d", ErrNotation, r, i)
		}
		if b.Winner() != Empty {
			return nil, fmt.Errorf("%w: move %d played after the game ended", ErrNotation, i+1)
		}
		if err := b.Play(int(r-'1'), disc); err != nil {
			return nil, fmt.Errorf("%w: move %d: %w", ErrNotation, i+1, err)
		}
		disc = disc.Opponent()
	}

	return b, nil
}

// Grid notation, much like the FEN of a chessboard: rows from the top,
// separated by '/', 'x' and 'o' for the discs of A and B, digits for runs
// of empty cells. An empty board is "5/5/5/5/5".
func (b *Board) GridNotation() string {
	builder := strings.Builder{}
	for row := 0; row < Rows; row++ {
		counter := 0
		for col := 0; col < Cols; col++ {
			disc := b.grid[row][col]
			if disc == Empty {
				counter++
				continue
			}
			if counter > 0 {
				fmt.Fprintf(&builder, "%d", counter)
				counter = 0
			}
			builder.WriteRune(toLower(disc.Rune()))
		}
		if counter > 0 {
			fmt.Fprintf(&builder, "%d", counter)
		}
		if row != Rows-1 {
			builder.WriteByte('/')
		}
	}
	return builder.String()
}

// Load a position from grid notation. The position does not have to be
// reachable by alternating play, but discs must rest on each other.
// Its history is rebuilt column by column, bottom-up, so Undo works on
// it like on any other board.
func FromGridNotation(notation string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(notation), "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrNotation, Rows, len(rows))
	}

	var grid [Rows][Cols]Disc
	for row, text := range rows {
		col := 0
		for _, r := range text {
			switch {
			case r >= '1' && r <= '9':
				col += int(r - '0')
			case DiscFromRune(r) != Empty:
				if col < Cols {
					grid[row][col] = DiscFromRune(r)
				}
				col++
			default:
				return nil, fmt.Errorf("%w: unexpected character %q in row %d", ErrNotation, r, row+1)
			}
		}
		if col != Cols {
			return nil, fmt.Errorf("%w: row %d describes %d cells", ErrNotation, row+1, col)
		}
	}

	b := NewBoard()
	for col := 0; col < Cols; col++ {
		for row := Rows - 1; row >= 0; row-- {
			if grid[row][col] == Empty {
				// Everything above must be empty as well
				for above := row - 1; above >= 0; above-- {
					if grid[above][col] != Empty {
						return nil, fmt.Errorf("%w: floating disc in column %d", ErrNotation, col+1)
					}
				}
				break
			}
			b.Drop(col, grid[row][col])
		}
	}
	return b, nil
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
