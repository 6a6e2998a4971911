package board

import (
	"fmt"
	"strings"
)

// Grid state of a game. Row 0 is the top of the board, discs fall
// towards row Rows-1. Not safe for concurrent use, search engines mutate it
// in place and must undo every drop in reverse order.
type Board struct {
	grid    [Rows][Cols]Disc
	free    [Cols]int // next free row per column, -1 when the column is full
	history []int
}

func NewBoard() *Board {
	b := &Board{history: make([]int, 0, Size)}
	for c := range b.free {
		b.free[c] = Rows - 1
	}
	return b
}

// Place 'disc' in the lowest free row of 'column', returns false if the
// column is out of range or full
func (b *Board) Drop(column int, disc Disc) bool {
	if !b.IsValidColumn(column) || disc == Empty {
		return false
	}

	b.grid[b.free[column]][column] = disc
	b.free[column]--
	b.history = append(b.history, column)
	return true
}

// Same as Drop, but reports why the move was rejected
func (b *Board) Play(column int, disc Disc) error {
	if column < 0 || column >= Cols {
		return fmt.Errorf("%w: %d (expected 1..%d)", ErrInvalidColumn, column+1, Cols)
	}
	if b.free[column] < 0 {
		return fmt.Errorf("%w: %d", ErrColumnFull, column+1)
	}
	if !b.Drop(column, disc) {
		return fmt.Errorf("%w: cannot drop %v", ErrInvalidColumn, disc)
	}
	return nil
}

// Reverse the most recent placement, which must have been made in 'column'
func (b *Board) Undo(column int) {
	if column < 0 || column >= Cols || b.free[column] == Rows-1 {
		panic(fmt.Errorf("%w: undo on empty column %d", ErrEngineMisuse, column))
	}
	if n := len(b.history); n == 0 || b.history[n-1] != column {
		panic(fmt.Errorf("%w: undo of column %d out of order, history %v", ErrEngineMisuse, column, b.history))
	}

	b.free[column]++
	b.grid[b.free[column]][column] = Empty
	b.history = b.history[:len(b.history)-1]
}

// Check if 'disc' has WinLength cells in a row in any direction
func (b *Board) CheckWin(disc Disc) bool {
	if disc == Empty {
		return false
	}

	// right, down, down-right, down-left
	directions := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.grid[row][col] != disc {
				continue
			}
			for _, dir := range directions {
				if b.line(row, col, dir[0], dir[1], disc) {
					return true
				}
			}
		}
	}
	return false
}

func (b *Board) line(row, col, dr, dc int, disc Disc) bool {
	for k := 1; k < WinLength; k++ {
		r, c := row+k*dr, col+k*dc
		if r < 0 || r >= Rows || c < 0 || c >= Cols || b.grid[r][c] != disc {
			return false
		}
	}
	return true
}

// Get the disc which has a winning line, Empty if there is none
func (b *Board) Winner() Disc {
	if b.CheckWin(A) {
		return A
	}
	if b.CheckWin(B) {
		return B
	}
	return Empty
}

// Columns with room left, in ascending order
func (b *Board) AvailableColumns() []int {
	columns := make([]int, 0, Cols)
	for c := 0; c < Cols; c++ {
		if b.free[c] >= 0 {
			columns = append(columns, c)
		}
	}
	return columns
}

func (b *Board) IsValidColumn(column int) bool {
	return column >= 0 && column < Cols && b.free[column] >= 0
}

func (b *Board) IsEmpty() bool {
	return len(b.history) == 0
}

func (b *Board) IsFull() bool {
	return len(b.history) == Size
}

// Get the cell at given row (0 = top) and column
func (b *Board) At(row, column int) Disc {
	return b.grid[row][column]
}

// Number of discs in the column
func (b *Board) Height(column int) int {
	return Rows - 1 - b.free[column]
}

// Number of discs placed so far
func (b *Board) Moves() int {
	return len(b.history)
}

// Columns played so far, in order. The returned slice is a copy
func (b *Board) History() []int {
	history := make([]int, len(b.history))
	copy(history, b.history)
	return history
}

// Side to move, given the disc that started the game
func (b *Board) ToMove(first Disc) Disc {
	if len(b.history)%2 == 0 {
		return first
	}
	return first.Opponent()
}

// Independent deep copy of the board
func (b *Board) Clone() *Board {
	clone := &Board{
		grid:    b.grid,
		free:    b.free,
		history: make([]int, len(b.history), Size),
	}
	copy(clone.history, b.history)
	return clone
}

// Board with the column order reversed, history is mirrored as well
func (b *Board) Mirror() *Board {
	mirror := b.Clone()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			mirror.grid[row][Cols-1-col] = b.grid[row][col]
		}
	}
	for col := 0; col < Cols; col++ {
		mirror.free[Cols-1-col] = b.free[col]
	}
	for i, col := range b.history {
		mirror.history[i] = Cols - 1 - col
	}
	return mirror
}

// Reports whether both boards hold the same grid, counters and history
func (b *Board) Equal(other *Board) bool {
	if b.grid != other.grid || b.free != other.free || len(b.history) != len(other.history) {
		return false
	}
	for i := range b.history {
		if b.history[i] != other.history[i] {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	builder := strings.Builder{}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if col > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteRune(b.grid[row][col].Rune())
		}
		builder.WriteByte('\n')
	}
	for col := 0; col < Cols; col++ {
		if col > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprintf(&builder, "%d", col+1)
	}
	builder.WriteByte('\n')
	return builder.String()
}
