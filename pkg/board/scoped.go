package board

import "fmt"

// Drop 'disc' into 'column', run fn on the board and always undo the drop
// before returning, even if fn panics. Search code uses this instead of
// pairing Drop/Undo by hand, so pruning can return early without leaking
// a mutation.
func Scoped[T any](b *Board, column int, disc Disc, fn func(*Board) T) T {
	if !b.Drop(column, disc) {
		panic(fmt.Errorf("%w: scoped drop into unavailable column %d", ErrEngineMisuse, column))
	}
	defer b.Undo(column)
	return fn(b)
}
