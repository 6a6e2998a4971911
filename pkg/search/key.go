package search

import "github.com/IlikeChooros/go-connect3/pkg/board"

// Exact key of a grid position, relative to the side to move: 2 bits per
// cell (0 empty, 1 own, 2 opponent's), cell (row, col) at bit
// 2*(row*Cols+col). The smaller of the packing and the packing of the
// mirrored grid is used, so mirror images share one key. 50 bits, no
// collisions.
func GridKey(b *board.Board, toMove board.Disc) uint64 {
	var key, mirror uint64
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			var cell uint64
			switch b.At(row, col) {
			case board.Empty:
				continue
			case toMove:
				cell = 1
			default:
				cell = 2
			}
			key |= cell << (2 * (row*board.Cols + col))
			mirror |= cell << (2 * (row*board.Cols + board.Cols - 1 - col))
		}
	}
	return min(key, mirror)
}
