// Package bitboard encodes a board as two integers for the exact solver.
//
// Column c owns Height consecutive bits starting at c*Height, bottom row
// first. The top bit of each field is a sentinel which is never set in a
// valid mask, it stops line checks and column fills from overflowing into
// the next column:
//
//	 5 11 17 23 29   <- sentinels
//	 4 10 16 22 28
//	 3  9 15 21 27
//	 2  8 14 20 26
//	 1  7 13 19 25
//	 0  6 12 18 24
//
// 'mask' has a bit set for every occupied cell, 'position' for the cells
// of the player to move, so position &^ mask == 0 always holds.
package bitboard

import (
	"math/bits"

	"github.com/IlikeChooros/go-connect3/pkg/board"
)

const (
	// Bits per column: playable rows + the sentinel
	Height = board.Rows + 1
	Width  = board.Cols
)

// Fixed masks, computed once
var (
	BottomMask uint64 // lowest cell of every column
	TopMask    uint64 // highest playable cell of every column
	BoardMask  uint64 // every playable cell
)

func init() {
	for c := 0; c < Width; c++ {
		BottomMask |= BottomMaskCol(c)
		TopMask |= TopMaskCol(c)
		BoardMask |= ColumnMask(c)
	}
}

func BottomMaskCol(column int) uint64 {
	return 1 << (column * Height)
}

func TopMaskCol(column int) uint64 {
	return 1 << (column*Height + board.Rows - 1)
}

func SentinelMaskCol(column int) uint64 {
	return 1 << (column*Height + board.Rows)
}

// Playable cells of the column
func ColumnMask(column int) uint64 {
	return ((1 << board.Rows) - 1) << (column * Height)
}

// Bit index of the grid cell (row 0 is the top of the board)
func Bit(row, column int) uint64 {
	return 1 << (column*Height + board.Rows - 1 - row)
}

// Encode the board from the point of view of 'toMove'
func Encode(b *board.Board, toMove board.Disc) (position, mask uint64) {
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			switch b.At(row, col) {
			case board.Empty:
				continue
			case toMove:
				position |= Bit(row, col)
			}
			mask |= Bit(row, col)
		}
	}
	return position, mask
}

// Lowest free bit of the column, the sentinel bit if the column is full
func DropBit(mask uint64, column int) uint64 {
	return (mask & ColumnMask(column)) + BottomMaskCol(column)
}

func CanPlay(mask uint64, column int) bool {
	return DropBit(mask, column)&SentinelMaskCol(column) == 0
}

// Every column has its top cell taken
func IsFull(mask uint64) bool {
	return mask&TopMask == TopMask
}

// Number of discs on the board
func Count(mask uint64) int {
	return bits.OnesCount64(mask)
}

// Play 'column' for the side to move, the returned position belongs to the
// opponent, who moves next
func Play(position, mask uint64, column int) (uint64, uint64) {
	return position ^ mask, mask | DropBit(mask, column)
}

// Check for board.WinLength (3) discs in a row: vertical (1), horizontal
// (Height), and both diagonals (Height-1, Height+1)
func CheckWin(position uint64) bool {
	for _, shift := range [4]int{1, Height, Height - 1, Height + 1} {
		m := position & (position >> shift)
		if m&(position>>(2*shift)) != 0 {
			return true
		}
	}
	return false
}

// Reverse the column order
func Mirror(x uint64) uint64 {
	const field = (1 << Height) - 1
	var mirrored uint64
	for c := 0; c < Width; c++ {
		mirrored |= ((x >> (c * Height)) & field) << ((Width - 1 - c) * Height)
	}
	return mirrored
}

// Exact identity of a position, not a hash
type Key struct {
	Position uint64
	Mask     uint64
}

func (k Key) less(other Key) bool {
	if k.Mask != other.Mask {
		return k.Mask < other.Mask
	}
	return k.Position < other.Position
}

// Pick the smaller of the position and its mirror image as the key, so both
// share one transposition table slot. 'mirrored' reports which one was used.
func Canonical(position, mask uint64) (key Key, mirrored bool) {
	key = Key{Position: position, Mask: mask}
	mirror := Key{Position: Mirror(position), Mask: Mirror(mask)}
	if mirror.less(key) {
		return mirror, true
	}
	return key, false
}
