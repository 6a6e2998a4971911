// Package search implements the grid based engines: fixed-depth minimax,
// alpha-beta with a heuristic evaluator and an exact solver backed by a
// transposition table. It also holds the shared result types, used by
// the bitboard solver as well.
package search

import (
	"math/rand"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/samber/lo"
)

const (
	// Bigger than any window value
	Infinity = 1 << 30

	// Win score of the depth-limited searches, plus the remaining depth
	WinScore = 100000

	// Win score of the exact solvers, minus the ply of the winning move
	ExactBase = 100
	// Exact scores above it (or below its negation) are decisive
	ExactThreshold = ExactBase / 2
)

// Centre-out column order, the centre is the strongest column
var Order [board.Cols]int

func init() {
	i := 0
	Order[i] = board.Center
	for d := 1; i < board.Cols-1; d++ {
		if board.Center-d >= 0 {
			i++
			Order[i] = board.Center - d
		}
		if board.Center+d < board.Cols {
			i++
			Order[i] = board.Center + d
		}
	}
}

// Score of one root move
type Line struct {
	Column  int
	Score   int
	Outcome Outcome
}

// Pick a column with the highest score, ties are broken uniformly with 'r'.
// Returns -1 when there are no lines.
func PickBest(lines []Line, r *rand.Rand) int {
	if len(lines) == 0 {
		return -1
	}

	best := lo.MaxBy(lines, func(a, b Line) bool {
		return a.Score > b.Score
	}).Score
	ties := lo.Filter(lines, func(line Line, _ int) bool {
		return line.Score == best
	})
	return ties[r.Intn(len(ties))].Column
}
