package search

import (
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/eval"
	"github.com/samber/lo"
)

// Depth-limited search on the live board. Plain minimax when Pruning is off
// and Evaluator is nil, alpha-beta with a heuristic horizon otherwise.
//
// Every hypothetical move is applied with board.Scoped, so the board is
// left exactly as it was given.
type DepthSearch struct {
	Depth     int
	Evaluator eval.Evaluator
	Pruning   bool

	searcher board.Disc
	stats    Stats
}

func NewMinimax(depth int) *DepthSearch {
	return &DepthSearch{Depth: depth}
}

func NewAlphaBeta(depth int, evaluator eval.Evaluator) *DepthSearch {
	return &DepthSearch{Depth: depth, Evaluator: evaluator, Pruning: true}
}

// Counters of the last Analyze call
func (d *DepthSearch) Stats() Stats {
	return d.stats
}

// Score every available column for 'disc', each one with a fully open
// window
func (d *DepthSearch) Analyze(b *board.Board, disc board.Disc) []Line {
	start := time.Now()
	d.stats = Stats{}
	d.searcher = disc
	depth := max(d.Depth, 1)

	lines := lo.Map(b.AvailableColumns(), func(column int, _ int) Line {
		score := board.Scoped(b, column, disc, func(b *board.Board) int {
			return d.search(b, depth-1, disc.Opponent(), -Infinity, Infinity)
		})
		return Line{Column: column, Score: score, Outcome: ClassifyDepth(score, depth)}
	})

	d.stats.Elapsed = time.Since(start)
	return lines
}

// Choose a move for 'disc'. Opens in the centre without searching. Returns
// -1 if no column is available.
func (d *DepthSearch) Best(b *board.Board, disc board.Disc, r *rand.Rand) (int, []Line) {
	if b.IsEmpty() {
		d.stats = Stats{}
		return board.Center, nil
	}
	lines := d.Analyze(b, disc)
	return PickBest(lines, r), lines
}

func (d *DepthSearch) search(b *board.Board, depth int, toMove board.Disc, alpha, beta int) int {
	d.stats.Nodes++

	if b.CheckWin(d.searcher) {
		return WinScore + depth
	}
	if b.CheckWin(d.searcher.Opponent()) {
		return -(WinScore + depth)
	}
	// No columns left or depth exhausted
	if depth <= 0 || b.IsFull() {
		if d.Evaluator == nil {
			return 0
		}
		return d.Evaluator.Score(b, d.searcher)
	}

	maximizing := toMove == d.searcher
	best := Infinity
	if maximizing {
		best = -Infinity
	}

	for _, column := range b.AvailableColumns() {
		score := board.Scoped(b, column, toMove, func(b *board.Board) int {
			return d.search(b, depth-1, toMove.Opponent(), alpha, beta)
		})

		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}

		if d.Pruning && beta <= alpha {
			break
		}
	}
	return best
}
