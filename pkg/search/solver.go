package search

import (
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/tt"
	"github.com/samber/lo"
)

// Exact solver on the grid board: negamax with alpha-beta and a
// transposition table keyed by GridKey. The table outlives a single
// search, a Solver belongs to one player.
type Solver struct {
	table *tt.Table[uint64]
	stats Stats
}

// Pass capacity 0 for tt.DefaultCapacity, a negative capacity disables
// the table
func NewSolver(capacity int) *Solver {
	s := &Solver{}
	if capacity >= 0 {
		s.table = tt.NewTable[uint64](capacity)
	}
	return s
}

func (s *Solver) Stats() Stats {
	return s.stats
}

// Transposition table counters, zero value when the table is disabled
func (s *Solver) TableStats() tt.Stats {
	if s.table == nil {
		return tt.Stats{}
	}
	return s.table.Stats()
}

// Exact value of the position for 'toMove'
func (s *Solver) Solve(b *board.Board, toMove board.Disc) int {
	start := time.Now()
	s.stats = Stats{}
	score := s.negamax(b, toMove, -Infinity, Infinity, 0)
	s.stats.Elapsed = time.Since(start)
	return score
}

// Exact value of every available column for 'disc'
func (s *Solver) Analyze(b *board.Board, disc board.Disc) []Line {
	start := time.Now()
	s.stats = Stats{}

	lines := lo.Map(b.AvailableColumns(), func(column int, _ int) Line {
		score := -board.Scoped(b, column, disc, func(b *board.Board) int {
			return s.negamax(b, disc.Opponent(), -Infinity, Infinity, 1)
		})
		return Line{Column: column, Score: score, Outcome: ClassifyExact(score)}
	})

	s.stats.Elapsed = time.Since(start)
	return lines
}

// Choose a move for 'disc', ties between equally scored columns are broken
// with 'r'. Opens in the centre without searching.
func (s *Solver) Best(b *board.Board, disc board.Disc, r *rand.Rand) (int, []Line) {
	if b.IsEmpty() {
		s.stats = Stats{}
		return board.Center, nil
	}
	lines := s.Analyze(b, disc)
	return PickBest(lines, r), lines
}

func (s *Solver) negamax(b *board.Board, toMove board.Disc, alpha, beta, ply int) int {
	s.stats.Nodes++

	// The previous move could have ended the game
	if b.CheckWin(toMove.Opponent()) {
		return -(ExactBase - ply)
	}
	if b.IsFull() {
		return 0
	}

	var key uint64
	if s.table != nil {
		key = GridKey(b, toMove)
		if entry, ok := s.table.Get(key); ok {
			entry.Value = tt.FromTT(entry.Value, ply, ExactThreshold)
			value, a, bt, done := entry.Tighten(alpha, beta)
			if done {
				return value
			}
			alpha, beta = a, bt
		}
	}

	alphaOrig := alpha
	best := -Infinity
	for _, column := range Order {
		if !b.IsValidColumn(column) {
			continue
		}

		score := -board.Scoped(b, column, toMove, func(b *board.Board) int {
			return s.negamax(b, toMove.Opponent(), -beta, -alpha, ply+1)
		})
		best = max(best, score)
		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}

	if s.table != nil {
		s.table.Put(key, tt.Entry{
			Value: tt.ToTT(best, ply, ExactThreshold),
			Bound: tt.BoundFor(best, alphaOrig, beta),
			Move:  tt.NoMove,
		})
	}
	return best
}
