// Package negamax is the exact solver on the bitboard encoding: negamax
// with alpha-beta, a transposition table keyed by the canonical
// (position, mask) pair, centre-first move ordering with best-move hints
// and principal variation search.
package negamax

import (
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-connect3/pkg/bitboard"
	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/search"
	"github.com/IlikeChooros/go-connect3/pkg/tt"
	"github.com/samber/lo"
)

type Options struct {
	// Use the transposition table
	TT bool
	// Try the stored best column first
	Hints bool
	// Null-window probes for every move but the first
	PVS bool
	// Table size, 0 means tt.DefaultCapacity
	Capacity int
}

// Table only, plain centre-first ordering
func BasicOptions() Options {
	return Options{TT: true}
}

// Every enhancement enabled
func FullOptions() Options {
	return Options{TT: true, Hints: true, PVS: true}
}

type Solver struct {
	opts  Options
	table *tt.Table[bitboard.Key]
	stats search.Stats
}

func New(opts Options) *Solver {
	s := &Solver{opts: opts}
	if opts.TT {
		s.table = tt.NewTable[bitboard.Key](opts.Capacity)
	}
	return s
}

func (s *Solver) Options() Options {
	return s.opts
}

// Counters of the last search
func (s *Solver) Stats() search.Stats {
	return s.stats
}

func (s *Solver) TableStats() tt.Stats {
	if s.table == nil {
		return tt.Stats{}
	}
	return s.table.Stats()
}

// Drop every stored position
func (s *Solver) Reset() {
	if s.table != nil {
		s.table.Clear()
	}
}

// Exact value of the board for 'toMove'
func (s *Solver) Solve(b *board.Board, toMove board.Disc) int {
	position, mask := bitboard.Encode(b, toMove)
	return s.SolvePosition(position, mask)
}

// Exact value of an encoded position for the side to move
func (s *Solver) SolvePosition(position, mask uint64) int {
	start := time.Now()
	s.stats = search.Stats{}
	score := s.negamax(position, mask, -search.Infinity, search.Infinity, 0)
	s.stats.Elapsed = time.Since(start)
	return score
}

// Exact value of every available column for 'disc'
func (s *Solver) Analyze(b *board.Board, disc board.Disc) []search.Line {
	start := time.Now()
	s.stats = search.Stats{}
	position, mask := bitboard.Encode(b, disc)

	lines := lo.Map(b.AvailableColumns(), func(column int, _ int) search.Line {
		p, m := bitboard.Play(position, mask, column)
		score := -s.negamax(p, m, -search.Infinity, search.Infinity, 1)
		return search.Line{Column: column, Score: score, Outcome: search.ClassifyExact(score)}
	})

	s.stats.Elapsed = time.Since(start)
	return lines
}

// Choose a move for 'disc', equally scored columns are picked at random
// with 'r'. Opens in the centre without searching.
func (s *Solver) Best(b *board.Board, disc board.Disc, r *rand.Rand) (int, []search.Line) {
	if b.IsEmpty() {
		s.stats = search.Stats{}
		return board.Center, nil
	}
	lines := s.Analyze(b, disc)
	return search.PickBest(lines, r), lines
}

func (s *Solver) negamax(position, mask uint64, alpha, beta, ply int) int {
	s.stats.Nodes++

	// Discs of the player who just moved
	if bitboard.CheckWin(position ^ mask) {
		return -(search.ExactBase - ply)
	}
	if bitboard.IsFull(mask) {
		return 0
	}

	// The best we can hope for is winning with the next move
	if best := search.ExactBase - (ply + 1); beta > best {
		beta = best
		if alpha >= beta {
			return beta
		}
	}

	hint := tt.NoMove
	var key bitboard.Key
	var mirrored bool
	if s.table != nil {
		key, mirrored = bitboard.Canonical(position, mask)
		if entry, ok := s.table.Get(key); ok {
			hint = orient(entry.Move, mirrored)
			entry.Value = tt.FromTT(entry.Value, ply, search.ExactThreshold)
			value, a, bt, done := entry.Tighten(alpha, beta)
			if done {
				return value
			}
			alpha, beta = a, bt
		}
	}

	alphaOrig := alpha
	best, bestMove := -search.Infinity, tt.NoMove
	moves, n := s.order(mask, hint)

	for i, column := range moves[:n] {
		p, m := bitboard.Play(position, mask, column)

		var score int
		if s.opts.PVS && i > 0 {
			score = -s.negamax(p, m, -alpha-1, -alpha, ply+1)
			if alpha < score && score < beta {
				score = -s.negamax(p, m, -beta, -alpha, ply+1)
			}
		} else {
			score = -s.negamax(p, m, -beta, -alpha, ply+1)
		}

		if score > best {
			best, bestMove = score, int8(column)
		}
		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}

	if s.table != nil {
		s.table.Put(key, tt.Entry{
			Value: tt.ToTT(best, ply, search.ExactThreshold),
			Bound: tt.BoundFor(best, alphaOrig, beta),
			Move:  orient(bestMove, mirrored),
		})
	}
	return best
}

// Playable columns, the hint first (when enabled) then centre-out
func (s *Solver) order(mask uint64, hint int8) ([bitboard.Width]int, int) {
	var moves [bitboard.Width]int
	n, first := 0, -1
	if s.opts.Hints && hint != tt.NoMove && bitboard.CanPlay(mask, int(hint)) {
		first = int(hint)
		moves[n] = first
		n++
	}
	for _, column := range search.Order {
		if column == first {
			continue
		}
		if bitboard.CanPlay(mask, column) {
			moves[n] = column
			n++
		}
	}
	return moves, n
}

// Hints are stored in the canonical orientation, flip them when the
// position is the mirror image of its key. Mirroring is an involution so
// the same call converts both ways.
func orient(column int8, mirrored bool) int8 {
	if !mirrored || column == tt.NoMove {
		return column
	}
	return bitboard.Width - 1 - column
}
