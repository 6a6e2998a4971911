package player

import (
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/mcts"
	"github.com/IlikeChooros/go-connect3/pkg/negamax"
	"github.com/IlikeChooros/go-connect3/pkg/search"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Search engine behind a Bot. Returns -1 when there is no move, the lines
// and stats only feed the debug log.
type engine interface {
	choose(b *board.Board, disc board.Disc) (column int, lines []search.Line, stats search.Stats)
}

type randomEngine struct {
	rand *rand.Rand
}

func (e *randomEngine) choose(b *board.Board, _ board.Disc) (int, []search.Line, search.Stats) {
	columns := b.AvailableColumns()
	if len(columns) == 0 {
		return -1, nil, search.Stats{}
	}
	return columns[e.rand.Intn(len(columns))], nil, search.Stats{}
}

// Minimax and alpha-beta
type depthEngine struct {
	search *search.DepthSearch
	rand   *rand.Rand
}

func (e *depthEngine) choose(b *board.Board, disc board.Disc) (int, []search.Line, search.Stats) {
	column, lines := e.search.Best(b, disc, e.rand)
	return column, lines, e.search.Stats()
}

type gridSolverEngine struct {
	solver *search.Solver
	rand   *rand.Rand
}

func (e *gridSolverEngine) choose(b *board.Board, disc board.Disc) (int, []search.Line, search.Stats) {
	column, lines := e.solver.Best(b, disc, e.rand)
	return column, lines, e.solver.Stats()
}

type negamaxEngine struct {
	solver *negamax.Solver
	rand   *rand.Rand
}

func (e *negamaxEngine) choose(b *board.Board, disc board.Disc) (int, []search.Line, search.Stats) {
	column, lines := e.solver.Best(b, disc, e.rand)
	return column, lines, e.solver.Stats()
}

// Fresh tree per decision, grown on a private copy of the board
type mctsEngine struct {
	limits   mcts.Limits
	policy   mcts.BestChildPolicy
	rand     *rand.Rand
	debug    bool
	listener *mcts.StatsListener[int]
}

func (e *mctsEngine) choose(b *board.Board, disc board.Disc) (int, []search.Line, search.Stats) {
	start := time.Now()
	tree, ops := NewTree(b, disc)
	tree.SetRand(e.rand)
	tree.SetFinalPolicy(e.policy)
	limits := e.limits
	tree.SetLimits(&limits)
	if e.listener != nil {
		tree.SetListener(*e.listener)
	}

	tree.Search(ops)
	column, ok := tree.RootMove(ops)
	if !ok {
		column = -1
	}
	if e.debug {
		log.Debug().
			Str("limits", limits.String()).
			Int("column", column+1).
			Float64("root-score", float64(tree.RootScore())).
			Msg("mcts-decision")
	}

	lines := lo.Map(tree.Root.Children, func(child *mcts.NodeBase[int], _ int) search.Line {
		return search.Line{Column: child.Move, Score: int(child.Visits())}
	})
	return column, lines, search.Stats{Nodes: uint64(tree.Cycles()), Elapsed: time.Since(start)}
}
