package mcts

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync/atomic"
)

type TreeStats struct {
	maxdepth atomic.Int32
	cps      atomic.Uint32
	cycles   atomic.Uint32
	size     atomic.Uint32
}

// Single-threaded UCT search tree. One tree serves one decision: Reset it
// with the new position, Search, then read RootMove.
type MCTS[T MoveLike] struct {
	TreeStats
	Limiter   *Limiter
	Root      *NodeBase[T]
	listener  *StatsListener[T]
	selection SelectionPolicy[T]
	final     BestChildPolicy
	rand      *rand.Rand
}

// Create new tree for the position held by 'ops'. 'justMoved' is the side
// that made the last move before the root position.
func NewMCTS[T MoveLike](ops GameOperations[T], justMoved Side) *MCTS[T] {
	mcts := &MCTS[T]{
		Limiter:   NewLimiter(),
		listener:  &StatsListener[T]{nCycles: 1},
		selection: UCT[T],
		rand:      rand.New(rand.NewSource(SeedGeneratorFn())),
	}
	mcts.Reset(ops, justMoved)
	return mcts
}

// Replace the random source used for expansion, playouts and fallbacks
func (mcts *MCTS[T]) SetRand(r *rand.Rand) {
	if r != nil {
		mcts.rand = r
	}
}

// How RootMove and RootScore pick the root child, BestChildMostVisits by default
func (mcts *MCTS[T]) SetFinalPolicy(policy BestChildPolicy) {
	mcts.final = policy
}

func (mcts *MCTS[T]) invokeListener(f ListenerFunc[T]) {
	if f != nil {
		f(toListenerStats(mcts))
	}
}

func (mcts *MCTS[T]) StatsListener() *StatsListener[T] {
	return mcts.listener
}

func (mcts *MCTS[T]) SetListener(listener StatsListener[T]) {
	*mcts.listener = listener
}

// Adds custom context to the limiter, enabling cancellation through it
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//
//	tree.SetContext(ctx)
//	tree.Search(ops)
func (mcts *MCTS[T]) SetContext(ctx context.Context) {
	mcts.Limiter.SetContext(ctx)
}

// Stop the search, safe to call from another goroutine
func (mcts *MCTS[T]) Stop() {
	mcts.Limiter.SetStop(true)
}

// Maximum depth reached during the search
func (mcts *MCTS[T]) MaxDepth() int {
	return int(mcts.maxdepth.Load())
}

// Number of playouts of the last search
func (mcts *MCTS[T]) Cycles() int {
	return int(mcts.cycles.Load())
}

// Cycles per second
func (mcts *MCTS[T]) Cps() uint32 {
	return mcts.cps.Load()
}

// Get the reason why the search was stopped, valid after search ends
func (mcts *MCTS[T]) StopReason() StopReason {
	return mcts.Limiter.StopReason()
}

func (mcts *MCTS[T]) SetLimits(limits *Limits) {
	mcts.Limiter.SetLimits(limits)
}

func (mcts *MCTS[T]) Limits() *Limits {
	return mcts.Limiter.Limits()
}

func (mcts *MCTS[T]) String() string {
	return fmt.Sprintf("MCTS={Size=%d, Stats:{maxdepth=%d, cps=%d, cycles=%d}, Root={visits=%d, children=%d}}",
		mcts.Size(), mcts.MaxDepth(), mcts.Cps(), mcts.Cycles(), mcts.Root.Visits(), len(mcts.Root.Children))
}

// Helper function to count tree nodes
func countTreeNodes[T MoveLike](node *NodeBase[T]) int {
	nodes := 1
	for _, child := range node.Children {
		nodes += countTreeNodes(child)
	}
	return nodes
}

// Get the size of the tree (by counting)
func (mcts *MCTS[T]) Count() int {
	return countTreeNodes(mcts.Root)
}

// Get the size of the tree
func (mcts *MCTS[T]) Size() uint32 {
	return mcts.size.Load()
}

// Remove previous tree, the new root is the position 'ops' resets to
func (mcts *MCTS[T]) Reset(ops GameOperations[T], justMoved Side) {
	ops.Reset()
	mcts.Root = newRootNode(justMoved, ops.Moves())
	mcts.size.Store(1)
	mcts.maxdepth.Store(0)
	mcts.cycles.Store(0)
	mcts.cps.Store(0)
}

// The root move chosen by the final policy. Falls back to a random legal
// move of the root position if the tree never grew, ok is false if there
// is none.
func (mcts *MCTS[T]) RootMove(ops GameOperations[T]) (move T, ok bool) {
	if best := mcts.finalChild(); best != nil {
		return best.Move, true
	}

	ops.Reset()
	moves := ops.Moves()
	if len(moves) == 0 {
		return move, false
	}
	return moves[mcts.rand.Intn(len(moves))], true
}

// Win rate of the root move RootMove picks, for the side playing it
func (mcts *MCTS[T]) RootScore() Result {
	if best := mcts.finalChild(); best != nil {
		return best.WinRate()
	}
	return 0
}

// Win rate needs enough visits, below that the most visited child is used
func (mcts *MCTS[T]) finalChild() *NodeBase[T] {
	best := mcts.BestChild(mcts.Root, mcts.final)
	if best == nil && mcts.final != BestChildMostVisits {
		best = mcts.BestChild(mcts.Root, BestChildMostVisits)
	}
	return best
}

// Return best child, based on the policy
func (mcts *MCTS[T]) BestChild(node *NodeBase[T], policy BestChildPolicy) *NodeBase[T] {
	var bestChild *NodeBase[T]

	switch policy {
	case BestChildMostVisits:
		maxVisits := int32(0)
		for _, child := range node.Children {
			if child.visits > maxVisits {
				maxVisits = child.visits
				bestChild = child
			}
		}
	case BestChildWinRate:
		const minVisitsThreshold = 10
		bestWinRate := Result(-1)
		for _, child := range node.Children {
			if child.visits > minVisitsThreshold && child.WinRate() > bestWinRate {
				bestWinRate = child.WinRate()
				bestChild = child
			}
		}
	}

	return bestChild
}

type PvResult[T MoveLike] struct {
	Root     *NodeBase[T]
	Pv       []T
	Terminal bool
}

// Principal variations of the 'MultiPv' most visited root moves
func (mcts *MCTS[T]) MultiPv(policy BestChildPolicy) []PvResult[T] {
	if mcts.Root == nil {
		return nil
	}

	rootNodes := slices.Clone(mcts.Root.Children)
	slices.SortStableFunc(rootNodes, func(a, b *NodeBase[T]) int {
		return int(b.visits - a.visits)
	})

	pvCount := min(mcts.Limiter.Limits().MultiPv, len(rootNodes))
	multipv := make([]PvResult[T], 0, pvCount)
	for _, root := range rootNodes[:pvCount] {
		pv, terminal := mcts.Pv(root, policy, true)
		multipv = append(multipv, PvResult[T]{Root: root, Pv: pv, Terminal: terminal})
	}
	return multipv
}

// Get the principal variation (ie. the best sequence of nodes)
// from given starting 'root' node, based on given best child policy.
// Also reports whether the line ends in a terminal node.
func (mcts *MCTS[T]) PvNodes(root *NodeBase[T], policy BestChildPolicy, includeRoot bool) ([]*NodeBase[T], bool) {
	if root == nil {
		return nil, false
	}

	pv := make([]*NodeBase[T], 0, mcts.MaxDepth()+1)
	if includeRoot {
		pv = append(pv, root)
	}

	node := root
	for len(node.Children) > 0 {
		next := mcts.BestChild(node, policy)
		if next == nil {
			break
		}
		node = next
		pv = append(pv, node)
	}

	return pv, node.Terminal()
}

// Same as PvNodes, but only the moves
func (mcts *MCTS[T]) Pv(root *NodeBase[T], policy BestChildPolicy, includeRoot bool) ([]T, bool) {
	nodes, terminal := mcts.PvNodes(root, policy, includeRoot)
	pv := make([]T, len(nodes))
	for i, node := range nodes {
		pv[i] = node.Move
	}
	return pv, terminal
}
