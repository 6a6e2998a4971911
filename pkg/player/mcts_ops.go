package player

import (
	"math/rand"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/mcts"
)

func side(disc board.Disc) mcts.Side {
	return mcts.Side(disc)
}

// mcts.GameOperations over the grid board. The live board is only read,
// every iteration plays on its own copy.
type boardOps struct {
	root       *board.Board
	rootToMove board.Disc

	board  *board.Board
	toMove board.Disc
	winner board.Disc
}

func newBoardOps(b *board.Board, toMove board.Disc) *boardOps {
	ops := &boardOps{root: b.Clone(), rootToMove: toMove}
	ops.Reset()
	return ops
}

func (o *boardOps) Reset() {
	o.board = o.root.Clone()
	o.toMove = o.rootToMove
	o.winner = o.board.Winner()
}

func (o *boardOps) Moves() []int {
	if o.winner != board.Empty {
		return nil
	}
	return o.board.AvailableColumns()
}

func (o *boardOps) Traverse(column int) mcts.Side {
	mover := o.toMove
	o.board.Drop(column, mover)
	if o.board.CheckWin(mover) {
		o.winner = mover
	}
	o.toMove = mover.Opponent()
	return side(mover)
}

func (o *boardOps) Rollout(r *rand.Rand) mcts.Outcome {
	for o.winner == board.Empty {
		columns := o.board.AvailableColumns()
		if len(columns) == 0 {
			return mcts.Draw()
		}
		o.Traverse(columns[r.Intn(len(columns))])
	}
	return mcts.Won(side(o.winner))
}

func (o *boardOps) Clone() mcts.GameOperations[int] {
	return &boardOps{
		root:       o.root.Clone(),
		rootToMove: o.rootToMove,
		board:      o.board.Clone(),
		toMove:     o.toMove,
		winner:     o.winner,
	}
}

// Search tree over 'b' with 'toMove' to play, together with the operations
// to pass to Search. The board is copied, later changes to it are not seen.
func NewTree(b *board.Board, toMove board.Disc) (*mcts.MCTS[int], mcts.GameOperations[int]) {
	ops := newBoardOps(b, toMove)
	return mcts.NewMCTS[int](ops, side(toMove.Opponent())), ops
}
