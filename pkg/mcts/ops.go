package mcts

import "math/rand"

// The game as seen by the tree. Every iteration starts with Reset, then
// walks down the tree with Traverse and finishes with Rollout, so the
// implementation only needs a private copy of the root position.
type GameOperations[T MoveLike] interface {
	// Restore the private copy of the root position
	Reset()
	// Legal moves in the current position, none once the game is over
	Moves() []T
	// Play the move on the private copy, returns the side that made it
	Traverse(T) Side
	// Play random moves until the game ends, the current position
	// may already be terminal
	Rollout(*rand.Rand) Outcome
	// Copy without any shared memory with the original
	Clone() GameOperations[T]
}
