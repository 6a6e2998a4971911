package mcts

// Other types, which didn't fit to MCTS or Node files

// Accumulated reward of a node: 1 per won playout, 0.5 per draw
type Result float64
type MoveLike comparable
type BestChildPolicy int

// Identifier of a player, as seen by the tree. The game decides the values,
// NoSide is reserved for 'nobody'
type Side uint8

const NoSide Side = 0

// Result of a playout
type Outcome struct {
	Winner Side
}

// Draw, nobody won the playout
func Draw() Outcome {
	return Outcome{Winner: NoSide}
}

func Won(side Side) Outcome {
	return Outcome{Winner: side}
}

func (o Outcome) IsDraw() bool {
	return o.Winner == NoSide
}

// Will be called while descending the tree, on nodes without untried moves
type SelectionPolicy[T MoveLike] func(parent *NodeBase[T]) *NodeBase[T]
type SeedGeneratorFnType func() int64
