package mcts

import "math"

// UCT selection: win rate + C * sqrt(ln(parent visits) / visits). Only
// called on expanded nodes, so every child was visited at least once and
// neither ln(0) nor a division by zero can happen.
func UCT[T MoveLike](parent *NodeBase[T]) *NodeBase[T] {
	lnParentVisits := math.Log(float64(parent.visits))
	best := math.Inf(-1)
	var selected *NodeBase[T]

	for _, child := range parent.Children {
		visits := float64(child.visits)
		// Unvisited, only possible if a playout was interrupted
		if visits == 0 {
			return child
		}

		// exploitation + exploration, from the point of view of the side
		// choosing between the children
		uct := float64(child.wins)/visits + ExplorationParam*math.Sqrt(lnParentVisits/visits)
		if uct > best {
			best = uct
			selected = child
		}
	}

	return selected
}
