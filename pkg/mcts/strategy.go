package mcts

/*
source: https://en.wikipedia.org/wiki/Monte_Carlo_tree_search

	If white loses the simulation, all nodes along the selection incremented
	their simulation count (the denominator), but among them only the black
	nodes were credited with wins (the numerator). In games where draws are
	possible, a draw causes the numerator for both black and white to be
	incremented by 0.5 and the denominator by 1.
*/

// Walk from 'node' back to the root, recording the outcome on every node
func Backpropagate[T MoveLike](node *NodeBase[T], outcome Outcome) {
	for node != nil {
		node.update(outcome)
		node = node.Parent
	}
}
