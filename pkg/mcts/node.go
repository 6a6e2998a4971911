package mcts

import "math/rand"

// Tree node. Children are owned by their parent, Parent is only a back
// reference used by backpropagation.
type NodeBase[T MoveLike] struct {
	Move     T
	Parent   *NodeBase[T]
	Children []*NodeBase[T]
	// Moves not yet expanded into children
	Untried []T
	// Side that made 'Move', credited when it wins a playout
	JustMoved Side

	visits int32
	wins   Result
}

func newRootNode[T MoveLike](justMoved Side, moves []T) *NodeBase[T] {
	return &NodeBase[T]{
		Untried:   moves,
		JustMoved: justMoved,
	}
}

func NewBaseNode[T MoveLike](parent *NodeBase[T], move T, justMoved Side, moves []T) *NodeBase[T] {
	return &NodeBase[T]{
		Move:      move,
		Parent:    parent,
		Untried:   moves,
		JustMoved: justMoved,
	}
}

// Deep copy of the subtree, the clone has no parent
func (node *NodeBase[T]) Clone() *NodeBase[T] {
	clone := &NodeBase[T]{
		Move:      node.Move,
		Untried:   append([]T(nil), node.Untried...),
		JustMoved: node.JustMoved,
		visits:    node.visits,
		wins:      node.wins,
		Children:  make([]*NodeBase[T], len(node.Children)),
	}
	for i, child := range node.Children {
		clone.Children[i] = child.Clone()
		clone.Children[i].Parent = clone
	}
	return clone
}

func (node *NodeBase[T]) Visits() int32 {
	return node.visits
}

// Accumulated playout rewards of the side that made this node's move
func (node *NodeBase[T]) Wins() Result {
	return node.wins
}

// Average reward, 0 for an unvisited node
func (node *NodeBase[T]) WinRate() Result {
	if node.visits == 0 {
		return 0
	}
	return node.wins / Result(node.visits)
}

// No untried moves and no children, the game ended at this node
func (node *NodeBase[T]) Terminal() bool {
	return len(node.Untried) == 0 && len(node.Children) == 0
}

// Every move was expanded at least once
func (node *NodeBase[T]) Expanded() bool {
	return len(node.Untried) == 0 && len(node.Children) > 0
}

// Remove a random untried move and return it
func (node *NodeBase[T]) popUntried(r *rand.Rand) T {
	i := r.Intn(len(node.Untried))
	move := node.Untried[i]
	last := len(node.Untried) - 1
	node.Untried[i] = node.Untried[last]
	node.Untried = node.Untried[:last]
	return move
}

func (node *NodeBase[T]) addChild(move T, justMoved Side, moves []T) *NodeBase[T] {
	child := NewBaseNode(node, move, justMoved, moves)
	node.Children = append(node.Children, child)
	return child
}

// Record a playout passing through this node
func (node *NodeBase[T]) update(outcome Outcome) {
	node.visits++
	if outcome.IsDraw() {
		node.wins += 0.5
	} else if outcome.Winner == node.JustMoved {
		node.wins += 1
	}
}
