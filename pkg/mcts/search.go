package mcts

// Run the search until a limit is reached or it is stopped, blocking.
// Every iteration:
//
// 1. selection - descend with the selection policy while the node is fully expanded
//
// 2. expansion - attach one random untried move as a new child
//
// 3. rollout - play the game out at random from the new node
//
// 4. backpropagate - record the outcome on every node up to the root
func (mcts *MCTS[T]) Search(ops GameOperations[T]) {
	mcts.setupSearch()

	if mcts.Root.Terminal() {
		mcts.Limiter.setReason(StopTerminal)
		mcts.invokeListener(mcts.listener.onStop)
		return
	}

	for mcts.Limiter.Ok(mcts.Size(), uint32(mcts.MaxDepth()), uint32(mcts.Cycles())) {
		ops.Reset()
		node := mcts.Selection(ops)
		Backpropagate(node, ops.Rollout(mcts.rand))

		mcts.cycles.Add(1)
		mcts.cps.Store(cyclesPerSecond(mcts.Cycles(), mcts.Limiter.Elapsed()))
		mcts.listener.invokeCycle(mcts)
	}

	mcts.Limiter.EvaluateStopReason(mcts.Size(), uint32(mcts.MaxDepth()), uint32(mcts.Cycles()))
	mcts.invokeListener(mcts.listener.onStop)
}

// Rate in cycles per second, elapsed in milliseconds (at least 1)
func cyclesPerSecond(cycles int, elapsedMs uint32) uint32 {
	if elapsedMs == 0 {
		elapsedMs = 1
	}
	return uint32(uint64(cycles) * 1000 / uint64(elapsedMs))
}

// This function only sets the limits, resets the counters, and the stop flag
// doesn't actually start the search
func (mcts *MCTS[T]) setupSearch() {
	mcts.Limiter.Reset()
	mcts.cps.Store(0)
	mcts.cycles.Store(0)
}

// Walk down the tree and expand one node, 'ops' follows the walk.
// Returns the node the playout should start from.
func (mcts *MCTS[T]) Selection(ops GameOperations[T]) *NodeBase[T] {
	node := mcts.Root
	depth := int32(0)

	for node.Expanded() {
		node = mcts.selection(node)
		ops.Traverse(node.Move)
		depth++
	}

	if len(node.Untried) > 0 {
		move := node.popUntried(mcts.rand)
		justMoved := ops.Traverse(move)
		node = node.addChild(move, justMoved, ops.Moves())
		mcts.size.Add(1)
		depth++
	}

	if depth > mcts.maxdepth.Load() {
		mcts.maxdepth.Store(depth)
		mcts.invokeListener(mcts.listener.onDepth)
	}

	return node
}
