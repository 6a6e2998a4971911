package bench

// Distributes the arena events between several listeners
type ArenaListener struct {
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	return &ArenaListener{listeners: listeners}
}

func (al *ArenaListener) Add(listener ListenerLike) *ArenaListener {
	al.listeners = append(al.listeners, listener)
	return al
}

func (al *ArenaListener) OnStart(summary VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.OnStart(summary)
	}
}

func (al *ArenaListener) OnGameStart(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnGameStart(info)
	}
}

func (al *ArenaListener) OnMoveMade(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnMoveMade(info)
	}
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener) Summary(summary VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(summary)
	}
}

func (al *ArenaListener) OnEnd() {
	for _, l := range al.listeners {
		l.OnEnd()
	}
}
