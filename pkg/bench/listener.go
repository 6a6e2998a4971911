package bench

import (
	"github.com/rs/zerolog/log"
)

// Arena callbacks. Workers run concurrently, so an implementation must be
// safe for concurrent use, every callback carries the id of the worker.
type ListenerLike interface {
	OnStart(summary VersusSummaryInfo)
	OnGameStart(info VersusWorkerInfo)
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
}

// Ignores every event
type DefaultListener struct{}

func (DefaultListener) OnStart(VersusSummaryInfo)       {}
func (DefaultListener) OnGameStart(VersusWorkerInfo)    {}
func (DefaultListener) OnMoveMade(VersusWorkerInfo)     {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}
func (DefaultListener) OnEnd()                          {}

// Logs the arena through zerolog: start and summary at info level, games at
// debug level and single moves at trace level
type LogListener struct {
	DefaultListener
}

func (LogListener) OnStart(summary VersusSummaryInfo) {
	log.Info().
		Str("player1", summary.P1Name).
		Str("player2", summary.P2Name).
		Int("games", summary.TotalGames).
		Int("workers", summary.Workers).
		Msg("arena-start")
}

func (LogListener) OnMoveMade(info VersusWorkerInfo) {
	log.Trace().
		Int("worker", info.WorkerID).
		Int("ply", info.GameMoveNum).
		Str("moves", info.Notation()).
		Msg("move")
}

func (LogListener) OnFinishedGame(info VersusWorkerInfo) {
	log.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Int("of", info.NGames).
		Str("moves", info.Notation()).
		Int("p1-wins", info.P1Wins).
		Int("p2-wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("game-finished")
}

func (LogListener) OnFinishedWork(info VersusWorkerInfo) {
	log.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Msg("worker-finished")
}

func (LogListener) Summary(summary VersusSummaryInfo) {
	log.Info().
		Str("player1", summary.P1Name).
		Str("player2", summary.P2Name).
		Int("games", summary.TotalGames).
		Int("p1-wins", summary.P1Wins).
		Int("p2-wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Int("first-to-move-wins", summary.FirstToMoveWins).
		Int("second-to-move-wins", summary.SecondToMoveWins).
		Float64("score", summary.Score()).
		Msg("arena-summary")
}
