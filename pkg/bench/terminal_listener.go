package bench

import (
	"fmt"
	"sync"

	"github.com/muesli/termenv"
)

const (
	colorWin  = "2" // green
	colorLoss = "1" // red
	colorDim  = "8"
)

// Prints one line per finished game and the final score table
type TerminalListener struct {
	DefaultListener
	mu  sync.Mutex
	out *termenv.Output
}

func NewTerminalListener(out *termenv.Output) *TerminalListener {
	return &TerminalListener{out: out}
}

func (tl *TerminalListener) OnStart(summary VersusSummaryInfo) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	fmt.Fprintf(tl.out, "%s vs %s, %d games on %d workers\n",
		tl.out.String(summary.P1Name).Bold(), tl.out.String(summary.P2Name).Bold(),
		summary.TotalGames, summary.Workers)
}

func (tl *TerminalListener) OnFinishedGame(info VersusWorkerInfo) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	fmt.Fprintf(tl.out, "%s %3d/%-3d %s %s %s  %s\n",
		tl.out.String(fmt.Sprintf("[%d]", info.WorkerID)).Foreground(tl.out.Color(colorDim)),
		info.FinishedGames, info.NGames,
		tl.out.String(fmt.Sprintf("+%d", info.P1Wins)).Foreground(tl.out.Color(colorWin)),
		tl.out.String(fmt.Sprintf("-%d", info.P2Wins)).Foreground(tl.out.Color(colorLoss)),
		fmt.Sprintf("=%d", info.Draws),
		info.Notation(),
	)
}

func (tl *TerminalListener) Summary(summary VersusSummaryInfo) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	score := tl.out.String(fmt.Sprintf("%.1f%%", 100*summary.Score())).Bold()
	switch {
	case summary.P1Wins > summary.P2Wins:
		score = score.Foreground(tl.out.Color(colorWin))
	case summary.P1Wins < summary.P2Wins:
		score = score.Foreground(tl.out.Color(colorLoss))
	}

	fmt.Fprintf(tl.out, "%-14s %6s %6s %6s\n", "", "wins", "losses", "draws")
	fmt.Fprintf(tl.out, "%-14s %6d %6d %6d\n", summary.P1Name, summary.P1Wins, summary.P2Wins, summary.Draws)
	fmt.Fprintf(tl.out, "%-14s %6d %6d %6d\n", summary.P2Name, summary.P2Wins, summary.P1Wins, summary.Draws)
	fmt.Fprintf(tl.out, "first to move won %d, second to move won %d\n", summary.FirstToMoveWins, summary.SecondToMoveWins)
	fmt.Fprintf(tl.out, "score of %s: %s\n", summary.P1Name, score)
}
