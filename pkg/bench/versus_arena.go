package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/mcts"
	"github.com/IlikeChooros/go-connect3/pkg/player"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, plays a series of games between two player
configurations. Every game gets freshly built players, so no engine or
transposition table is shared between concurrently running games.
*/

var ErrArenaRunning = errors.New("arena is already running")

// Builds a player for one game. 'seed' is unique per game.
type Factory func(disc board.Disc, seed int64) (player.Player, error)

// Factory of computer players of 'level', built from a copy of 'cfg'
func LevelFactory(level player.Level, cfg player.Config) Factory {
	return func(disc board.Disc, seed int64) (player.Player, error) {
		if level == player.Human {
			return nil, fmt.Errorf("arena: %v players are not supported", level)
		}
		c := cfg
		c.SetSeed(seed)
		return player.New(level, disc, &c)
	}
}

type VersusArena struct {
	VersusArenaStats
	Player1  Factory
	Player2  Factory
	P1Name   string
	P2Name   string
	NGames   uint
	NThreads uint
	ctx      context.Context
	group    *errgroup.Group
	listener ListenerLike
}

func NewVersusArena(p1, p2 Factory) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		P1Name:   "player1",
		P2Name:   "player2",
		NGames:   100,
		NThreads: 2,
		ctx:      context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) WithNames(p1, p2 string) *VersusArena {
	va.P1Name, va.P2Name = p1, p2
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
}

// Games played by each worker, the first NGames % NThreads workers play
// one more
func (va *VersusArena) split() []int {
	nThreads := int(max(va.NThreads, 1))
	nGames := int(va.NGames)
	return lo.Times(nThreads, func(i int) int {
		if i < nGames%nThreads {
			return nGames/nThreads + 1
		}
		return nGames / nThreads
	})
}

func (va *VersusArena) summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          int(max(va.NThreads, 1)),
		P1Name:           va.P1Name,
		P2Name:           va.P2Name,
	}
}

// Start the workers, use Wait to collect the result. A nil listener
// ignores the events.
func (va *VersusArena) Start(listener ListenerLike) error {
	if va.group != nil {
		return ErrArenaRunning
	}
	if listener == nil {
		listener = DefaultListener{}
	}
	va.listener = listener
	va.VersusArenaStats = VersusArenaStats{}

	start := va.summary()
	start.TotalGames = int(va.NGames)
	listener.OnStart(start)

	group, ctx := errgroup.WithContext(va.ctx)
	va.group = group
	seed := mcts.SeedGeneratorFn()

	for id, nGames := range va.split() {
		r := rand.New(rand.NewSource(seed + int64(id)))
		group.Go(func() error {
			return va.worker(ctx, id, nGames, r)
		})
	}
	return nil
}

// Wait for every worker, then report the summary. Returns the first worker
// error, the games finished before it are still counted.
func (va *VersusArena) Wait() (VersusSummaryInfo, error) {
	if va.group == nil {
		return va.summary(), nil
	}
	err := va.group.Wait()
	va.group = nil

	summary := va.summary()
	va.listener.Summary(summary)
	va.listener.OnEnd()
	return summary, err
}

// Start and Wait
func (va *VersusArena) Run(listener ListenerLike) (VersusSummaryInfo, error) {
	if err := va.Start(listener); err != nil {
		return VersusSummaryInfo{}, err
	}
	return va.Wait()
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, r *rand.Rand) error {
	localStats := VersusArenaStats{}
	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   va.P1Name,
		P2Name:   va.P2Name,
	}
	defer func() {
		va.listener.OnFinishedWork(info)
	}()

	for i := range nGames {
		p1WentFirst := r.Intn(2) == 0
		record, err := va.playGame(ctx, p1WentFirst, r, &info)
		if err != nil {
			return fmt.Errorf("worker %d, game %d: %w", id, i+1, err)
		}

		result := toAgentResult(record.Outcome, p1WentFirst)
		va.add(result, record.Outcome)
		localStats.add(result, record.Outcome)

		info.FinishedGames = i + 1
		info.Moves = record.Moves()
		info.GameMoveNum = len(info.Moves)
		info.P1Wins = localStats.P1Wins()
		info.P2Wins = localStats.P2Wins()
		info.Draws = localStats.Draws()
		info.FirstToMoveWins = localStats.FirstToMoveWins()
		info.SecondToMoveWins = localStats.SecondToMoveWins()
		va.listener.OnFinishedGame(info)
	}
	return nil
}

func (va *VersusArena) playGame(ctx context.Context, p1WentFirst bool, r *rand.Rand, info *VersusWorkerInfo) (*MatchRecord, error) {
	p1Disc, p2Disc := board.A, board.B
	if !p1WentFirst {
		p1Disc, p2Disc = board.B, board.A
	}

	p1, err := va.Player1(p1Disc, r.Int63())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", va.P1Name, err)
	}
	p2, err := va.Player2(p2Disc, r.Int63())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", va.P2Name, err)
	}

	match := NewMatch(p1, p2)
	if !p1WentFirst {
		match = NewMatch(p2, p1)
	}
	match.OnMove = func(b *board.Board, _ player.Player, _ int) {
		info.Moves = b.History()
		info.GameMoveNum = len(info.Moves)
		va.listener.OnMoveMade(*info)
	}

	info.Moves = nil
	info.GameMoveNum = 0
	va.listener.OnGameStart(*info)
	return match.Play(ctx)
}
