package main

/*

Connect Three on a 5x5 board, win with 3 in a row.

Plays a single game in the terminal (human against one of the engines by
default), or runs an arena of many games between two engines:

	connect3 -p1 human -p2 perfect3
	connect3 -p1 advanced -p2 expert -games 100 -workers 4 -json

Levels: human, random, naive, intermediate, advanced, expert, perfect,
perfect2, perfect3.

*/

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/IlikeChooros/go-connect3/pkg/bench"
	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/mcts"
	"github.com/IlikeChooros/go-connect3/pkg/player"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type options struct {
	p1, p2     string
	second     bool
	depth      int
	iterations uint
	movetime   time.Duration
	winrate    bool
	capacity   int
	seed       int64
	debug      bool
	games      uint
	workers    uint
	json       bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("connect3", flag.ContinueOnError)
	levels := strings.Join(lo.Map(player.Levels(), func(l player.Level, _ int) string { return l.String() }), ", ")

	fs.StringVar(&opts.p1, "p1", "human", "first player level ("+levels+")")
	fs.StringVar(&opts.p2, "p2", "perfect3", "second player level")
	fs.BoolVar(&opts.second, "second", false, "let the second player make the first move")
	fs.IntVar(&opts.depth, "depth", 0, "search depth of naive, intermediate and expert, 0 for the level default")
	fs.UintVar(&opts.iterations, "iterations", player.DefaultIterations, "MCTS playouts per move")
	fs.DurationVar(&opts.movetime, "movetime", 0, "MCTS time limit per move, 0 for none")
	fs.BoolVar(&opts.winrate, "winrate", false, "MCTS plays the root move with the best win rate instead of the most visited one")
	fs.IntVar(&opts.capacity, "capacity", 0, "transposition table entries, 0 for the default")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed, 0 for time based")
	fs.BoolVar(&opts.debug, "debug", false, "log search telemetry")
	fs.UintVar(&opts.games, "games", 0, "play an arena of this many games instead of a single game")
	fs.UintVar(&opts.workers, "workers", 2, "arena workers")
	fs.BoolVar(&opts.json, "json", false, "print the arena summary as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *options) config(name string) *player.Config {
	cfg := player.DefaultConfig().
		SetDepth(o.depth).
		SetIterations(uint32(o.iterations)).
		SetCapacity(o.capacity).
		SetDebug(o.debug).
		SetName(name)
	cfg.Movetime = -1
	if o.movetime > 0 {
		cfg.SetMovetime(o.movetime)
	}
	if o.winrate {
		cfg.SetFinalPolicy(mcts.BestChildWinRate)
	}
	return cfg
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	setupLogging(opts.debug)

	if opts.seed != 0 {
		seed := opts.seed
		mcts.SetSeedGeneratorFn(func() int64 { return seed })
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := termenv.NewOutput(os.Stdout)
	if opts.games > 0 {
		err = runArena(ctx, opts, out)
	} else {
		err = runGame(ctx, opts, out)
	}
	if err != nil {
		log.Error().Err(err).Msg("connect3")
		os.Exit(1)
	}
}

func runGame(ctx context.Context, opts *options, out *termenv.Output) error {
	l1, err := player.ParseLevel(opts.p1)
	if err != nil {
		return err
	}
	l2, err := player.ParseLevel(opts.p2)
	if err != nil {
		return err
	}

	input := newTerminalInput(os.Stdin, out)
	seed := mcts.SeedGeneratorFn()
	build := func(level player.Level, disc board.Disc, offset int64) (player.Player, error) {
		cfg := opts.config(fmt.Sprintf("%v (%c)", level, disc.Rune())).SetInput(input).SetSeed(seed + offset)
		return player.New(level, disc, cfg)
	}

	p1, err := build(l1, board.A, 0)
	if err != nil {
		return err
	}
	p2, err := build(l2, board.B, 1)
	if err != nil {
		return err
	}

	match := bench.NewMatch(p1, p2)
	if opts.second {
		match = bench.NewMatch(p2, p1)
	}
	match.OnTurn = func(b *board.Board, p player.Player) {
		if _, human := p.(*player.HumanPlayer); human {
			fmt.Fprint(out, b.Render(out))
		}
	}
	match.OnMove = func(b *board.Board, p player.Player, column int) {
		if _, human := p.(*player.HumanPlayer); !human {
			fmt.Fprintf(out, "%s plays %d\n", p.Name(), column+1)
		}
	}

	record, err := match.Play(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(out, record.Board.Render(out))
	fmt.Fprintln(out, out.String(record.String()).Bold())
	return nil
}

func runArena(ctx context.Context, opts *options, out *termenv.Output) error {
	l1, err := player.ParseLevel(opts.p1)
	if err != nil {
		return err
	}
	l2, err := player.ParseLevel(opts.p2)
	if err != nil {
		return err
	}

	arena := bench.NewVersusArena(
		bench.LevelFactory(l1, *opts.config(l1.String())),
		bench.LevelFactory(l2, *opts.config(l2.String())),
	).WithContext(ctx).WithNames(l1.String(), l2.String())
	arena.Setup(opts.games, opts.workers)

	listener := bench.NewArenaListener(bench.LogListener{})
	if !opts.json {
		listener.Add(bench.NewTerminalListener(out))
	}

	summary, err := arena.Run(listener)
	if opts.json {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if encErr := encoder.Encode(summary); encErr != nil {
			return encErr
		}
	}
	return err
}
