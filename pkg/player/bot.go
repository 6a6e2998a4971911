package player

import (
	"fmt"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/mcts"
	"github.com/IlikeChooros/go-connect3/pkg/negamax"
	"github.com/IlikeChooros/go-connect3/pkg/search"
	"github.com/rs/zerolog/log"
)

// Computer player, one engine per level. Owns its engine, including the
// transposition table, so a Bot must not be shared between games running
// at the same time.
type Bot struct {
	name   string
	level  Level
	disc   board.Disc
	debug  bool
	engine engine
}

// Build the player of 'level' for 'disc'. A nil config means
// DefaultConfig().
func New(level Level, disc board.Disc, cfg *Config) (Player, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if disc != board.A && disc != board.B {
		return nil, fmt.Errorf("invalid disc %v", disc)
	}

	name := cfg.Name
	if name == "" {
		name = level.String()
	}

	if level == Human {
		if cfg.Input == nil {
			return nil, fmt.Errorf("%v player needs an input source", level)
		}
		return &HumanPlayer{name: name, disc: disc, input: cfg.Input}, nil
	}

	engine, err := newEngine(level, cfg)
	if err != nil {
		return nil, err
	}
	return &Bot{name: name, level: level, disc: disc, debug: cfg.Debug, engine: engine}, nil
}

func newEngine(level Level, cfg *Config) (engine, error) {
	r := cfg.random()

	switch level {
	case Random:
		return &randomEngine{rand: r}, nil
	case Naive:
		return &depthEngine{search: search.NewMinimax(cfg.depthFor(level)), rand: r}, nil
	case Intermediate, Expert:
		return &depthEngine{search: search.NewAlphaBeta(cfg.depthFor(level), cfg.evaluator()), rand: r}, nil
	case Advanced:
		limits := mcts.DefaultLimits().SetCycles(max(cfg.Iterations, 1))
		if cfg.Movetime > 0 {
			limits.SetMovetime(cfg.Movetime)
		}
		e := &mctsEngine{limits: *limits, policy: cfg.FinalPolicy, rand: r, debug: cfg.Debug}
		if cfg.Debug {
			e.listener = debugListener()
		}
		return e, nil
	case Perfect:
		return &gridSolverEngine{solver: search.NewSolver(cfg.Capacity), rand: r}, nil
	case Perfect2:
		opts := negamax.BasicOptions()
		opts.Capacity = cfg.Capacity
		return &negamaxEngine{solver: negamax.New(opts), rand: r}, nil
	case Perfect3:
		opts := negamax.FullOptions()
		opts.Capacity = cfg.Capacity
		return &negamaxEngine{solver: negamax.New(opts), rand: r}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownLevel, level)
}

func (p *Bot) Disc() board.Disc {
	return p.disc
}

func (p *Bot) Name() string {
	return p.name
}

func (p *Bot) Level() Level {
	return p.level
}

// Panics with ErrUnconfigured on a Bot not built by New
func (p *Bot) Decide(b *board.Board) Decision {
	if p.engine == nil {
		panic(ErrUnconfigured)
	}
	if len(b.AvailableColumns()) == 0 {
		return Decision{Kind: Draw}
	}

	column, lines, stats := p.engine.choose(b, p.disc)
	if p.debug {
		p.report(column, lines, stats)
	}
	if column < 0 {
		return Decision{Kind: Draw}
	}
	return MoveTo(column)
}

func (p *Bot) report(column int, lines []search.Line, stats search.Stats) {
	for _, line := range lines {
		log.Debug().
			Str("player", p.name).
			Int("column", line.Column+1).
			Int("score", line.Score).
			Str("outcome", line.Outcome.String()).
			Msg("candidate")
	}
	log.Debug().
		Str("player", p.name).
		Str("level", p.level.String()).
		Int("column", column+1).
		Uint64("nodes", stats.Nodes).
		Uint64("nps", stats.Rate()).
		Dur("elapsed", stats.Elapsed).
		Msg("decision")
}

func debugListener() *mcts.StatsListener[int] {
	listener := mcts.NewStatsListener[int]()
	listener.OnStop(func(stats mcts.ListenerTreeStats[int]) {
		event := log.Debug().
			Int("cycles", stats.Cycles).
			Int("maxdepth", stats.Maxdepth).
			Uint32("cps", stats.Cps).
			Uint32("size", stats.Size).
			Str("stop", stats.StopReason.String())
		if len(stats.Lines) > 0 {
			event = event.
				Int("best", stats.Lines[0].BestMove+1).
				Float64("winrate", stats.Lines[0].Eval)
		}
		event.Msg("mcts-stop")
	})
	return &listener
}
