package player

import (
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-connect3/pkg/eval"
	"github.com/IlikeChooros/go-connect3/pkg/mcts"
)

// Default search settings per level
const (
	DefaultNaiveDepth        = 3
	DefaultIntermediateDepth = 4
	DefaultExpertDepth       = 8
	DefaultIterations        = 2000
)

type Config struct {
	// Plies searched by the depth-limited levels, 0 picks the level default
	Depth int
	// MCTS playouts per decision
	Iterations uint32
	// MCTS time limit per decision in milliseconds, negative for none
	Movetime int
	// How MCTS picks the move to play among the root children
	FinalPolicy mcts.BestChildPolicy
	// Transposition table entries, 0 for the default size
	Capacity int
	// Log every candidate column and search counters at debug level
	Debug bool
	// Heuristic of the alpha-beta levels, nil for the default weights
	Evaluator eval.Evaluator
	// Source of every random choice, nil seeds one with mcts.SeedGeneratorFn
	Rand *rand.Rand
	// Where the human player reads its moves from
	Input InputSource
	// Display name, the level name when empty
	Name string
}

func DefaultConfig() *Config {
	return &Config{
		Iterations: DefaultIterations,
		Movetime:   mcts.DefaultMovetimeLimit,
	}
}

func (c *Config) SetDepth(depth int) *Config {
	c.Depth = max(depth, 0)
	return c
}

func (c *Config) SetIterations(iterations uint32) *Config {
	c.Iterations = iterations
	return c
}

func (c *Config) SetMovetime(movetime time.Duration) *Config {
	c.Movetime = int(movetime.Milliseconds())
	return c
}

func (c *Config) SetFinalPolicy(policy mcts.BestChildPolicy) *Config {
	c.FinalPolicy = policy
	return c
}

func (c *Config) SetCapacity(capacity int) *Config {
	c.Capacity = capacity
	return c
}

func (c *Config) SetDebug(debug bool) *Config {
	c.Debug = debug
	return c
}

func (c *Config) SetEvaluator(evaluator eval.Evaluator) *Config {
	c.Evaluator = evaluator
	return c
}

func (c *Config) SetRand(r *rand.Rand) *Config {
	c.Rand = r
	return c
}

// Seed a private random source
func (c *Config) SetSeed(seed int64) *Config {
	c.Rand = rand.New(rand.NewSource(seed))
	return c
}

func (c *Config) SetInput(input InputSource) *Config {
	c.Input = input
	return c
}

func (c *Config) SetName(name string) *Config {
	c.Name = name
	return c
}

func (c *Config) depthFor(level Level) int {
	if c.Depth > 0 {
		return c.Depth
	}
	switch level {
	case Naive:
		return DefaultNaiveDepth
	case Expert:
		return DefaultExpertDepth
	}
	return DefaultIntermediateDepth
}

func (c *Config) random() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(mcts.SeedGeneratorFn()))
}

func (c *Config) evaluator() eval.Evaluator {
	if c.Evaluator != nil {
		return c.Evaluator
	}
	return eval.NewHeuristic()
}
