package player

import (
	"fmt"
	"strings"
)

type Level uint8

// The closed set of players, weakest to strongest
const (
	Human Level = iota
	Random
	Naive        // minimax
	Intermediate // shallow alpha-beta with the evaluator
	Advanced     // MCTS
	Expert       // deep alpha-beta with the evaluator
	Perfect      // exact, grid board with a transposition table
	Perfect2     // exact, bitboard negamax with a transposition table
	Perfect3     // Perfect2 with best-move hints and PVS
)

var levelNames = [...]string{
	Human:        "human",
	Random:       "random",
	Naive:        "naive",
	Intermediate: "intermediate",
	Advanced:     "advanced",
	Expert:       "expert",
	Perfect:      "perfect",
	Perfect2:     "perfect2",
	Perfect3:     "perfect3",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", l)
}

// Every level, in order
func Levels() []Level {
	levels := make([]Level, len(levelNames))
	for i := range levels {
		levels[i] = Level(i)
	}
	return levels
}

// Parse a level by name, case insensitive
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
