// Package player wraps every search engine behind one decision contract,
// used by the match loop once per turn.
package player

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-connect3/pkg/board"
)

var (
	// Decide called on a player without an engine
	ErrUnconfigured = errors.New("player has no engine configured")
	ErrUnknownLevel = errors.New("unknown level")
)

type DecisionKind uint8

const (
	// Drop a disc into Decision.Column
	Move DecisionKind = iota
	// No legal column is left
	Draw
	// The human gave up, only returned by the human adapter
	Quit
)

type Decision struct {
	Kind   DecisionKind
	Column int
}

func MoveTo(column int) Decision {
	return Decision{Kind: Move, Column: column}
}

func (d Decision) String() string {
	switch d.Kind {
	case Draw:
		return "draw"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("column %d", d.Column+1)
}

// Makes one decision per turn. The board is the live game board, an
// implementation may mutate it while deciding but must restore it before
// returning.
type Player interface {
	Decide(b *board.Board) Decision
	Disc() board.Disc
	Name() string
}
