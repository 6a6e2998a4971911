package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/player"
)

var (
	ErrMissingPlayer = errors.New("match needs two players")
	ErrSameDisc      = errors.New("both players use the same disc")
	// A player claimed a draw while columns were still open
	ErrIllegalDecision = errors.New("illegal decision")
)

// Finished game
type MatchRecord struct {
	Outcome GameOutcome
	// Disc of the winner, board.Empty on a draw
	Winner  board.Disc
	// Disc of the player who quit, board.Empty if nobody did
	QuitBy  board.Disc
	Board   *board.Board
}

func (r *MatchRecord) Moves() []int {
	return r.Board.History()
}

func (r *MatchRecord) Notation() string {
	return r.Board.Notation()
}

func (r *MatchRecord) String() string {
	switch {
	case r.QuitBy != board.Empty:
		return fmt.Sprintf("%v quit, %v wins (%s)", r.QuitBy, r.Winner, r.Notation())
	case r.Outcome.IsDraw:
		return fmt.Sprintf("draw (%s)", r.Notation())
	}
	return fmt.Sprintf("%v wins (%s)", r.Winner, r.Notation())
}

// Single game between two players, 'First' moves first
type Match struct {
	First  player.Player
	Second player.Player
	// Called after every disc placed on the board
	OnMove func(b *board.Board, p player.Player, column int)
	// Called before every decision
	OnTurn func(b *board.Board, p player.Player)
}

func NewMatch(first, second player.Player) *Match {
	return &Match{First: first, Second: second}
}

// Alternate the players on a fresh board until one of them wins, the board
// fills up, or a player quits. The context is checked between the moves,
// a decision in progress is not interrupted.
func (m *Match) Play(ctx context.Context) (*MatchRecord, error) {
	if m.First == nil || m.Second == nil {
		return nil, ErrMissingPlayer
	}
	if m.First.Disc() == m.Second.Disc() {
		return nil, fmt.Errorf("%w: %v", ErrSameDisc, m.First.Disc())
	}

	b := board.NewBoard()
	players := [2]player.Player{m.First, m.Second}
	first := m.First.Disc()

	for turn := 0; ; turn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := players[turn%2]
		if m.OnTurn != nil {
			m.OnTurn(b, p)
		}

		decision := p.Decide(b)
		switch decision.Kind {
		case player.Quit:
			winner := p.Disc().Opponent()
			return &MatchRecord{
				Outcome: GameOutcome{FirstPlayerWon: winner == first, Quit: true},
				Winner:  winner,
				QuitBy:  p.Disc(),
				Board:   b,
			}, nil
		case player.Draw:
			if len(b.AvailableColumns()) != 0 {
				return nil, fmt.Errorf("%w: %s claimed a draw on %s", ErrIllegalDecision, p.Name(), b.GridNotation())
			}
			return &MatchRecord{Outcome: GameOutcome{IsDraw: true}, Board: b}, nil
		}

		if err := b.Play(decision.Column, p.Disc()); err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name(), err)
		}
		if m.OnMove != nil {
			m.OnMove(b, p, decision.Column)
		}

		if b.CheckWin(p.Disc()) || b.IsFull() {
			outcome := computeOutcome(b, first)
			record := &MatchRecord{Outcome: outcome, Board: b}
			if !outcome.IsDraw {
				record.Winner = p.Disc()
			}
			return record, nil
		}
	}
}
