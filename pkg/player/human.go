package player

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/rs/zerolog/log"
)

// Returned by input sources once there is nothing more to read, the human
// player treats it as quitting
var ErrInputClosed = errors.New("input closed")

// Where a human player's moves come from, a terminal prompt for example
type InputSource interface {
	// Ask for a 0-based column, quit=true ends the game
	NextColumn(b *board.Board, disc board.Disc) (column int, quit bool, err error)
	// Tell the human why the last column was not accepted
	Reject(err error)
}

// Player driven by an InputSource, asks again until the column is playable.
// Quits when the input is closed or fails with an error that is not about
// the column itself.
type HumanPlayer struct {
	name  string
	disc  board.Disc
	input InputSource
}

func (h *HumanPlayer) Disc() board.Disc {
	return h.disc
}

func (h *HumanPlayer) Name() string {
	return h.name
}

func (h *HumanPlayer) Decide(b *board.Board) Decision {
	if h.input == nil {
		panic(ErrUnconfigured)
	}
	if len(b.AvailableColumns()) == 0 {
		return Decision{Kind: Draw}
	}

	for {
		column, quit, err := h.input.NextColumn(b, h.disc)
		if quit || errors.Is(err, ErrInputClosed) {
			return Decision{Kind: Quit}
		}
		if err != nil && !rejectable(err) {
			log.Error().Err(err).Str("player", h.name).Msg("input-failed")
			return Decision{Kind: Quit}
		}
		if err == nil {
			err = validate(b, column)
		}
		if err == nil {
			return MoveTo(column)
		}

		log.Debug().Err(err).Str("player", h.name).Msg("rejected-input")
		h.input.Reject(err)
	}
}

// A bad column asks again, any other input error ends the game
func rejectable(err error) bool {
	return errors.Is(err, board.ErrInvalidColumn) || errors.Is(err, board.ErrColumnFull)
}

func validate(b *board.Board, column int) error {
	if column < 0 || column >= board.Cols {
		return fmt.Errorf("%w: %d (expected 1..%d)", board.ErrInvalidColumn, column+1, board.Cols)
	}
	if !b.IsValidColumn(column) {
		return fmt.Errorf("%w: %d", board.ErrColumnFull, column+1)
	}
	return nil
}
