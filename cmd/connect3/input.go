package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/player"
	"github.com/muesli/termenv"
)

// Reads 1-based columns from a terminal, one per line
type terminalInput struct {
	reader *bufio.Reader
	out    *termenv.Output
}

func newTerminalInput(r io.Reader, out *termenv.Output) *terminalInput {
	return &terminalInput{reader: bufio.NewReader(r), out: out}
}

func (t *terminalInput) NextColumn(b *board.Board, disc board.Disc) (int, bool, error) {
	fmt.Fprintf(t.out, "%s to move, column (1-%d) or q to quit: ", t.out.String(string(disc.Rune())).Bold(), board.Cols)

	line, err := t.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.out)
			return 0, false, player.ErrInputClosed
		}
		return 0, false, fmt.Errorf("read column: %w", err)
	}
	return parseColumn(line)
}

func (t *terminalInput) Reject(err error) {
	fmt.Fprintln(t.out, t.out.String(err.Error()).Foreground(t.out.Color("1")))
}

// Parse a 1-based column label, "q" or "quit" ends the game
func parseColumn(line string) (column int, quit bool, err error) {
	text := strings.ToLower(strings.TrimSpace(line))
	switch text {
	case "q", "quit", "exit":
		return 0, true, nil
	case "":
		return 0, false, fmt.Errorf("%w: empty input", board.ErrInvalidColumn)
	}

	label, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", board.ErrInvalidColumn, text)
	}
	return label - 1, false, nil
}
