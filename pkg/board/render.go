package board

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// ANSI colors used for the discs, falls back to plain text on terminals
// without color support (termenv degrades the profile)
const (
	colorA     = "1" // red
	colorB     = "3" // yellow
	colorFrame = "8"
)

// Render the board with colored discs, highlighting the last move.
// Pass termenv.NewOutput(os.Stdout) for the terminal.
func (b *Board) Render(out *termenv.Output) string {
	last := -1
	if n := len(b.history); n > 0 {
		last = b.history[n-1]
	}

	builder := strings.Builder{}
	frame := out.Color(colorFrame)
	for row := 0; row < Rows; row++ {
		builder.WriteString(out.String("|").Foreground(frame).String())
		for col := 0; col < Cols; col++ {
			disc := b.grid[row][col]
			style := out.String(" " + string(disc.Rune()) + " ")
			switch disc {
			case A:
				style = style.Foreground(out.Color(colorA)).Bold()
			case B:
				style = style.Foreground(out.Color(colorB)).Bold()
			default:
				style = style.Faint()
			}
			// Top disc of the last played column
			if col == last && row == b.free[col]+1 {
				style = style.Underline()
			}
			builder.WriteString(style.String())
		}
		builder.WriteString(out.String("|").Foreground(frame).String())
		builder.WriteByte('\n')
	}

	builder.WriteByte(' ')
	for col := 0; col < Cols; col++ {
		builder.WriteString(out.String(fmt.Sprintf(" %d ", col+1)).Foreground(frame).String())
	}
	builder.WriteByte('\n')
	return builder.String()
}
