// Package eval scores boards for the depth-limited searches.
package eval

import "github.com/IlikeChooros/go-connect3/pkg/board"

// Static scoring of a board from the point of view of 'disc'. Positive
// values favour 'disc'. Immediate wins are left to the search.
type Evaluator interface {
	Score(b *board.Board, disc board.Disc) int
}

// Weights of the window heuristic
type Weights struct {
	// Per own disc in the centre column
	Center int
	// Window with 2 own discs and 1 empty cell
	Two int
	// Window with 1 own disc and 2 empty cells
	One int
	// Opponent's window with 2 discs and 1 empty cell, subtracted
	OpponentTwo int
	// Opponent's window with 1 disc and 2 empty cells, subtracted
	OpponentOne int
}

// Offensive bias: own threats outweigh the opponent's
func DefaultWeights() Weights {
	return Weights{
		Center:      3,
		Two:         10,
		One:         2,
		OpponentTwo: 8,
		OpponentOne: 2,
	}
}

type Heuristic struct {
	Weights Weights
}

func NewHeuristic() *Heuristic {
	return &Heuristic{Weights: DefaultWeights()}
}

func (h *Heuristic) Score(b *board.Board, disc board.Disc) int {
	w := h.Weights
	score := 0

	for row := 0; row < board.Rows; row++ {
		if b.At(row, board.Center) == disc {
			score += w.Center
		}
	}

	opponent := disc.Opponent()
	for _, win := range windows {
		own, theirs, empty := 0, 0, 0
		for _, cell := range win {
			switch b.At(cell[0], cell[1]) {
			case disc:
				own++
			case opponent:
				theirs++
			default:
				empty++
			}
		}

		switch {
		case own == 2 && empty == 1:
			score += w.Two
		case own == 1 && empty == 2:
			score += w.One
		case theirs == 2 && empty == 1:
			score -= w.OpponentTwo
		case theirs == 1 && empty == 2:
			score -= w.OpponentOne
		}
	}
	return score
}

// Scores every board as 0, turns alpha-beta into plain minimax
type Zero struct{}

func (Zero) Score(*board.Board, board.Disc) int { return 0 }

// Every line of WinLength cells on the board, as (row, col) pairs
var windows [][board.WinLength][2]int

func init() {
	directions := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			for _, dir := range directions {
				endRow := row + (board.WinLength-1)*dir[0]
				endCol := col + (board.WinLength-1)*dir[1]
				if endRow < 0 || endRow >= board.Rows || endCol < 0 || endCol >= board.Cols {
					continue
				}

				var win [board.WinLength][2]int
				for k := range win {
					win[k] = [2]int{row + k*dir[0], col + k*dir[1]}
				}
				windows = append(windows, win)
			}
		}
	}
}

// Number of length-WinLength windows on the board
func Windows() int {
	return len(windows)
}
