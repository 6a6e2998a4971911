package eval

import (
	"testing"

	"github.com/IlikeChooros/go-connect3/pkg/board"
)

func mustGrid(t *testing.T, notation string) *board.Board {
	t.Helper()
	b, err := board.FromGridNotation(notation)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestWindowCount(t *testing.T) {
	// 5x5, length 3: 15 horizontal, 15 vertical, 9 per diagonal direction
	if Windows() != 48 {
		t.Fatalf("windows %d, want 48", Windows())
	}
}

func TestEmptyBoardIsNeutral(t *testing.T) {
	h := NewHeuristic()
	b := board.NewBoard()
	if s := h.Score(b, board.A); s != 0 {
		t.Fatalf("empty board scored %d", s)
	}
}

func TestCenterAndOffenseBias(t *testing.T) {
	h := NewHeuristic()

	center := mustGrid(t, "5/5/5/5/2x2")
	edge := mustGrid(t, "5/5/5/5/x4")
	if h.Score(center, board.A) <= h.Score(edge, board.A) {
		t.Error("centre disc not preferred over an edge disc")
	}

	// Same shape for both sides, offense counts more
	own := mustGrid(t, "5/5/5/5/xx3")
	theirs := mustGrid(t, "5/5/5/5/oo3")
	if h.Score(own, board.A) <= -h.Score(theirs, board.A) {
		t.Error("own two-window not weighted above the opponent's")
	}
	if s := h.Score(mustGrid(t, "5/5/5/5/xx1oo"), board.A); s <= 0 {
		t.Errorf("mirrored threats scored %d, want a positive offensive bias", s)
	}
}

func TestScoreIsMirrorSymmetric(t *testing.T) {
	h := NewHeuristic()
	b, err := board.FromNotation("3324415", board.A)
	if err != nil {
		t.Fatal(err)
	}
	for _, disc := range []board.Disc{board.A, board.B} {
		if h.Score(b, disc) != h.Score(b.Mirror(), disc) {
			t.Errorf("mirror changed the score for %v", disc)
		}
	}
}

func TestZero(t *testing.T) {
	b := mustGrid(t, "5/5/5/5/xx3")
	if (Zero{}).Score(b, board.A) != 0 {
		t.Fatal("zero evaluator returned a score")
	}
}
