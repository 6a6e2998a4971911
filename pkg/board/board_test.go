package board

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

// Play random legal moves until the game ends or 'maxMoves' are made
func randomGame(r *rand.Rand, maxMoves int) *Board {
	b := NewBoard()
	disc := A
	for i := 0; i < maxMoves && b.Winner() == Empty; i++ {
		columns := b.AvailableColumns()
		if len(columns) == 0 {
			break
		}
		b.Drop(columns[r.Intn(len(columns))], disc)
		disc = disc.Opponent()
	}
	return b
}

func TestDropFillsBottomUp(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		if !b.Drop(0, A) {
			t.Fatalf("drop %d into column 0 rejected", i)
		}
		if got := b.At(Rows-1-i, 0); got != A {
			t.Fatalf("drop %d landed wrong, row %d holds %v", i, Rows-1-i, got)
		}
	}

	if b.Drop(0, B) {
		t.Fatal("drop into a full column accepted")
	}
	if b.Drop(-1, A) || b.Drop(Cols, A) {
		t.Fatal("drop into out of range column accepted")
	}
	if b.Height(0) != Rows || b.Moves() != Rows {
		t.Fatalf("height %d moves %d, want %d", b.Height(0), b.Moves(), Rows)
	}
	if b.IsValidColumn(0) {
		t.Fatal("full column reported as valid")
	}
}

func TestPlayErrors(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		if err := b.Play(2, A); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name   string
		column int
		want   error
	}{
		{"below range", -1, ErrInvalidColumn},
		{"above range", Cols, ErrInvalidColumn},
		{"full", 2, ErrColumnFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Play(tt.column, B); !errors.Is(err, tt.want) {
				t.Errorf("Play(%d) = %v, want %v", tt.column, err, tt.want)
			}
		})
	}
}

func TestUndoIsStrictInverse(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for game := 0; game < 200; game++ {
		b := NewBoard()
		disc := A
		for {
			columns := b.AvailableColumns()
			if len(columns) == 0 {
				break
			}
			before := b.Clone()
			column := columns[r.Intn(len(columns))]

			b.Drop(column, disc)
			b.Undo(column)
			if !b.Equal(before) {
				t.Fatalf("game %d: drop/undo of column %d changed the board\n%v\nwant\n%v", game, column, b, before)
			}

			b.Drop(column, disc)
			disc = disc.Opponent()
		}
	}
}

func TestUndoMisusePanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Board
		undo  int
	}{
		{"empty column", NewBoard, 1},
		{"out of range", NewBoard, Cols},
		{"out of order", func() *Board {
			b := NewBoard()
			b.Drop(0, A)
			b.Drop(1, B)
			return b
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrEngineMisuse) {
					t.Fatalf("expected ErrEngineMisuse panic, got %v", r)
				}
			}()
			tt.setup().Undo(tt.undo)
		})
	}
}

func TestScopedAlwaysUndoes(t *testing.T) {
	b := NewBoard()
	b.Drop(2, A)
	before := b.Clone()

	won := Scoped(b, 3, B, func(b *Board) bool {
		if b.Moves() != 2 {
			t.Fatalf("scoped drop not applied, moves=%d", b.Moves())
		}
		return b.CheckWin(B)
	})
	if won || !b.Equal(before) {
		t.Fatalf("scoped drop leaked: won=%v\n%v", won, b)
	}

	func() {
		defer func() { _ = recover() }()
		Scoped(b, 4, A, func(b *Board) int { panic("boom") })
	}()
	if !b.Equal(before) {
		t.Fatal("scoped drop leaked after panic")
	}
}

func TestCheckWinDirections(t *testing.T) {
	tests := []struct {
		name string
		grid string
		disc Disc
		want bool
	}{
		{"empty", "5/5/5/5/5", A, false},
		{"horizontal", "5/5/5/5/1xxx1", A, true},
		{"vertical", "5/5/x4/x4/x4", A, true},
		{"diagonal", "5/5/2x2/1xo2/xoo2", A, true},
		{"anti diagonal", "5/5/o4/xo3/xxo2", B, true},
		{"two only", "5/5/5/5/xx1xx", A, false},
		{"other color", "5/5/5/5/ooo2", A, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromGridNotation(tt.grid)
			if err != nil {
				t.Fatal(err)
			}
			if got := b.CheckWin(tt.disc); got != tt.want {
				t.Errorf("CheckWin(%v) = %v, want %v\n%v", tt.disc, got, tt.want, b)
			}
		})
	}
}

func TestBottomRowScenario(t *testing.T) {
	b, err := FromGridNotation("5/5/5/5/1xx2")
	if err != nil {
		t.Fatal(err)
	}
	if b.At(4, 1) != A || b.At(4, 2) != A {
		t.Fatalf("setup failed\n%v", b)
	}
	if b.CheckWin(A) {
		t.Fatal("two discs reported as a win")
	}

	if !b.Drop(3, A) {
		t.Fatal("drop rejected")
	}
	if !b.CheckWin(A) {
		t.Fatalf("expected horizontal win along the bottom row\n%v", b)
	}
}

func TestWinSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		b := randomGame(r, r.Intn(Size+1))
		m := b.Mirror()
		for _, disc := range []Disc{A, B} {
			if b.CheckWin(disc) != m.CheckWin(disc) {
				t.Fatalf("CheckWin(%v) differs under mirror\n%v\n%v", disc, b, m)
			}
		}
		if !m.Mirror().Equal(b) {
			t.Fatal("mirror is not an involution")
		}
	}
}

func TestNotation(t *testing.T) {
	b, err := FromNotation("3324", A)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Notation(); got != "3324" {
		t.Errorf("Notation() = %q", got)
	}
	if got := b.GridNotation(); got != "5/5/5/2o2/1xxo1" {
		t.Errorf("GridNotation() = %q", got)
	}
	if got := b.ToMove(A); got != A {
		t.Errorf("ToMove = %v, want A", got)
	}

	fromGrid, err := FromGridNotation(b.GridNotation())
	if err != nil {
		t.Fatal(err)
	}
	if fromGrid.GridNotation() != b.GridNotation() {
		t.Errorf("grid round trip: %q != %q", fromGrid.GridNotation(), b.GridNotation())
	}

	bad := []string{"36", "3a", "3333333", "1212121"}
	for _, notation := range bad {
		if _, err := FromNotation(notation, A); !errors.Is(err, ErrNotation) {
			t.Errorf("FromNotation(%q) err = %v, want ErrNotation", notation, err)
		}
	}

	badGrid := []string{"5/5/5/5", "5/5/5/x4/5", "5/5/5/5/6", "5/5/5/5/xxq2"}
	for _, notation := range badGrid {
		if _, err := FromGridNotation(notation); !errors.Is(err, ErrNotation) {
			t.Errorf("FromGridNotation(%q) err = %v, want ErrNotation", notation, err)
		}
	}
}

func TestRender(t *testing.T) {
	b, _ := FromNotation("33", A)
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

	rendered := b.Render(out)
	if !strings.Contains(rendered, "X") || !strings.Contains(rendered, "O") {
		t.Fatalf("rendered board misses discs:\n%s", rendered)
	}
	if lines := strings.Count(rendered, "\n"); lines != Rows+1 {
		t.Fatalf("rendered %d lines, want %d", lines, Rows+1)
	}
}
