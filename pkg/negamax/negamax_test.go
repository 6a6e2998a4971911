package negamax

import (
	"math/rand"
	"testing"

	"github.com/IlikeChooros/go-connect3/pkg/bitboard"
	"github.com/IlikeChooros/go-connect3/pkg/board"
	"github.com/IlikeChooros/go-connect3/pkg/search"
)

// A to move, at most 10 empty cells, nobody has won yet
var endgames = []string{
	"xx2o/oo2x/xx2o/oo2o/xox1x",
	"xx1o1/xo1o1/ox1x1/xo1o1/xx1oo",
	"o2xx/x2ox/xx1xo/oo1oo/ox1ox",
	"1x1x1/1o1x1/1x1ox/oo1xo/xooxo",
	"3xo/3oo/xo1ox/xx1xo/ox1xo",
	"o2x1/x2o1/o1ox1/o1xox/xoxox",
	"1x1o1/1x1x1/1o1o1/ooxox/xxoxo",
	"2x2/1xo2/oox2/xxoox/ooxxo",
	"4x/1o2x/1x1oo/xooxx/oxoxo",
	"2xx1/x1oo1/ooxxo/xxoox/ooxxo",
}

var variants = map[string]Options{
	"plain":     {},
	"pvs":       {PVS: true},
	"tt":        BasicOptions(),
	"tt+hints":  {TT: true, Hints: true},
	"tt+pvs":    {TT: true, PVS: true},
	"full":      FullOptions(),
	"tiny-full": {TT: true, Hints: true, PVS: true, Capacity: 8},
}

func mustGrid(t *testing.T, notation string) *board.Board {
	t.Helper()
	b, err := board.FromGridNotation(notation)
	if err != nil {
		t.Fatalf("%s: %v", notation, err)
	}
	return b
}

// Every line, no pruning
func bruteForce(position, mask uint64, ply int) int {
	if bitboard.CheckWin(position ^ mask) {
		return -(search.ExactBase - ply)
	}
	if bitboard.IsFull(mask) {
		return 0
	}
	best := -search.Infinity
	for column := 0; column < bitboard.Width; column++ {
		if bitboard.CanPlay(mask, column) {
			p, m := bitboard.Play(position, mask, column)
			best = max(best, -bruteForce(p, m, ply+1))
		}
	}
	return best
}

// Endgames plus a few random continuations of each, with the side to move
func positions(t *testing.T, r *rand.Rand) ([]*board.Board, []board.Disc) {
	var boards []*board.Board
	var toMove []board.Disc
	for _, notation := range endgames {
		base := mustGrid(t, notation)
		boards = append(boards, base)
		toMove = append(toMove, board.A)

		for i := 0; i < 3; i++ {
			b, disc := base.Clone(), board.A
			for k := r.Intn(4); k > 0 && b.Winner() == board.Empty && !b.IsFull(); k-- {
				columns := b.AvailableColumns()
				b.Drop(columns[r.Intn(len(columns))], disc)
				disc = disc.Opponent()
			}
			boards = append(boards, b)
			toMove = append(toMove, disc)
		}
	}
	return boards, toMove
}

// Random reachable position, played from the empty board with A first and
// never completing a line, until 'done' holds. Returns the side to move.
func randomEndgame(r *rand.Rand, done func(*board.Board) bool) (*board.Board, board.Disc) {
	for {
		b, disc := board.NewBoard(), board.A
		for !done(b) {
			var safe []int
			for _, column := range b.AvailableColumns() {
				b.Drop(column, disc)
				if !b.CheckWin(disc) {
					safe = append(safe, column)
				}
				b.Undo(column)
			}
			if len(safe) == 0 {
				break
			}
			b.Drop(safe[r.Intn(len(safe))], disc)
			disc = disc.Opponent()
		}
		if done(b) {
			return b, disc
		}
	}
}

func TestVariantsMatchBruteForce(t *testing.T) {
	boards, toMove := positions(t, rand.New(rand.NewSource(7)))

	for name, opts := range variants {
		t.Run(name, func(t *testing.T) {
			solver := New(opts)
			for i, b := range boards {
				position, mask := bitboard.Encode(b, toMove[i])
				want := bruteForce(position, mask, 0)
				if got := solver.Solve(b, toMove[i]); got != want {
					t.Errorf("%s (%v to move): solved %d, brute force %d", b.GridNotation(), toMove[i], got, want)
				}
			}
		})
	}
}

func TestPVSMatchesPlainSearch(t *testing.T) {
	boards, toMove := positions(t, rand.New(rand.NewSource(8)))
	pvs := New(Options{TT: true, Hints: true, PVS: true})
	plain := New(Options{TT: true, Hints: true})

	for i, b := range boards {
		want := plain.Analyze(b, toMove[i])
		got := pvs.Analyze(b, toMove[i])
		if len(got) != len(want) {
			t.Fatalf("%s: %d lines, want %d", b.GridNotation(), len(got), len(want))
		}
		for k := range want {
			if got[k] != want[k] {
				t.Errorf("%s: pvs %+v, plain %+v", b.GridNotation(), got[k], want[k])
			}
		}
	}
}

func TestPVSMatchesPlainSearchRandomEndgames(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	pvs := New(Options{PVS: true})
	plain := New(Options{})

	for i := 0; i < 200; i++ {
		b, toMove := randomEndgame(r, func(b *board.Board) bool {
			return board.Size-b.Moves() <= 10
		})
		if got, want := pvs.Solve(b, toMove), plain.Solve(b, toMove); got != want {
			t.Errorf("%s (%v to move): pvs %d, plain %d", b.GridNotation(), toMove, got, want)
		}
		if got, want := New(FullOptions()).Solve(b, toMove), pvs.Solve(b, toMove); got != want {
			t.Errorf("%s (%v to move): full %d, pvs %d", b.GridNotation(), toMove, got, want)
		}
	}
}

func TestEmptyBoardIsFirstPlayerWin(t *testing.T) {
	b := board.NewBoard()
	for _, opts := range []Options{BasicOptions(), FullOptions()} {
		solver := New(opts)
		if got, want := solver.Solve(b, board.A), search.ExactBase-9; got != want {
			t.Errorf("%+v: empty board scored %d, want %d", opts, got, want)
		}
		if solver.Stats().Nodes == 0 {
			t.Errorf("%+v: no nodes counted", opts)
		}
	}

	// and the grid solver agrees
	if got := search.NewSolver(0).Solve(b, board.A); got != search.ExactBase-9 {
		t.Errorf("grid solver scored %d", got)
	}
}

func TestForcedLossInOne(t *testing.T) {
	b := mustGrid(t, "2xx1/x1oo1/ooxxo/xxoox/ooxxo")
	solver := New(FullOptions())

	if got, want := solver.Solve(b, board.A), -(search.ExactBase - 2); got != want {
		t.Fatalf("solved %d, want %d", got, want)
	}
	lines := solver.Analyze(b, board.A)
	if len(lines) != 3 {
		t.Fatalf("%d lines, want 3", len(lines))
	}
	for _, line := range lines {
		if line.Outcome.Kind != search.Loss || line.Outcome.Plies != 2 {
			t.Errorf("column %d: %v", line.Column, line.Outcome)
		}
	}
}

func TestFullBoardScoresZero(t *testing.T) {
	b := mustGrid(t, "ooxxo/xxoox/ooxxo/xxoox/ooxxo")
	for name, opts := range variants {
		if got := New(opts).Solve(b, board.A); got != 0 {
			t.Errorf("%s: full board scored %d", name, got)
		}
	}

	column, lines := New(FullOptions()).Best(b, board.A, rand.New(rand.NewSource(1)))
	if column != -1 || len(lines) != 0 {
		t.Errorf("chose %d on a full board", column)
	}
}

func TestHintsSurviveMirroring(t *testing.T) {
	b, err := board.FromNotation("3221", board.A)
	if err != nil {
		t.Fatal(err)
	}
	mirror := b.Mirror()

	solver := New(FullOptions())
	value := solver.Solve(b, board.A)
	if got := solver.Solve(mirror, board.A); got != value {
		t.Fatalf("mirror scored %d, original %d", got, value)
	}

	position, mask := bitboard.Encode(b, board.A)
	mPosition, mMask := bitboard.Encode(mirror, board.A)
	key, mirrored := bitboard.Canonical(position, mask)
	mKey, mMirrored := bitboard.Canonical(mPosition, mMask)
	if key != mKey || mirrored == mMirrored {
		t.Fatal("position and mirror should share a key from opposite sides")
	}

	entry, ok := solver.table.Get(key)
	if !ok || entry.Move < 0 {
		t.Fatal("root position has no stored best column")
	}
	hint, mHint := orient(entry.Move, mirrored), orient(entry.Move, mMirrored)
	if int(hint) != bitboard.Width-1-int(mHint) {
		t.Errorf("hints %d and %d are not mirror images", hint, mHint)
	}
	if !bitboard.CanPlay(mask, int(hint)) || !bitboard.CanPlay(mMask, int(mHint)) {
		t.Error("hint points to a full column")
	}
}

func TestTinyTableEvicts(t *testing.T) {
	solver := New(Options{TT: true, Capacity: 8})
	if got := solver.Solve(board.NewBoard(), board.A); got != search.ExactBase-9 {
		t.Fatalf("scored %d with a tiny table", got)
	}
	stats := solver.TableStats()
	if stats.Size > 8 || stats.Evictions == 0 {
		t.Errorf("unexpected table stats %v", stats)
	}

	solver.Reset()
	if solver.TableStats().Size != 0 {
		t.Error("reset kept entries")
	}
}

func TestBestOpensInCenter(t *testing.T) {
	column, _ := New(FullOptions()).Best(board.NewBoard(), board.A, rand.New(rand.NewSource(1)))
	if column != board.Center {
		t.Fatalf("opened in %d", column)
	}
}

func BenchmarkSolveEmptyBoard(b *testing.B) {
	empty := board.NewBoard()
	for i := 0; i < b.N; i++ {
		New(FullOptions()).Solve(empty, board.A)
	}
}
