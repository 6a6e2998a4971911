package tt

import "testing"

func TestTableFIFOEviction(t *testing.T) {
	table := NewTable[int](3)
	for key := 1; key <= 3; key++ {
		table.Put(key, Entry{Value: key * 10})
	}

	// Updating does not refresh the age of key 1
	table.Put(1, Entry{Value: 11})
	table.Put(4, Entry{Value: 40})

	if _, ok := table.Get(1); ok {
		t.Fatal("oldest entry was not evicted")
	}
	for _, key := range []int{2, 3, 4} {
		if _, ok := table.Get(key); !ok {
			t.Fatalf("entry %d missing", key)
		}
	}

	table.Put(5, Entry{Value: 50})
	if _, ok := table.Get(2); ok {
		t.Fatal("second oldest entry was not evicted")
	}
	if table.Len() != 3 {
		t.Fatalf("len %d, want 3", table.Len())
	}

	stats := table.Stats()
	if stats.Evictions != 2 {
		t.Fatalf("evictions %d, want 2", stats.Evictions)
	}

	table.Clear()
	if table.Len() != 0 {
		t.Fatal("clear left entries behind")
	}
	table.Put(6, Entry{})
	if _, ok := table.Get(6); !ok {
		t.Fatal("table unusable after clear")
	}
}

func TestTighten(t *testing.T) {
	tests := []struct {
		name        string
		entry       Entry
		alpha, beta int
		wantAlpha   int
		wantBeta    int
		wantDone    bool
	}{
		{"exact", Entry{Value: 5, Bound: Exact}, -10, 10, -10, 10, true},
		{"lower tightens", Entry{Value: 3, Bound: Lower}, -10, 10, 3, 10, false},
		{"lower below alpha", Entry{Value: -20, Bound: Lower}, -10, 10, -10, 10, false},
		{"lower closes", Entry{Value: 12, Bound: Lower}, -10, 10, 12, 10, true},
		{"upper tightens", Entry{Value: 4, Bound: Upper}, -10, 10, -10, 4, false},
		{"upper closes", Entry{Value: -10, Bound: Upper}, -10, 10, -10, -10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, alpha, beta, done := tt.entry.Tighten(tt.alpha, tt.beta)
			if done != tt.wantDone || alpha != tt.wantAlpha || beta != tt.wantBeta {
				t.Errorf("Tighten = (%d, %d, %d, %v), want (_, %d, %d, %v)",
					value, alpha, beta, done, tt.wantAlpha, tt.wantBeta, tt.wantDone)
			}
			if value != tt.entry.Value {
				t.Errorf("value %d, want %d", value, tt.entry.Value)
			}
		})
	}
}

func TestBoundFor(t *testing.T) {
	if BoundFor(-5, -5, 5) != Upper {
		t.Error("fail low not classified as upper bound")
	}
	if BoundFor(5, -5, 5) != Lower {
		t.Error("fail high not classified as lower bound")
	}
	if BoundFor(0, -5, 5) != Exact {
		t.Error("value inside the window not exact")
	}
}

func TestDepthNormalization(t *testing.T) {
	const (
		base      = 100
		threshold = base / 2
	)

	// A win 7 plies from the root, first seen at ply 3 and then at ply 5
	score := base - 7
	stored := ToTT(score, 3, threshold)
	if stored != base-4 {
		t.Fatalf("stored %d, want node relative %d", stored, base-4)
	}
	if got := FromTT(stored, 5, threshold); got != base-9 {
		t.Fatalf("read at ply 5: %d, want %d", got, base-9)
	}
	if got := FromTT(ToTT(-score, 3, threshold), 3, threshold); got != -score {
		t.Fatalf("loss round trip: %d", got)
	}
	if ToTT(0, 7, threshold) != 0 || FromTT(0, 7, threshold) != 0 {
		t.Fatal("draw score was adjusted")
	}
}
