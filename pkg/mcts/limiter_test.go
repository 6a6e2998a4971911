package mcts

import (
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := NewLimiter()
	limiter.Reset()

	if !limiter.Ok(1000000, 1000000, 1000000) {
		t.Error("Default limiter should search infinitely")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(101, 1, 1); ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}
	if ok := limiter.Ok(99, 1, 1); !ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetCycles(10))
	limiter.Reset()
	if ok := limiter.Ok(1, 1, 10); ok {
		t.Errorf("<Cycles: ok=%v, want=%v", ok, !ok)
	}
	limiter.EvaluateStopReason(1, 1, 10)
	if limiter.StopReason() != StopCycles {
		t.Errorf("stop reason %v, want Cycles", limiter.StopReason())
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(100))
	limiter.Reset()
	time.Sleep(time.Millisecond * 101)
	if ok := limiter.Ok(1, 1, 1); ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1, 1, 1); !ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterStop(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetCycles(10).SetDepth(3))
	limiter.Reset()

	limiter.SetStop(true)
	limiter.EvaluateStopReason(1, 3, 10)
	want := StopInterrupt | StopDepth | StopCycles
	if limiter.StopReason() != want {
		t.Errorf("stop reason %v, want %v", limiter.StopReason(), want)
	}
	if limiter.StopReason().String() != "Interrupt|Depth|Cycles" {
		t.Errorf("stop reason rendered as %q", limiter.StopReason().String())
	}

	limiter.Reset()
	if limiter.Stop() || limiter.StopReason() != StopNone {
		t.Error("reset kept the stop signal")
	}
}

func TestCyclesPerSecond(t *testing.T) {
	tests := []struct {
		cycles  int
		elapsed uint32
		want    uint32
	}{
		{0, 1, 0},
		{500, 250, 2000},
		{10, 0, 10000},
		// cycles*1000 does not fit in 32 bits
		{5_000_000, 2_000, 2_500_000},
		{20_000_000, 10_000, 2_000_000},
	}

	for _, tt := range tests {
		if got := cyclesPerSecond(tt.cycles, tt.elapsed); got != tt.want {
			t.Errorf("cyclesPerSecond(%d, %d) = %d, want %d", tt.cycles, tt.elapsed, got, tt.want)
		}
	}
}
