package mcts

import (
	"context"
	"strings"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1  // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime  StopReason = 2  // Time limit reached
	StopNodes     StopReason = 4  // Tree size limit reached
	StopDepth     StopReason = 8  // Depth limit reached
	StopCycles    StopReason = 16 // Cycle limit reached
	StopTerminal  StopReason = 32 // Nothing to search, the root is terminal
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
		{StopDepth, "Depth"},
		{StopCycles, "Cycles"},
		{StopTerminal, "Terminal"},
	}

	names := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			names = append(names, r.name)
		}
	}
	return strings.Join(names, "|")
}

type Limiter struct {
	limits *Limits
	timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		timer:  newTimer(),
		ctx:    context.Background(),
	}
}

// Called on search setup
func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

// Cancelling the context stops a running search
func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

// Safe to call from another goroutine
func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	if limits == nil {
		limits = DefaultLimits()
	}
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Milliseconds since the last Reset, at least 1
func (l *Limiter) Elapsed() uint32 {
	return uint32(l.timer.Deltatime())
}

// Every limit reached so far
func (l *Limiter) LimitMask(size, depth, cycles uint32) StopReason {
	reason := StopNone
	if l.Stop() {
		reason |= StopInterrupt
	}
	// If infinite, only the stop signal counts
	if l.limits.Infinite {
		return reason
	}

	if l.timer.IsEnd() {
		reason |= StopMovetime
	}
	if l.limits.Nodes <= size {
		reason |= StopNodes
	}
	if l.limits.Depth <= int(depth) {
		reason |= StopDepth
	}
	if l.limits.Cycles <= cycles {
		reason |= StopCycles
	}
	return reason
}

// Whether the search may run another iteration
func (l *Limiter) Ok(size, depth, cycles uint32) bool {
	return l.LimitMask(size, depth, cycles) == StopNone
}

// Store the reason the search ended, called once after the search loop
func (l *Limiter) EvaluateStopReason(size, depth, cycles uint32) {
	l.reason = l.LimitMask(size, depth, cycles)
}

func (l *Limiter) setReason(reason StopReason) {
	l.reason = reason
}
