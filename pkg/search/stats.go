package search

import (
	"fmt"
	"time"
)

// Counters of a single search
type Stats struct {
	Nodes   uint64
	Elapsed time.Duration
}

// Nodes per second
func (s Stats) Rate() uint64 {
	if s.Elapsed <= 0 {
		return s.Nodes
	}
	return uint64(float64(s.Nodes) / s.Elapsed.Seconds())
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d time=%v nps=%d", s.Nodes, s.Elapsed.Round(time.Microsecond), s.Rate())
}
