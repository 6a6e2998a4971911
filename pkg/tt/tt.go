// Package tt implements a bounded transposition table with first-in
// first-out eviction, shared by the exact solvers.
package tt

type Bound uint8

// Kind of the stored value
const (
	// The true value of the position
	Exact Bound = iota
	// A proven minimum (the search failed high)
	Lower
	// A proven maximum (the search failed low)
	Upper
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}
	return "unknown"
}

// Column hint meaning 'no best move stored'
const NoMove int8 = -1

type Entry struct {
	Value int
	Bound Bound
	Move  int8
}

// Apply the entry to the search window. Returns done=true with the value
// to return when the entry alone decides the node: an exact value, or a
// bound that closes the window. Otherwise returns the tightened window.
func (e Entry) Tighten(alpha, beta int) (value, newAlpha, newBeta int, done bool) {
	switch e.Bound {
	case Exact:
		return e.Value, alpha, beta, true
	case Lower:
		alpha = max(alpha, e.Value)
	case Upper:
		beta = min(beta, e.Value)
	}
	if alpha >= beta {
		return e.Value, alpha, beta, true
	}
	return e.Value, alpha, beta, false
}

// Classify the best value found by a search relative to its original window
func BoundFor(best, alphaOrig, beta int) Bound {
	if best <= alphaOrig {
		return Upper
	}
	if best >= beta {
		return Lower
	}
	return Exact
}

// Store win/loss scores relative to the node, not to the search root.
// 'threshold' separates decisive scores from ordinary ones, 'ply' is the
// distance from the root at which the node was searched.
func ToTT(score, ply, threshold int) int {
	if score > threshold {
		return score + ply
	}
	if score < -threshold {
		return score - ply
	}
	return score
}

// Reverse of ToTT, for a node found at 'ply'
func FromTT(score, ply, threshold int) int {
	if score > threshold {
		return score - ply
	}
	if score < -threshold {
		return score + ply
	}
	return score
}
