package search

import "fmt"

type OutcomeKind uint8

const (
	Unknown OutcomeKind = iota
	Win
	Loss
	Draw
)

// Game theoretic result of a move, as far as the engine could tell.
// Plies counts half-moves from the root up to and including the winning
// move.
type Outcome struct {
	Kind  OutcomeKind
	Plies int
}

func (o Outcome) String() string {
	switch o.Kind {
	case Win:
		return fmt.Sprintf("win in %d", (o.Plies+1)/2)
	case Loss:
		return fmt.Sprintf("loss in %d", o.Plies/2)
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Classify a root move score of an exact solver
func ClassifyExact(score int) Outcome {
	switch {
	case score > ExactThreshold:
		return Outcome{Kind: Win, Plies: ExactBase - score}
	case score < -ExactThreshold:
		return Outcome{Kind: Loss, Plies: ExactBase + score}
	case score == 0:
		return Outcome{Kind: Draw}
	}
	return Outcome{Kind: Unknown}
}

// Classify a root move score of a search limited to 'depth' plies. A zero
// may be a draw or the horizon, so only decisive scores are classified.
func ClassifyDepth(score, depth int) Outcome {
	switch {
	case score > WinScore/2:
		return Outcome{Kind: Win, Plies: depth - (score - WinScore)}
	case score < -WinScore/2:
		return Outcome{Kind: Loss, Plies: depth - (-score - WinScore)}
	}
	return Outcome{Kind: Unknown}
}
