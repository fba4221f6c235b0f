// Package assess implements the classification engine: pure functions
// mapping a pair of ratings to a quadrant, boundary coaching text, and
// the evidence-gate flag.
package assess

import (
	"edscope/internal/catalog"
	"edscope/internal/domain"
)

// HighThreshold is the rating at which an axis counts as "high". The
// boundary-aware variant is used throughout: a 3 never counts as high,
// and a double 3 resolves to the dedicated Uncertain state instead of a
// quadrant.
const HighThreshold = 4

// Classify maps a pair of ratings to a quadrant. When both ratings sit
// at the boundary value the fixed Uncertain result is returned before
// any threshold comparison; otherwise the quadrant is resolved from
// (yHigh, xHigh) against the catalog.
func Classify(pair domain.PairCode, x, y domain.Rating, threshold domain.Rating) catalog.Quadrant {
	if x.AtBoundary() && y.AtBoundary() {
		return catalog.Uncertain()
	}
	xHigh := x >= threshold
	yHigh := y >= threshold
	return catalog.QuadrantFor(pair, yHigh, xHigh)
}

// EdgeCoaching returns the boundary advisory for the given ratings, if
// one applies. Rules are evaluated in order, first match wins; when no
// rule matches the caller falls back to the quadrant description.
func EdgeCoaching(pair domain.PairCode, x, y domain.Rating, threshold domain.Rating) (string, bool) {
	c := catalog.CoachingFor(pair)
	switch {
	case y.AtBoundary() && x >= threshold:
		return c.YModerateXHigh, true
	case y >= threshold && x.AtBoundary():
		return c.YHighXModerate, true
	case y.AtBoundary() && x.AtBoundary():
		return c.BothModerate, true
	}
	return "", false
}

// GateActive reports whether at least one axis sits at the boundary
// rating, signaling that the classification should be treated as
// provisional. Recomputed from current ratings on every read.
func GateActive(x, y domain.Rating) bool {
	return x.AtBoundary() || y.AtBoundary()
}

// Summary bundles everything the presentation layer needs for one pair:
// the quadrant, the text to display (coaching overrides the quadrant
// description when present), and the gate flag.
type Summary struct {
	Pair     domain.AxisPair
	X        domain.Rating
	Y        domain.Rating
	Quadrant catalog.Quadrant
	Coaching string
	Gate     bool
}

// DisplayText returns the coaching advisory when present, otherwise the
// quadrant description. The advisory replaces the description, it is
// never shown alongside it.
func (s Summary) DisplayText() string {
	if s.Coaching != "" {
		return s.Coaching
	}
	return s.Quadrant.Description
}

// Summarize evaluates one pair of ratings at the standard threshold.
func Summarize(pair domain.AxisPair, scores domain.Scores) Summary {
	x := scores[pair.X]
	y := scores[pair.Y]
	s := Summary{
		Pair:     pair,
		X:        x,
		Y:        y,
		Quadrant: Classify(pair.Code, x, y, HighThreshold),
		Gate:     GateActive(x, y),
	}
	if text, ok := EdgeCoaching(pair.Code, x, y, HighThreshold); ok {
		s.Coaching = text
	}
	return s
}

// SummarizeAll evaluates all three pairs in display order.
func SummarizeAll(scores domain.Scores) []Summary {
	out := make([]Summary, 0, len(domain.AllPairs))
	for _, p := range domain.AllPairs {
		out = append(out, Summarize(p, scores))
	}
	return out
}
