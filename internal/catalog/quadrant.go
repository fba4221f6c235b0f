package catalog

import (
	"fmt"

	"edscope/internal/domain"
)

// Quadrant is a named qualitative region of a pair's 2D rating space.
type Quadrant struct {
	Name        string
	Description string
}

// quadrantKey identifies one of the four regions of a pair. The Y axis
// bit comes first, matching the lookup order used by the engine.
type quadrantKey struct {
	Pair  domain.PairCode
	YHigh bool
	XHigh bool
}

// quadrants holds all 12 entries (3 pairs x HH/HL/LH/LL). A missing
// entry is a data bug caught by QuadrantFor's panic and by the catalog
// completeness test.
var quadrants = map[quadrantKey]Quadrant{
	// RAID: X relevance, Y alignment.
	{domain.PairRAID, true, true}: {
		Name:        "Sweet Spot",
		Description: "Relevant to your learners and aligned with your goals. Adopt it, and protect the conditions that make it work.",
	},
	{domain.PairRAID, true, false}: {
		Name:        "Forced Fit",
		Description: "Aligned with your curriculum on paper, but your learners are not the audience. Adapt the material to your group or find a variant that is.",
	},
	{domain.PairRAID, false, true}: {
		Name:        "Tempting Detour",
		Description: "Your learners respond to it, but it pulls away from your goals. Use it sparingly, or renegotiate the goals if the detour keeps proving valuable.",
	},
	{domain.PairRAID, false, false}: {
		Name:        "Poor Match",
		Description: "Neither your learners nor your goals are served. Retire it and spend the time elsewhere.",
	},

	// EFIM: X effectiveness, Y impact.
	{domain.PairEFIM, true, true}: {
		Name:        "Proven Performer",
		Description: "It produces gains and the gains last. Keep it, document how you use it, and share the practice.",
	},
	{domain.PairEFIM, true, false}: {
		Name:        "Fragile Wins",
		Description: "You see lasting effects without reliable session-level gains — the impact may come from something else. Find out what is actually doing the work before crediting the resource.",
	},
	{domain.PairEFIM, false, true}: {
		Name:        "Underleveraged",
		Description: "It works in the moment but the effects stop at the door. Add follow-up activities that carry the gains into other work.",
	},
	{domain.PairEFIM, false, false}: {
		Name:        "Low Return",
		Description: "Little evidence of gains in session or beyond. Replace it, or redesign how it is used before investing further.",
	},

	// SUCO: X sustainability, Y coherence.
	{domain.PairSUCO, true, true}: {
		Name:        "Built to Last",
		Description: "It fits your practice and you can afford to keep it. Fold it into your standard toolkit.",
	},
	{domain.PairSUCO, true, false}: {
		Name:        "Short-Lived Fit",
		Description: "It belongs in your program but you cannot sustain it as-is. Look for a cheaper format or shared ownership before it burns out.",
	},
	{domain.PairSUCO, false, true}: {
		Name:        "Durable Outlier",
		Description: "Easy to keep running, but it sits apart from everything else you do. Integrate it into your program or accept it as a deliberate standalone.",
	},
	{domain.PairSUCO, false, false}: {
		Name:        "Shaky Ground",
		Description: "Hard to sustain and a poor fit with the rest of your practice. Let it go.",
	},
}

// uncertain is the fixed result for the both-at-boundary case.
var uncertain = Quadrant{
	Name:        "Uncertain",
	Description: "Both ratings sit at the boundary: the evidence does not support a classification yet. Run a small, time-boxed pilot, decide in advance what you will measure, and re-rate when the results are in.",
}

// QuadrantFor resolves the quadrant for a pair from the two axis bits,
// Y first. A missing entry indicates an incomplete catalog and panics.
func QuadrantFor(pair domain.PairCode, yHigh, xHigh bool) Quadrant {
	q, ok := quadrants[quadrantKey{Pair: pair, YHigh: yHigh, XHigh: xHigh}]
	if !ok {
		panic(fmt.Sprintf("catalog: no quadrant entry for pair %q yHigh=%t xHigh=%t", pair, yHigh, xHigh))
	}
	return q
}

// Uncertain returns the fixed boundary result used when both ratings
// are at the boundary value.
func Uncertain() Quadrant {
	return uncertain
}
