package catalog

import (
	"fmt"

	"edscope/internal/domain"
)

// Coaching holds the three boundary advisories for one axis pair. The
// record is exhaustive by construction: every pair defines every case,
// so no dynamic key lookup is needed.
type Coaching struct {
	// YModerateXHigh applies when the Y rating is at the boundary and
	// the X rating clears the high threshold.
	YModerateXHigh string
	// YHighXModerate applies when the Y rating clears the high
	// threshold and the X rating is at the boundary.
	YHighXModerate string
	// BothModerate applies when both ratings are at the boundary.
	BothModerate string
}

var coaching = map[domain.PairCode]Coaching{
	domain.PairRAID: {
		YModerateXHigh: "Relevance is strong but alignment is unresolved. Map the resource's objectives against your curriculum explicitly before committing — a relevant resource can still pull your program sideways.",
		YHighXModerate: "Alignment is strong but relevance to your actual learners is unresolved. Try it with one representative group and watch who it leaves behind before rolling it out.",
		BothModerate:   "Both fit signals are at the boundary. Pilot the resource with a single unit, name the learners and the goal it must serve, and re-rate after one cycle.",
	},
	domain.PairEFIM: {
		YModerateXHigh: "Session gains are solid but lasting impact is unproven. Schedule a delayed check — revisit the same skills two or three weeks later before counting the resource a success.",
		YHighXModerate: "You see lasting effects but cannot pin down session-level gains. Instrument a few sessions directly; if the gains are not there, something else deserves the credit.",
		BothModerate:   "Evidence on both results axes is inconclusive. Pick one measurable outcome, collect before-and-after evidence over a short pilot, and re-rate with data in hand.",
	},
	domain.PairSUCO: {
		YModerateXHigh: "You can sustain it, but its place in your wider practice is unresolved. Decide what it connects to — which course, which materials — before it ossifies as an orphan tool.",
		YHighXModerate: "It fits your practice but the cost of keeping it is unclear. Price out a full year of use, including your own time, before deepening the dependency.",
		BothModerate:   "Both durability signals are at the boundary. Keep the resource on probation: cap the effort you spend on it and set a review date to decide keep-or-drop.",
	},
}

// CoachingFor returns the boundary advisory record for a pair. A missing
// pair indicates an incomplete catalog and panics.
func CoachingFor(pair domain.PairCode) Coaching {
	c, ok := coaching[pair]
	if !ok {
		panic(fmt.Sprintf("catalog: no coaching entry for pair %q", pair))
	}
	return c
}
