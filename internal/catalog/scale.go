// Package catalog holds the static lookup tables behind the assessment:
// per-criterion scale descriptors, per-pair quadrant names, and boundary
// coaching text. All tables are populated in source and never mutated
// after package initialization.
package catalog

import (
	"fmt"

	"edscope/internal/domain"
)

// tierText holds the descriptors for the four non-boundary ratings.
// Rating 3 deliberately does not appear here: the boundary state has its
// own moderate descriptor (see moderateText) worded to flag partial or
// inconsistent fit rather than mid-tier quality.
var tierText = map[domain.Criterion]map[domain.Rating]string{
	domain.Relevance: {
		1: "The resource does not address your learners' needs or context.",
		2: "Only fragments of the resource speak to your learners; most of it targets a different audience.",
		4: "The resource addresses your learners' needs with minor gaps you can bridge yourself.",
		5: "The resource is squarely aimed at your learners' needs, level and context.",
	},
	domain.Alignment: {
		1: "The resource works against your stated learning goals and curriculum.",
		2: "The resource touches your goals incidentally; its own objectives point elsewhere.",
		4: "The resource's objectives map onto your curriculum with only small detours.",
		5: "The resource's objectives and your curriculum goals are one and the same.",
	},
	domain.Effectiveness: {
		1: "You have seen no learning gains attributable to the resource.",
		2: "Gains appear only for a narrow slice of learners or topics.",
		4: "Most learners show measurable progress when the resource is used as intended.",
		5: "Learning gains are consistent, measurable and clearly attributable to the resource.",
	},
	domain.Impact: {
		1: "Nothing changes beyond the single session in which the resource is used.",
		2: "Effects fade within days and do not transfer to other work.",
		4: "Effects persist across units and show up in learners' other work.",
		5: "The resource has changed how your learners work well beyond its own scope.",
	},
	domain.Sustainability: {
		1: "Using the resource depends on effort or funding you cannot repeat.",
		2: "The resource is usable now but its cost or upkeep will not survive next year.",
		4: "You can keep using the resource with the staff and budget you already have.",
		5: "The resource runs on routine effort and will keep working without special support.",
	},
	domain.Coherence: {
		1: "The resource clashes with the other materials and methods you use.",
		2: "The resource sits apart from your other materials; learners experience a seam.",
		4: "The resource fits your existing materials with only light adaptation.",
		5: "The resource feels like a native part of your teaching ecosystem.",
	},
}

// moderateText is shown for the boundary rating 3. The wording flags
// partial or inconsistent fit, not middling quality.
var moderateText = map[domain.Criterion]string{
	domain.Relevance:      "Parts of the resource fit your learners and parts clearly do not; relevance is inconsistent across your groups.",
	domain.Alignment:      "Some of the resource's objectives overlap yours, but the overlap is partial and you cannot yet say it supports your curriculum.",
	domain.Effectiveness:  "Evidence of learning gains is mixed or anecdotal; you cannot yet separate the resource's effect from everything else.",
	domain.Impact:         "You see occasional carry-over effects, but they are uneven and you cannot predict when they occur.",
	domain.Sustainability: "You can sustain the resource for now, but only by borrowing time or budget that is not guaranteed.",
	domain.Coherence:      "The resource coexists with your other materials without either clashing or connecting; the fit is unresolved.",
}

// fullDefinition is rating-independent detail text for each criterion,
// shown behind the definition toggle and by the scale command.
var fullDefinition = map[domain.Criterion]string{
	domain.Relevance:      "Relevance asks whether the resource addresses the actual needs, prior knowledge and context of your learners — not learners in general, yours. A relevant resource meets your group where it is.",
	domain.Alignment:      "Alignment asks whether the resource's own learning objectives serve the goals of your curriculum or program. A resource can be excellent and still pull your teaching off course.",
	domain.Effectiveness:  "Effectiveness asks whether use of the resource produces observable learning gains. Judge it on evidence you have actually collected, not on production quality or enthusiasm.",
	domain.Impact:         "Impact asks whether the effects of the resource reach beyond the sessions in which it is used: transfer to other work, durable habits, changes visible weeks later.",
	domain.Sustainability: "Sustainability asks whether you can keep using the resource with the time, staff, budget and infrastructure you will realistically have — next term and next year, not just this week.",
	domain.Coherence:      "Coherence asks whether the resource fits the other materials, methods and values of your teaching practice, so that learners experience one program rather than a patchwork.",
}

// Descriptor returns the scale text for a criterion at a given rating.
// Rating 3 resolves to the distinct moderate descriptor.
func Descriptor(c domain.Criterion, r domain.Rating) string {
	if r.AtBoundary() {
		return moderateText[c]
	}
	tiers, ok := tierText[c]
	if !ok {
		panic(fmt.Sprintf("catalog: no scale entry for criterion %q", c))
	}
	text, ok := tiers[r]
	if !ok {
		panic(fmt.Sprintf("catalog: no scale entry for criterion %q rating %d", c, r))
	}
	return text
}

// FullDefinition returns the rating-independent definition text for a
// criterion.
func FullDefinition(c domain.Criterion) string {
	text, ok := fullDefinition[c]
	if !ok {
		panic(fmt.Sprintf("catalog: no definition for criterion %q", c))
	}
	return text
}
