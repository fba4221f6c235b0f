package domain

import (
	"fmt"
	"strings"
)

// PairCode is the stable identifier of an axis pair, used as the key
// prefix for quadrant and coaching lookups.
type PairCode string

const (
	PairRAID PairCode = "RAID" // Relevance x Alignment
	PairEFIM PairCode = "EFIM" // Effectiveness x Impact
	PairSUCO PairCode = "SUCO" // Sustainability x Coherence
)

// AxisPair groups two criteria onto a shared 2D rating space.
// X is the horizontal axis, Y the vertical.
type AxisPair struct {
	Code  PairCode
	Title string
	X     Criterion
	Y     Criterion
}

// AllPairs lists the three axis pairs in display order. The set is fixed:
// pairs are never created or destroyed at runtime.
var AllPairs = []AxisPair{
	{Code: PairRAID, Title: "Fit", X: Relevance, Y: Alignment},
	{Code: PairEFIM, Title: "Results", X: Effectiveness, Y: Impact},
	{Code: PairSUCO, Title: "Durability", X: Sustainability, Y: Coherence},
}

// PairByCode resolves a case-insensitive pair code.
func PairByCode(code string) (AxisPair, error) {
	needle := strings.ToUpper(strings.TrimSpace(code))
	for _, p := range AllPairs {
		if string(p.Code) == needle {
			return p, nil
		}
	}
	return AxisPair{}, fmt.Errorf("unknown pair code %q (expected RAID, EFIM or SUCO)", code)
}

// PairForCriterion returns the pair the criterion belongs to.
func PairForCriterion(c Criterion) (AxisPair, error) {
	for _, p := range AllPairs {
		if p.X == c || p.Y == c {
			return p, nil
		}
	}
	return AxisPair{}, fmt.Errorf("criterion %q belongs to no pair", c)
}
