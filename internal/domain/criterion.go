package domain

import (
	"fmt"
	"strings"
)

// Criterion is one of the six rating dimensions applied to a resource.
type Criterion string

const (
	Relevance      Criterion = "relevance"
	Alignment      Criterion = "alignment"
	Effectiveness  Criterion = "effectiveness"
	Impact         Criterion = "impact"
	Sustainability Criterion = "sustainability"
	Coherence      Criterion = "coherence"
)

// AllCriteria lists the six criteria in display order. Each criterion
// belongs to exactly one axis pair (see pair.go).
var AllCriteria = []Criterion{
	Relevance, Alignment,
	Effectiveness, Impact,
	Sustainability, Coherence,
}

// Valid reports whether c is one of the six known criteria.
func (c Criterion) Valid() bool {
	for _, k := range AllCriteria {
		if k == c {
			return true
		}
	}
	return false
}

// Label returns the capitalized display name for the criterion.
func (c Criterion) Label() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCriterion resolves a case-insensitive name or unique prefix
// (e.g. "rel", "Impact") to a Criterion.
func ParseCriterion(input string) (Criterion, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", fmt.Errorf("criterion name is required")
	}

	var matches []Criterion
	for _, c := range AllCriteria {
		if string(c) == needle {
			return c, nil
		}
		if strings.HasPrefix(string(c), needle) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown criterion %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("criterion prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
