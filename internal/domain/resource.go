package domain

import (
	"fmt"
	"time"
)

// Scores maps every criterion to its current rating.
type Scores map[Criterion]Rating

// NewDefaultScores returns a score set with every criterion at the
// default rating.
func NewDefaultScores() Scores {
	s := make(Scores, len(AllCriteria))
	for _, c := range AllCriteria {
		s[c] = DefaultRating
	}
	return s
}

// Validate checks that all six criteria are present with in-range ratings
// and that no unknown criteria appear.
func (s Scores) Validate() error {
	for _, c := range AllCriteria {
		r, ok := s[c]
		if !ok {
			return fmt.Errorf("missing rating for criterion %q", c)
		}
		if !r.Valid() {
			return fmt.Errorf("rating %d for criterion %q out of range", r, c)
		}
	}
	if len(s) != len(AllCriteria) {
		return fmt.Errorf("scores contain %d entries, expected %d", len(s), len(AllCriteria))
	}
	return nil
}

// Clone returns an independent copy of the score set.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	for c, r := range s {
		out[c] = r
	}
	return out
}

// SavedResource is an immutable snapshot of a named, fully rated resource.
// Edits to live ratings after saving never alter a saved entry.
type SavedResource struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Scores    Scores    `json:"scores"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy, so callers can hand out snapshots without
// exposing the stored score map.
func (r SavedResource) Clone() SavedResource {
	out := r
	out.Scores = r.Scores.Clone()
	return out
}

// ResourceCollection is the ordered list of saved resources. Insertion
// order is meaningful: it drives list display and plot color assignment.
type ResourceCollection []SavedResource

// IndexOf returns the position of the entry with the given id, or -1.
func (c ResourceCollection) IndexOf(id string) int {
	for i, r := range c {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Clone deep-copies the collection.
func (c ResourceCollection) Clone() ResourceCollection {
	out := make(ResourceCollection, len(c))
	for i, r := range c {
		out[i] = r.Clone()
	}
	return out
}
