package testutil

import (
	"time"

	"edscope/internal/domain"
	"github.com/google/uuid"
)

// ResourceOption mutates a SavedResource fixture before it is returned.
type ResourceOption func(*domain.SavedResource)

// WithRating sets one criterion's rating on the fixture's score set.
func WithRating(c domain.Criterion, r domain.Rating) ResourceOption {
	return func(res *domain.SavedResource) {
		res.Scores[c] = r
	}
}

// WithScores replaces the fixture's whole score set.
func WithScores(s domain.Scores) ResourceOption {
	return func(res *domain.SavedResource) {
		res.Scores = s.Clone()
	}
}

// WithCreatedAt sets the fixture's creation timestamp.
func WithCreatedAt(t time.Time) ResourceOption {
	return func(res *domain.SavedResource) {
		res.CreatedAt = t
	}
}

// NewSavedResource builds a saved resource with default scores and a
// fresh id, then applies the given options.
func NewSavedResource(name string, opts ...ResourceOption) domain.SavedResource {
	res := domain.SavedResource{
		ID:        uuid.New().String(),
		Name:      name,
		Scores:    domain.NewDefaultScores(),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

// NewScores builds a score set from per-criterion overrides on top of
// the defaults.
func NewScores(overrides map[domain.Criterion]domain.Rating) domain.Scores {
	s := domain.NewDefaultScores()
	for c, r := range overrides {
		s[c] = r
	}
	return s
}
