package domain

import "fmt"

// Rating is a 1-5 score assigned to a single criterion.
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5

	// DefaultRating is the initial value for every criterion.
	DefaultRating Rating = 3

	// BoundaryRating marks the designated boundary state: a 3 signals
	// partial or inconsistent fit rather than a plain midpoint, and is
	// classified separately from the high/low tiers.
	BoundaryRating Rating = 3
)

// Valid reports whether r is in the 1-5 range.
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// AtBoundary reports whether r is the boundary value 3.
func (r Rating) AtBoundary() bool {
	return r == BoundaryRating
}

// Clamp returns r forced into the 1-5 range.
func (r Rating) Clamp() Rating {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// ParseRating converts an integer to a validated Rating.
func ParseRating(n int) (Rating, error) {
	r := Rating(n)
	if !r.Valid() {
		return 0, fmt.Errorf("rating %d out of range (must be %d-%d)", n, MinRating, MaxRating)
	}
	return r, nil
}
