package cli

import "edscope/internal/domain"

// SharedState holds context shared across all views via pointer. The
// live scores here are transient edit state: nothing reaches the store
// until an explicit save.
type SharedState struct {
	App *App

	// Live rating state, owned by the rate view and snapshotted on save.
	Scores domain.Scores

	// Terminal dimensions.
	Width  int
	Height int
}

// ContentHeight returns the rows available to the active view after the
// header and status bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 0 {
		return 0
	}
	return h
}
