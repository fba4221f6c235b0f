package service

import (
	"context"

	"edscope/internal/assess"
	"edscope/internal/domain"
)

// CollectionService owns the saved-resource list. The UI holds only
// transient edit state; nothing is persisted until an explicit Save.
type CollectionService interface {
	// Load returns the persisted collection. Missing or corrupt data
	// degrades to an empty collection and is never surfaced as an error.
	Load(ctx context.Context) domain.ResourceCollection

	// Save snapshots the given scores under the given name (a blank
	// name gets a generated default) and persists the updated list
	// before returning the stored entry.
	Save(ctx context.Context, name string, scores domain.Scores) (domain.SavedResource, error)

	// Delete removes the entry with the given id and persists the
	// updated list. A missing id is a silent no-op; the returned bool
	// reports whether an entry was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// Get returns a snapshot of one saved entry.
	Get(ctx context.Context, id string) (domain.SavedResource, error)
}

// AssessmentService evaluates score sets into per-pair summaries for
// display and export.
type AssessmentService interface {
	Summarize(scores domain.Scores) []assess.Summary
}
