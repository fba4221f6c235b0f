package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"edscope/internal/domain"
)

// collectionKey is the app_state key holding the serialized collection.
const collectionKey = "resources"

// SQLiteCollectionRepo stores the resource collection as a JSON array
// blob under a single app_state key.
type SQLiteCollectionRepo struct {
	state StateRepo
}

// NewSQLiteCollectionRepo creates a CollectionRepo over the given state
// store.
func NewSQLiteCollectionRepo(state StateRepo) *SQLiteCollectionRepo {
	return &SQLiteCollectionRepo{state: state}
}

// Load reads the persisted collection. A missing key yields an empty
// collection; a malformed blob is reported as an error so the service
// layer can decide the recovery policy.
func (r *SQLiteCollectionRepo) Load(ctx context.Context) (domain.ResourceCollection, error) {
	blob, err := r.state.Get(ctx, collectionKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.ResourceCollection{}, nil
		}
		return nil, fmt.Errorf("loading collection: %w", err)
	}

	var col domain.ResourceCollection
	if err := json.Unmarshal([]byte(blob), &col); err != nil {
		return nil, fmt.Errorf("decoding collection blob: %w", err)
	}
	return col, nil
}

// Replace serializes and writes the full collection in one statement.
func (r *SQLiteCollectionRepo) Replace(ctx context.Context, col domain.ResourceCollection) error {
	if col == nil {
		col = domain.ResourceCollection{}
	}
	blob, err := json.Marshal(col)
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}
	if err := r.state.Set(ctx, collectionKey, string(blob)); err != nil {
		return fmt.Errorf("replacing collection: %w", err)
	}
	return nil
}
