package repository

import (
	"context"
	"errors"

	"edscope/internal/domain"
)

// ErrNotFound is returned when a requested key or entry does not exist.
var ErrNotFound = errors.New("not found")

// StateRepo is the keyed blob store: string values by string key.
// Set replaces the whole value in a single statement, so readers always
// observe either the previous or the fully updated blob.
type StateRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// CollectionRepo loads and replaces the serialized resource collection
// as a whole. There is no incremental append: every mutation rewrites
// the full list.
type CollectionRepo interface {
	Load(ctx context.Context) (domain.ResourceCollection, error)
	Replace(ctx context.Context, col domain.ResourceCollection) error
}
