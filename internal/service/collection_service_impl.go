package service

import (
	"context"
	"fmt"
	"time"

	"edscope/internal/domain"
	"edscope/internal/repository"
	"github.com/google/uuid"
)

type collectionService struct {
	repo repository.CollectionRepo
}

// NewCollectionService creates a CollectionService over the given repo.
func NewCollectionService(repo repository.CollectionRepo) CollectionService {
	return &collectionService{repo: repo}
}

func (s *collectionService) Load(ctx context.Context) domain.ResourceCollection {
	col, err := s.repo.Load(ctx)
	if err != nil {
		// Corrupt or unreadable data degrades to a fresh empty list.
		return domain.ResourceCollection{}
	}
	return col
}

func (s *collectionService) Save(ctx context.Context, name string, scores domain.Scores) (domain.SavedResource, error) {
	if err := scores.Validate(); err != nil {
		return domain.SavedResource{}, fmt.Errorf("saving resource: %w", err)
	}

	col := s.Load(ctx)
	if name == "" {
		name = fmt.Sprintf("Resource %d", len(col)+1)
	}

	res := domain.SavedResource{
		ID:        newID(),
		Name:      name,
		Scores:    scores.Clone(),
		CreatedAt: time.Now().UTC(),
	}

	col = append(col, res)
	if err := s.repo.Replace(ctx, col); err != nil {
		return domain.SavedResource{}, fmt.Errorf("persisting collection: %w", err)
	}
	return res.Clone(), nil
}

func (s *collectionService) Delete(ctx context.Context, id string) (bool, error) {
	col := s.Load(ctx)
	idx := col.IndexOf(id)
	if idx < 0 {
		return false, nil
	}

	col = append(col[:idx], col[idx+1:]...)
	if err := s.repo.Replace(ctx, col); err != nil {
		return false, fmt.Errorf("persisting collection: %w", err)
	}
	return true, nil
}

func (s *collectionService) Get(ctx context.Context, id string) (domain.SavedResource, error) {
	col := s.Load(ctx)
	idx := col.IndexOf(id)
	if idx < 0 {
		return domain.SavedResource{}, fmt.Errorf("resource %q: %w", id, repository.ErrNotFound)
	}
	return col[idx].Clone(), nil
}

// newID returns a collision-resistant identifier, falling back to a
// timestamp-based one if the random generator is unavailable.
func newID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("res-%d", time.Now().UTC().UnixNano())
	}
	return id.String()
}
