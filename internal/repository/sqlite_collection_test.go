package repository

import (
	"context"
	"testing"
	"time"

	"edscope/internal/domain"
	"edscope/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepo_GetMissingKey(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStateRepo_SetOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "first"))
	require.NoError(t, repo.Set(ctx, "k", "second"))

	value, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestCollectionRepo_LoadEmptyWhenMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCollectionRepo(NewSQLiteStateRepo(db))
	ctx := context.Background()

	col, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, col)
}

func TestCollectionRepo_ReplaceAndLoad(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCollectionRepo(NewSQLiteStateRepo(db))
	ctx := context.Background()

	col := domain.ResourceCollection{
		testutil.NewSavedResource("Algebra Videos", testutil.WithRating(domain.Relevance, 5)),
		testutil.NewSavedResource("Grammar Drills"),
	}
	require.NoError(t, repo.Replace(ctx, col))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Algebra Videos", loaded[0].Name)
	assert.Equal(t, domain.Rating(5), loaded[0].Scores[domain.Relevance])
	assert.Equal(t, col[0].ID, loaded[0].ID)
	assert.Equal(t, col[1].ID, loaded[1].ID)
}

func TestCollectionRepo_PreservesInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCollectionRepo(NewSQLiteStateRepo(db))
	ctx := context.Background()

	var col domain.ResourceCollection
	names := []string{"First", "Second", "Third"}
	for _, n := range names {
		col = append(col, testutil.NewSavedResource(n))
	}
	require.NoError(t, repo.Replace(ctx, col))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	for i, n := range names {
		assert.Equal(t, n, loaded[i].Name, "index %d", i)
	}
}

func TestCollectionRepo_CorruptBlobIsAnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	state := NewSQLiteStateRepo(db)
	repo := NewSQLiteCollectionRepo(state)
	ctx := context.Background()

	require.NoError(t, state.Set(ctx, "resources", "{not json"))

	_, err := repo.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}

func TestCollectionRepo_RoundTripTimestamps(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCollectionRepo(NewSQLiteStateRepo(db))
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	r := testutil.NewSavedResource("Dated", testutil.WithCreatedAt(created))
	require.NoError(t, repo.Replace(ctx, domain.ResourceCollection{r}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].CreatedAt.Equal(created))
}
