package service

import (
	"context"
	"testing"

	"edscope/internal/domain"
	"edscope/internal/repository"
	"edscope/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (CollectionService, repository.StateRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	state := repository.NewSQLiteStateRepo(db)
	return NewCollectionService(repository.NewSQLiteCollectionRepo(state)), state
}

func TestSave_AssignsDistinctIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, "First", domain.NewDefaultScores())
	require.NoError(t, err)
	second, err := svc.Save(ctx, "Second", domain.NewDefaultScores())
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	col := svc.Load(ctx)
	require.Len(t, col, 2)
}

func TestSave_DefaultsBlankName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, "", domain.NewDefaultScores())
	require.NoError(t, err)
	assert.Equal(t, "Resource 1", first.Name)

	second, err := svc.Save(ctx, "", domain.NewDefaultScores())
	require.NoError(t, err)
	assert.Equal(t, "Resource 2", second.Name)
}

func TestSave_RejectsIncompleteScores(t *testing.T) {
	svc, _ := newTestService(t)
	scores := domain.NewDefaultScores()
	delete(scores, domain.Coherence)

	_, err := svc.Save(context.Background(), "Broken", scores)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestSave_SnapshotsScores(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	scores := testutil.NewScores(map[domain.Criterion]domain.Rating{domain.Impact: 5})
	saved, err := svc.Save(ctx, "Snapshot", scores)
	require.NoError(t, err)

	// Later edits to the live scores must not reach the saved entry.
	scores[domain.Impact] = 1

	fetched, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Rating(5), fetched.Scores[domain.Impact])
}

func TestLoad_RoundTripAcrossRestart(t *testing.T) {
	db := testutil.NewTestDB(t)
	state := repository.NewSQLiteStateRepo(db)
	svc := NewCollectionService(repository.NewSQLiteCollectionRepo(state))
	ctx := context.Background()

	scores := testutil.NewScores(map[domain.Criterion]domain.Rating{
		domain.Relevance: 5,
		domain.Alignment: 4,
	})
	saved, err := svc.Save(ctx, "Reading Kit", scores)
	require.NoError(t, err)

	// A fresh service over the same database simulates a process restart.
	restarted := NewCollectionService(repository.NewSQLiteCollectionRepo(state))
	col := restarted.Load(ctx)
	require.Len(t, col, 1)
	assert.Equal(t, saved.ID, col[0].ID)
	assert.Equal(t, "Reading Kit", col[0].Name)
	assert.Equal(t, scores, col[0].Scores)
}

func TestLoad_CorruptBlobDegradesToEmpty(t *testing.T) {
	svc, state := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, "Will be lost", domain.NewDefaultScores())
	require.NoError(t, err)

	require.NoError(t, state.Set(ctx, "resources", "][ definitely not json"))

	col := svc.Load(ctx)
	assert.Empty(t, col, "corrupt data must degrade to an empty collection, not an error")
}

func TestDelete_RemovesMatchingEntry(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, "First", domain.NewDefaultScores())
	require.NoError(t, err)
	second, err := svc.Save(ctx, "Second", domain.NewDefaultScores())
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	col := svc.Load(ctx)
	require.Len(t, col, 1)
	assert.Equal(t, second.ID, col[0].ID)
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, "Keeper", domain.NewDefaultScores())
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, "no-such-id")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, svc.Load(ctx), 1)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
