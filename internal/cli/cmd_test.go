package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"edscope/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args, silencing stdout.
func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()

	old := os.Stdout
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	os.Stdout = devnull
	defer func() {
		os.Stdout = old
		devnull.Close()
	}()

	root := NewRootCmd(app)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestSaveCmd_AppendsToCollection(t *testing.T) {
	app := testApp(t)

	err := execute(t, app, "save", "--name", "Algebra Videos", "--relevance", "5", "--alignment", "4")
	require.NoError(t, err)

	col := app.Collection.Load(context.Background())
	require.Len(t, col, 1)
	assert.Equal(t, "Algebra Videos", col[0].Name)
	assert.Equal(t, domain.Rating(5), col[0].Scores[domain.Relevance])
	assert.Equal(t, domain.Rating(4), col[0].Scores[domain.Alignment])
	assert.Equal(t, domain.DefaultRating, col[0].Scores[domain.Impact], "unset flags default to 3")
}

func TestSaveCmd_RejectsOutOfRange(t *testing.T) {
	app := testApp(t)
	err := execute(t, app, "save", "--impact", "9")
	require.Error(t, err)
	assert.Empty(t, app.Collection.Load(context.Background()))
}

func TestDeleteCmd_ByIDPrefix(t *testing.T) {
	app := testApp(t)
	saved, err := app.Collection.Save(context.Background(), "Doomed", domain.NewDefaultScores())
	require.NoError(t, err)

	require.NoError(t, execute(t, app, "delete", saved.ID[:8]))
	assert.Empty(t, app.Collection.Load(context.Background()))
}

func TestDeleteCmd_MissingIDIsNoOp(t *testing.T) {
	app := testApp(t)
	_, err := app.Collection.Save(context.Background(), "Keeper", domain.NewDefaultScores())
	require.NoError(t, err)

	require.NoError(t, execute(t, app, "delete", "no-such-id"))
	assert.Len(t, app.Collection.Load(context.Background()), 1)
}

func TestClassifyCmd_Validation(t *testing.T) {
	app := testApp(t)

	assert.NoError(t, execute(t, app, "classify", "--pair", "raid", "-x", "5", "-y", "5"))
	assert.Error(t, execute(t, app, "classify", "--pair", "NOPE", "-x", "5", "-y", "5"))
	assert.Error(t, execute(t, app, "classify", "--pair", "raid", "-x", "6", "-y", "5"))
}

func TestSummaryCmd(t *testing.T) {
	app := testApp(t)

	assert.NoError(t, execute(t, app, "summary", "--relevance", "5", "--alignment", "4"))
	assert.Error(t, execute(t, app, "summary", "--coherence", "0"))
}

func TestScaleCmd(t *testing.T) {
	app := testApp(t)

	assert.NoError(t, execute(t, app, "scale", "relevance"))
	assert.NoError(t, execute(t, app, "scale", "imp", "--rating", "3", "--full"))
	assert.Error(t, execute(t, app, "scale", "efficiency"))
}

func TestListCmd_EmptyAndPopulated(t *testing.T) {
	app := testApp(t)
	require.NoError(t, execute(t, app, "list"))

	_, err := app.Collection.Save(context.Background(), "Entry", domain.NewDefaultScores())
	require.NoError(t, err)
	require.NoError(t, execute(t, app, "list"))
}

func TestExportCmd_WritesDatedFiles(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()

	require.NoError(t, execute(t, app, "export", "--out", dir, "--relevance", "5", "--alignment", "5"))

	entries, err := filepath.Glob(filepath.Join(dir, "edscope-*"))
	require.NoError(t, err)
	assert.Len(t, entries, 4, "one markdown report plus three SVG plots")
}

func TestResolveResourceID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	a, err := app.Collection.Save(ctx, "A", domain.NewDefaultScores())
	require.NoError(t, err)

	id, err := resolveResourceID(ctx, app, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, id)

	// Unknown input passes through so delete can treat it as a no-op.
	id, err = resolveResourceID(ctx, app, "zzzz")
	require.NoError(t, err)
	assert.Equal(t, "zzzz", id)
}
