package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemoryCreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'app_state'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "app_state", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration list must not error.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestOpenDB_PersistsAcrossReopen(t *testing.T) {
	path := t.TempDir() + "/edscope.db"

	database, err := OpenDB(path)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO app_state (key, value) VALUES ('probe', 'x')`)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	reopened, err := OpenDB(path)
	require.NoError(t, err)
	defer reopened.Close()

	var value string
	require.NoError(t, reopened.QueryRow(
		`SELECT value FROM app_state WHERE key = 'probe'`,
	).Scan(&value))
	assert.Equal(t, "x", value)
}
