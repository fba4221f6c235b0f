package db

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered list of schema statements. Every statement
// is idempotent so Migrate can re-run the full list on each startup.
var migrations = []string{
	// app_state is the keyed blob store: one row per key, string values.
	// The serialized resource collection lives under a single key, so a
	// whole-collection write is a single-row replace and readers always
	// see either the previous or the fully updated blob.
	`CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
