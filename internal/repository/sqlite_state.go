package repository

import (
	"context"
	"database/sql"
	"fmt"

	"edscope/internal/db"
)

// SQLiteStateRepo implements StateRepo over the app_state table.
type SQLiteStateRepo struct {
	db db.DBTX
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(conn db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn}
}

func (r *SQLiteStateRepo) Get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("state key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("scanning state key %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStateRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing state key %q: %w", key, err)
	}
	return nil
}
