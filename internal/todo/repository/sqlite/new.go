package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"oneday-todo/internal/todo/repository"
	"oneday-todo/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the todo domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("todo/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates the key-value table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate kv_store: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/sqlite.%s", method)
}
