package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"oneday-todo/internal/model"
	repo "oneday-todo/internal/todo/repository"
)

// LoadSnapshot reads the list stored under opt.Key.
// Returns (nil, nil) when the key is absent or holds JSON null.
func (r *implRepository) LoadSnapshot(ctx context.Context, opt repo.LoadSnapshotOptions) ([]model.Todo, error) {
	const query = `SELECT value FROM kv_store WHERE key = ?`

	var raw string
	err := r.db.QueryRowContext(ctx, query, opt.Key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadSnapshot"), err)
		return nil, repo.ErrFailedToGet
	}
	if raw == "" {
		return nil, nil
	}

	var todos []model.Todo
	if err := json.Unmarshal([]byte(raw), &todos); err != nil {
		r.l.Warnf(ctx, "%s: key=%s: %v", r.dsn("LoadSnapshot"), opt.Key, err)
		return nil, repo.ErrCorruptSnapshot
	}
	return todos, nil
}

// SaveSnapshot overwrites the value under opt.Key with the whole list.
func (r *implRepository) SaveSnapshot(ctx context.Context, opt repo.SaveSnapshotOptions) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	todos := opt.Todos
	if todos == nil {
		todos = []model.Todo{}
	}
	raw, err := json.Marshal(todos)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("SaveSnapshot"), err)
		return repo.ErrFailedToSave
	}

	if _, err := r.db.ExecContext(ctx, query, opt.Key, string(raw), time.Now().UnixMilli()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveSnapshot"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
