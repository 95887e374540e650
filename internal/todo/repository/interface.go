package repository

import (
	"context"

	"oneday-todo/internal/model"
)

// Repository is the composed interface for the todo durable store.
type Repository interface {
	SnapshotRepository
}

// SnapshotRepository stores the whole list as one value under one key.
type SnapshotRepository interface {
	// LoadSnapshot returns (nil, nil) when no snapshot exists under the key.
	LoadSnapshot(ctx context.Context, opt LoadSnapshotOptions) ([]model.Todo, error)
	SaveSnapshot(ctx context.Context, opt SaveSnapshotOptions) error
}
