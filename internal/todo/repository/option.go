package repository

import "oneday-todo/internal/model"

// LoadSnapshotOptions selects the snapshot to read.
type LoadSnapshotOptions struct {
	Key string
}

// SaveSnapshotOptions holds the list that overwrites the snapshot under Key.
type SaveSnapshotOptions struct {
	Key   string
	Todos []model.Todo
}
