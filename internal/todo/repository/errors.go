package repository

import "errors"

var (
	ErrFailedToGet     = errors.New("failed to get snapshot")
	ErrFailedToSave    = errors.New("failed to save snapshot")
	ErrCorruptSnapshot = errors.New("snapshot is not a list of todos")
)
