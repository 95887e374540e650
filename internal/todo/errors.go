package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrInvalidFilter = errors.New("invalid filter")
	ErrPersist       = errors.New("failed to persist todos")
)
