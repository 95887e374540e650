package cache

import "errors"

var (
	ErrEmptyName = errors.New("cache: bucket name is empty")
	ErrEmptyKey  = errors.New("cache: entry key is empty")
	ErrNilEntry  = errors.New("cache: entry response is nil")
)
