package cache

import (
	"slices"
	"sync"
)

// Storage is the set of named buckets visible to every worker version.
type Storage struct {
	maxEntries int

	mu      sync.RWMutex
	buckets map[string]*Bucket
	order   []string // creation order
}

// NewStorage returns an empty storage whose buckets hold at most
// maxEntries runtime responses each, on top of their pinned entries.
func NewStorage(maxEntries int) *Storage {
	return &Storage{
		maxEntries: maxEntries,
		buckets:    make(map[string]*Bucket),
	}
}

// Open returns the bucket called name, creating it if needed. created
// reports whether this call made it.
func (s *Storage) Open(name string) (b *Bucket, created bool, err error) {
	if name == "" {
		return nil, false, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.buckets[name]; ok {
		return b, false, nil
	}
	b, err = newBucket(name, s.maxEntries)
	if err != nil {
		return nil, false, err
	}
	s.buckets[name] = b
	s.order = append(s.order, name)
	return b, true, nil
}

// Lookup returns the bucket called name without creating it.
func (s *Storage) Lookup(name string) (*Bucket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buckets[name]
	return b, ok
}

// Has reports whether a bucket called name exists.
func (s *Storage) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.buckets[name]
	return ok
}

// Delete drops the bucket called name and reports whether it existed.
func (s *Storage) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buckets[name]; !ok {
		return false
	}
	delete(s.buckets, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	return true
}

// Keys lists bucket names in creation order.
func (s *Storage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// Match returns the first response stored under key, searching buckets in
// creation order.
func (s *Storage) Match(key string) (*Response, bool) {
	s.mu.RLock()
	buckets := make([]*Bucket, 0, len(s.order))
	for _, name := range s.order {
		buckets = append(buckets, s.buckets[name])
	}
	s.mu.RUnlock()

	for _, b := range buckets {
		if resp, ok := b.Match(key); ok {
			return resp, true
		}
	}
	return nil, false
}
