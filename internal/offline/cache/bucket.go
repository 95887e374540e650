package cache

import (
	"maps"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxEntries bounds a bucket's runtime entries when no capacity is
// configured.
const DefaultMaxEntries = 512

// Entry is one key/response pair for PutAll.
type Entry struct {
	Key      string
	Response *Response
}

// Bucket is a named map from request key to response with two tiers.
// Entries written by PutAll are pinned and never evicted. Entries written
// by Put live in a size-bounded LRU; when it is full the least recently
// used one is evicted.
type Bucket struct {
	name string

	// mu guards pinned and keeps a key in at most one tier. The LRU
	// locks itself.
	mu      sync.RWMutex
	pinned  map[string]*Response
	entries *lru.Cache[string, *Response]
}

func newBucket(name string, maxEntries int) (*Bucket, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	entries, err := lru.New[string, *Response](maxEntries)
	if err != nil {
		return nil, err
	}
	return &Bucket{
		name:    name,
		pinned:  make(map[string]*Response),
		entries: entries,
	}, nil
}

// Name returns the bucket's name.
func (b *Bucket) Name() string {
	return b.name
}

// Put stores a copy of resp under key, replacing any previous entry. A
// pinned key stays pinned.
func (b *Bucket) Put(key string, resp *Response) error {
	if key == "" {
		return ErrEmptyKey
	}
	if resp == nil {
		return ErrNilEntry
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.pinned[key]; ok {
		b.pinned[key] = resp.Clone()
		return nil
	}
	b.entries.Add(key, resp.Clone())
	return nil
}

// PutAll pins every entry or none of them.
func (b *Bucket) PutAll(entries []Entry) error {
	for _, e := range entries {
		if e.Key == "" {
			return ErrEmptyKey
		}
		if e.Response == nil {
			return ErrNilEntry
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range entries {
		b.entries.Remove(e.Key)
		b.pinned[e.Key] = e.Response.Clone()
	}
	return nil
}

// Match returns a copy of the response stored under key.
func (b *Bucket) Match(key string) (*Response, bool) {
	b.mu.RLock()
	resp, ok := b.pinned[key]
	if !ok {
		resp, ok = b.entries.Get(key)
	}
	b.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return resp.Clone(), true
}

// Delete removes key from either tier and reports whether it was present.
func (b *Bucket) Delete(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, pinned := b.pinned[key]
	delete(b.pinned, key)
	return b.entries.Remove(key) || pinned
}

// Keys lists pinned keys in sorted order, then runtime keys from least to
// most recently used.
func (b *Bucket) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append(slices.Sorted(maps.Keys(b.pinned)), b.entries.Keys()...)
}

// Pinned reports whether key was stored by PutAll.
func (b *Bucket) Pinned(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.pinned[key]
	return ok
}

// Len returns the number of stored entries in both tiers.
func (b *Bucket) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.pinned) + b.entries.Len()
}
