package worker

import (
	"context"
	"errors"
	"net/http"

	"oneday-todo/internal/offline/cache"
)

// Classify picks the strategy for r.
func (w *Worker) Classify(r *http.Request) Class {
	switch {
	case isCrossOrigin(r, w.origin):
		return ClassPassthrough
	case isNavigation(r):
		return ClassNavigation
	case w.isAsset(r):
		return ClassAsset
	default:
		return ClassOther
	}
}

func (w *Worker) isAsset(r *http.Request) bool {
	p := r.URL.Path
	if p == "" {
		p = "/"
	}
	_, ok := w.assets[p]
	return ok
}

// Handle serves r through the strategy for its class. ErrNoResponse means
// the network failed and no fallback entry exists.
func (w *Worker) Handle(ctx context.Context, r *http.Request) (*cache.Response, Source, error) {
	class := w.Classify(r)

	var (
		resp *cache.Response
		src  Source
		err  error
	)
	switch class {
	case ClassPassthrough:
		resp, err = w.net.Fetch(ctx, r)
		src = SourceNetwork
	case ClassNavigation:
		resp, src, err = w.navigate(ctx, r)
	case ClassAsset:
		resp, src, err = w.cacheFirst(ctx, r)
	default:
		resp, src, err = w.networkFirst(ctx, r)
	}

	if err != nil {
		src = SourceNone
		if !errors.Is(err, ErrNoResponse) {
			err = errors.Join(ErrNoResponse, err)
		}
	}
	w.metrics.fetch(class, src)
	return resp, src, err
}

// navigate is network-first with the application shell as fallback.
func (w *Worker) navigate(ctx context.Context, r *http.Request) (*cache.Response, Source, error) {
	resp, err := w.net.Fetch(ctx, r)
	if err == nil {
		w.store(ctx, r, resp)
		return resp, SourceNetwork, nil
	}

	w.l.Debugf(ctx, "worker.navigate %s: network failed: %v", r.URL.Path, err)
	if shell, ok := w.storage.Match(w.cfg.ShellPath); ok {
		return shell, SourceFallback, nil
	}
	return nil, SourceNone, ErrNoResponse
}

// cacheFirst serves any stored copy, else fetches and stores.
func (w *Worker) cacheFirst(ctx context.Context, r *http.Request) (*cache.Response, Source, error) {
	if cached, ok := w.match(r); ok {
		return cached, SourceCache, nil
	}

	resp, err := w.net.Fetch(ctx, r)
	if err != nil {
		return nil, SourceNone, err
	}
	w.store(ctx, r, resp)
	return resp, SourceNetwork, nil
}

// networkFirst fetches and stores, falling back to any stored copy.
func (w *Worker) networkFirst(ctx context.Context, r *http.Request) (*cache.Response, Source, error) {
	resp, err := w.net.Fetch(ctx, r)
	if err == nil {
		w.store(ctx, r, resp)
		return resp, SourceNetwork, nil
	}

	w.l.Debugf(ctx, "worker.networkFirst %s: network failed: %v", r.URL.Path, err)
	if cached, ok := w.match(r); ok {
		return cached, SourceCache, nil
	}
	return nil, SourceNone, ErrNoResponse
}

// match looks r up across all buckets. Only GET requests have entries.
func (w *Worker) match(r *http.Request) (*cache.Response, bool) {
	if r.Method != http.MethodGet {
		return nil, false
	}
	return w.storage.Match(cache.Key(r.URL))
}

// store puts a copy of resp in the worker's bucket. Non-GET requests and
// partial responses are never stored. A redundant worker stores nothing,
// and the bucket is never recreated once activation has purged it.
func (w *Worker) store(ctx context.Context, r *http.Request, resp *cache.Response) {
	if r.Method != http.MethodGet || resp.StatusCode == http.StatusPartialContent {
		return
	}
	if w.State() == StateRedundant {
		return
	}
	bucket, ok := w.storage.Lookup(w.CacheName())
	if !ok {
		w.l.Debugf(ctx, "worker.store %s: bucket gone, not storing %s", w.CacheName(), r.URL.Path)
		return
	}
	if err := bucket.Put(cache.Key(r.URL), resp); err != nil {
		w.l.Warnf(ctx, "worker.store %s: %v", cache.Key(r.URL), err)
	}
}
