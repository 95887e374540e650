package worker

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"oneday-todo/internal/offline/cache"
)

// Install fetches every manifest asset into the worker's bucket. Any
// transport error or non-2xx status fails the whole install: nothing is
// stored, a bucket this call created is removed, and the worker becomes
// redundant.
func (w *Worker) Install(ctx context.Context) error {
	if err := w.transition(StateInstalling, StateParsed); err != nil {
		return err
	}

	err := w.install(ctx)
	w.metrics.install(err)
	if err != nil {
		w.l.Warnf(ctx, "worker.Install %s: %v", w.CacheName(), err)
		w.markRedundant()
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}

	w.l.Infof(ctx, "worker.Install %s: cached %d assets", w.CacheName(), len(w.cfg.Assets))
	return w.transition(StateInstalled, StateInstalling)
}

func (w *Worker) install(ctx context.Context) error {
	bucket, created, err := w.storage.Open(w.CacheName())
	if err != nil {
		return err
	}

	entries, err := w.fetchAssets(ctx)
	if err == nil {
		err = bucket.PutAll(entries)
	}
	if err != nil && created {
		w.storage.Delete(w.CacheName())
	}
	return err
}

func (w *Worker) fetchAssets(ctx context.Context) ([]cache.Entry, error) {
	entries := make([]cache.Entry, 0, len(w.cfg.Assets))
	for _, asset := range w.cfg.Assets {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset, nil)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", asset, err)
		}
		resp, err := w.net.Fetch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", asset, err)
		}
		if !resp.OK() {
			return nil, fmt.Errorf("asset %s: %w (%d)", asset, ErrAssetStatus, resp.StatusCode)
		}
		entries = append(entries, cache.Entry{Key: cache.Key(req.URL), Response: resp})
	}
	return entries, nil
}

// Activate deletes every bucket sharing the worker's prefix except its own.
// Claiming clients is the registration's job once this returns.
func (w *Worker) Activate(ctx context.Context) error {
	if err := w.transition(StateActivating, StateInstalled); err != nil {
		return err
	}

	current := w.CacheName()
	prefix := w.cfg.Prefix
	for _, name := range w.storage.Keys() {
		if name == current || !strings.HasPrefix(name, prefix) {
			continue
		}
		if w.storage.Delete(name) {
			w.metrics.bucketDeleted()
			w.l.Infof(ctx, "worker.Activate %s: deleted bucket %s", current, name)
		}
	}

	err := w.transition(StateActivated, StateActivating)
	w.metrics.activate(err)
	return err
}
