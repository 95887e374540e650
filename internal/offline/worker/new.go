package worker

import (
	"sync"

	"oneday-todo/internal/offline/cache"
	"oneday-todo/pkg/log"
)

// Worker is one version of the offline cache: its asset manifest, its
// bucket, and the strategies that serve requests from them.
type Worker struct {
	l       log.Logger
	cfg     Config
	storage *cache.Storage
	net     Fetcher
	metrics *Metrics
	assets  map[string]struct{}
	origin  string // host

	mu       sync.RWMutex
	state    State
	onChange func(*Worker, State)
}

// New creates a worker in the parsed state. metrics may be nil.
func New(l log.Logger, cfg Config, storage *cache.Storage, net Fetcher, metrics *Metrics) *Worker {
	assets := make(map[string]struct{}, len(cfg.Assets))
	for _, a := range cfg.Assets {
		assets[a] = struct{}{}
	}
	return &Worker{
		l:       l,
		cfg:     cfg,
		storage: storage,
		net:     net,
		metrics: metrics,
		assets:  assets,
		origin:  originHost(cfg.Origin),
		state:   StateParsed,
	}
}

// Config returns the worker's version description.
func (w *Worker) Config() Config {
	return w.cfg
}

// CacheName returns the worker's bucket name.
func (w *Worker) CacheName() string {
	return w.cfg.CacheName()
}

// State returns the current lifecycle state.
func (w *Worker) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

func (w *Worker) setOnChange(fn func(*Worker, State)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// transition moves from one of the allowed states to next.
func (w *Worker) transition(next State, from ...State) error {
	w.mu.Lock()
	cur := w.state
	allowed := len(from) == 0
	for _, f := range from {
		if cur == f {
			allowed = true
			break
		}
	}
	if !allowed {
		w.mu.Unlock()
		return ErrInvalidState
	}
	w.state = next
	fn := w.onChange
	w.mu.Unlock()

	if fn != nil {
		fn(w, next)
	}
	return nil
}

// markRedundant retires the worker. It is idempotent.
func (w *Worker) markRedundant() {
	if w.State() == StateRedundant {
		return
	}
	_ = w.transition(StateRedundant)
}
