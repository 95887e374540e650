package worker

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"oneday-todo/internal/offline/cache"
	"oneday-todo/pkg/log"
)

const eventBuffer = 16

// Registration owns the worker in control of the origin, an optional
// waiting worker, and the lifecycle event stream.
type Registration struct {
	l       log.Logger
	storage *cache.Storage
	net     Fetcher
	metrics *Metrics

	retryLimit *rate.Limiter
	retrying   atomic.Bool

	installMu sync.Mutex

	mu      sync.RWMutex
	active  *Worker
	waiting *Worker
	pending *Config

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// NewRegistration returns a registration with no active worker. A failed
// install is retried from ServeHTTP at most once per retryInterval.
func NewRegistration(l log.Logger, storage *cache.Storage, net Fetcher, metrics *Metrics, retryInterval time.Duration) *Registration {
	return &Registration{
		l:          l,
		storage:    storage,
		net:        net,
		metrics:    metrics,
		retryLimit: rate.NewLimiter(rate.Every(retryInterval), 1),
		subs:       make(map[int]chan Event),
	}
}

// Register installs a worker for cfg. On failure the current active worker
// keeps serving and cfg is kept for a later retry. On success the worker
// takes control, unless it must wait behind an active one because
// cfg.SkipWaiting is off.
func (r *Registration) Register(ctx context.Context, cfg Config) (*Worker, error) {
	r.installMu.Lock()
	defer r.installMu.Unlock()

	w := New(r.l, cfg, r.storage, r.net, r.metrics)
	w.setOnChange(r.onStateChange)

	if err := w.Install(ctx); err != nil {
		r.mu.Lock()
		r.pending = &cfg
		r.mu.Unlock()
		r.publish(ctx, Event{Type: EventInstallError, Version: cfg.Version, State: w.State().String(), Error: err.Error()})
		return nil, err
	}

	r.mu.Lock()
	r.pending = nil
	hasActive := r.active != nil
	r.mu.Unlock()

	if !cfg.SkipWaiting && hasActive {
		r.mu.Lock()
		prev := r.waiting
		r.waiting = w
		r.mu.Unlock()
		if prev != nil {
			prev.markRedundant()
		}
		return w, nil
	}

	return w, r.activate(ctx, w)
}

// SkipWaiting activates the waiting worker.
func (r *Registration) SkipWaiting(ctx context.Context) error {
	r.installMu.Lock()
	defer r.installMu.Unlock()

	w := r.Waiting()
	if w == nil {
		return ErrNothingToRun
	}
	return r.activate(ctx, w)
}

func (r *Registration) activate(ctx context.Context, w *Worker) error {
	if err := w.Activate(ctx); err != nil {
		w.markRedundant()
		return err
	}

	r.mu.Lock()
	prev := r.active
	r.active = w
	if r.waiting == w {
		r.waiting = nil
	}
	r.mu.Unlock()

	if prev != nil && prev != w {
		prev.markRedundant()
	}
	r.metrics.setActive(w.CacheName())
	r.l.Infof(ctx, "worker.Registration: %s now controls the origin", w.CacheName())
	r.publish(ctx, Event{Type: EventControllerChange, Version: w.cfg.Version, State: w.State().String()})
	return nil
}

// Active returns the worker in control, or nil.
func (r *Registration) Active() *Worker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Waiting returns the installed worker waiting to take control, or nil.
func (r *Registration) Waiting() *Worker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.waiting
}

// Status is a point-in-time summary for diagnostics.
type Status struct {
	Active  string   `json:"active,omitempty"`
	Waiting string   `json:"waiting,omitempty"`
	Pending string   `json:"pending,omitempty"`
	Buckets []string `json:"buckets"`
}

// Status reports cache names of the registered workers and the buckets.
func (r *Registration) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var st Status
	if r.active != nil {
		st.Active = r.active.CacheName()
	}
	if r.waiting != nil {
		st.Waiting = r.waiting.CacheName()
	}
	if r.pending != nil {
		st.Pending = r.pending.CacheName()
	}
	st.Buckets = r.storage.Keys()
	return st
}

// Subscribe returns a channel of lifecycle events and a function that
// ends the subscription. Slow readers miss events rather than block the
// worker.
func (r *Registration) Subscribe() (<-chan Event, func()) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	id := r.nextSub
	r.nextSub++
	ch := make(chan Event, eventBuffer)
	r.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.subMu.Lock()
			defer r.subMu.Unlock()
			delete(r.subs, id)
			close(ch)
		})
	}
}

func (r *Registration) onStateChange(w *Worker, s State) {
	r.publish(context.Background(), Event{Type: EventStateChange, Version: w.cfg.Version, State: s.String()})
}

func (r *Registration) publish(ctx context.Context, ev Event) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	for id, ch := range r.subs {
		select {
		case ch <- ev:
		default:
			r.l.Debugf(ctx, "worker.Registration: subscriber %d dropped %s event", id, ev.Type)
		}
	}
}

// retryPending starts a background reinstall of the last failed version.
// At most one retry runs at a time and retries start at most once per
// retry interval; the caller never waits for it.
func (r *Registration) retryPending(ctx context.Context) {
	r.mu.RLock()
	cfg := r.pending
	r.mu.RUnlock()
	if cfg == nil {
		return
	}

	if !r.retrying.CompareAndSwap(false, true) {
		return
	}
	if !r.retryLimit.Allow() {
		r.retrying.Store(false)
		return
	}

	go func(ctx context.Context, cfg Config) {
		defer r.retrying.Store(false)
		if _, err := r.Register(ctx, cfg); err != nil {
			r.l.Warnf(ctx, "worker.Registration: retry install %s: %v", cfg.CacheName(), err)
		}
	}(context.WithoutCancel(ctx), *cfg)
}

// ServeHTTP routes requests through the active worker, or straight to the
// network while none is in control. A request naming a foreign host gets
// 403 Forbidden; one no strategy can answer gets 502 Bad Gateway.
func (r *Registration) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	r.retryPending(ctx)

	var (
		resp *cache.Response
		src  = SourceNetwork
		err  error
	)
	if w := r.Active(); w != nil {
		resp, src, err = w.Handle(ctx, req)
	} else {
		resp, err = r.net.Fetch(ctx, req)
	}
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, ErrForeignOrigin) {
			status = http.StatusForbidden
		}
		r.l.Warnf(ctx, "worker.Registration: %s %s: %v", req.Method, req.URL.String(), err)
		http.Error(rw, http.StatusText(status), status)
		return
	}

	if err := resp.Write(rw, http.Header{HeaderSource: {string(src)}}); err != nil {
		r.l.Debugf(ctx, "worker.Registration: write %s: %v", req.URL.Path, err)
	}
}
