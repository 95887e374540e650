package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"oneday-todo/internal/model"
	repo "oneday-todo/internal/todo/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo keeps snapshots as raw JSON, like the real store.
type memRepo struct {
	mu      sync.Mutex
	data    map[string][]byte
	saves   int
	loadErr error
	saveErr error
}

func newMemRepo() *memRepo {
	return &memRepo{data: make(map[string][]byte)}
}

func (r *memRepo) LoadSnapshot(ctx context.Context, opt repo.LoadSnapshotOptions) ([]model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	raw, ok := r.data[opt.Key]
	if !ok {
		return nil, nil
	}
	var todos []model.Todo
	if err := json.Unmarshal(raw, &todos); err != nil {
		return nil, repo.ErrCorruptSnapshot
	}
	return todos, nil
}

func (r *memRepo) SaveSnapshot(ctx context.Context, opt repo.SaveSnapshotOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	raw, err := json.Marshal(opt.Todos)
	if err != nil {
		return err
	}
	r.data[opt.Key] = raw
	r.saves++
	return nil
}

// persisted decodes what is currently stored under key.
func (r *memRepo) persisted(key string) []model.Todo {
	r.mu.Lock()
	defer r.mu.Unlock()
	var todos []model.Todo
	_ = json.Unmarshal(r.data[key], &todos)
	return todos
}

func (r *memRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

var errDiskFull = errors.New("disk full")
