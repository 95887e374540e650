package usecase

import (
	"sync"

	"oneday-todo/internal/model"
	"oneday-todo/internal/todo"
	"oneday-todo/internal/todo/repository"
	pkgLog "oneday-todo/pkg/log"
)

// DefaultSnapshotKey is the store key the list is persisted under.
const DefaultSnapshotKey = "oneday.todos.v1"

// implUseCase is the single controller instance that owns the list.
type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	snapshotKey string
	newID       func() string

	mu        sync.Mutex
	todos     []model.Todo
	filter    model.Filter
	editingID string

	subs    map[int]chan todo.State
	nextSub int
}

// New creates a new todo UseCase instance with an empty list and the "all"
// filter. Call Reload to pull the persisted list.
func New(l pkgLog.Logger, repo repository.Repository, snapshotKey string) *implUseCase {
	if snapshotKey == "" {
		snapshotKey = DefaultSnapshotKey
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		snapshotKey: snapshotKey,
		newID:       newID,
		filter:      model.FilterAll,
		subs:        make(map[int]chan todo.State),
	}
}

// Ensure implUseCase implements todo.UseCase.
var _ todo.UseCase = (*implUseCase)(nil)
