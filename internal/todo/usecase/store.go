package usecase

import (
	"context"
	"fmt"

	"oneday-todo/internal/model"
	"oneday-todo/internal/todo"
	repo "oneday-todo/internal/todo/repository"
)

// Load reads the persisted list. Any read failure degrades to an empty list.
func (uc *implUseCase) Load(ctx context.Context) []model.Todo {
	todos, err := uc.repo.LoadSnapshot(ctx, repo.LoadSnapshotOptions{Key: uc.snapshotKey})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Load LoadSnapshot: %v (starting from an empty list)", err)
		return []model.Todo{}
	}
	if todos == nil {
		return []model.Todo{}
	}
	return todos
}

// Save overwrites the persisted list.
func (uc *implUseCase) Save(ctx context.Context, todos []model.Todo) error {
	if err := uc.repo.SaveSnapshot(ctx, repo.SaveSnapshotOptions{Key: uc.snapshotKey, Todos: todos}); err != nil {
		uc.l.Errorf(ctx, "uc.Save SaveSnapshot: %v", err)
		return fmt.Errorf("%w: %w", todo.ErrPersist, err)
	}
	return nil
}

// Reload replaces the in-memory list with the persisted one.
func (uc *implUseCase) Reload(ctx context.Context) todo.State {
	todos := uc.Load(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.todos = todos
	if uc.indexOf(uc.editingID) < 0 {
		uc.editingID = ""
	}
	uc.l.Infof(ctx, "uc.Reload: loaded %d todos", len(todos))
	return uc.publish()
}

// commit persists next and, only once the store accepted it, makes it the
// in-memory list. Callers hold uc.mu.
func (uc *implUseCase) commit(ctx context.Context, next []model.Todo) error {
	if err := uc.Save(ctx, next); err != nil {
		return err
	}
	uc.todos = next
	if uc.indexOf(uc.editingID) < 0 {
		uc.editingID = ""
	}
	return nil
}
