package usecase

import (
	"context"
	"strings"

	"oneday-todo/internal/model"
	"oneday-todo/internal/todo"
)

// Add appends a new incomplete todo. Whitespace-only text is ignored.
func (uc *implUseCase) Add(ctx context.Context, rawText string) (todo.AddOutput, error) {
	text := strings.TrimSpace(rawText)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if text == "" {
		return todo.AddOutput{State: uc.snapshot()}, nil
	}

	item := model.Todo{ID: uc.newID(), Text: text, Completed: false}
	next := append(uc.cloneTodos(), item)
	if err := uc.commit(ctx, next); err != nil {
		return todo.AddOutput{}, err
	}

	uc.l.Debugf(ctx, "uc.Add: id=%s", item.ID)
	return todo.AddOutput{Todo: item, Added: true, State: uc.publish()}, nil
}

// Toggle sets the completion flag of the todo with the given ID.
func (uc *implUseCase) Toggle(ctx context.Context, id string, completed bool) (todo.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return todo.MutationOutput{State: uc.snapshot()}, nil
	}

	next := uc.cloneTodos()
	next[i].Completed = completed
	if err := uc.commit(ctx, next); err != nil {
		return todo.MutationOutput{}, err
	}
	return todo.MutationOutput{Changed: true, State: uc.publish()}, nil
}

// Delete removes the todo with the given ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) (todo.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return todo.MutationOutput{State: uc.snapshot()}, nil
	}

	next := uc.cloneTodos()
	next = append(next[:i], next[i+1:]...)
	if err := uc.commit(ctx, next); err != nil {
		return todo.MutationOutput{}, err
	}
	return todo.MutationOutput{Changed: true, State: uc.publish()}, nil
}

// UpdateText replaces the text of a todo. Whitespace-only text keeps the
// previous value.
func (uc *implUseCase) UpdateText(ctx context.Context, id string, rawText string) (todo.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	changed, err := uc.updateTextLocked(ctx, id, rawText)
	if err != nil {
		return todo.MutationOutput{}, err
	}
	if !changed {
		return todo.MutationOutput{State: uc.snapshot()}, nil
	}
	return todo.MutationOutput{Changed: true, State: uc.publish()}, nil
}

func (uc *implUseCase) updateTextLocked(ctx context.Context, id string, rawText string) (bool, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return false, nil
	}
	i := uc.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := uc.cloneTodos()
	next[i].Text = text
	if err := uc.commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// ClearCompleted removes every completed todo.
func (uc *implUseCase) ClearCompleted(ctx context.Context) (todo.ClearOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]model.Todo, 0, len(uc.todos))
	for _, t := range uc.todos {
		if !t.Completed {
			next = append(next, t)
		}
	}
	removed := len(uc.todos) - len(next)

	if err := uc.commit(ctx, next); err != nil {
		return todo.ClearOutput{}, err
	}
	if removed > 0 {
		uc.l.Infof(ctx, "uc.ClearCompleted: removed %d todos", removed)
	}
	return todo.ClearOutput{Removed: removed, State: uc.publish()}, nil
}
