package usecase

import (
	"context"

	"oneday-todo/internal/todo"
)

// BeginEdit moves the item into the editing state. A second BeginEdit
// replaces the current session without committing it.
func (uc *implUseCase) BeginEdit(ctx context.Context, id string) (todo.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.indexOf(id) < 0 || uc.editingID == id {
		return todo.MutationOutput{State: uc.snapshot()}, nil
	}
	if uc.editingID != "" {
		uc.l.Debugf(ctx, "uc.BeginEdit: replacing edit session of %s", uc.editingID)
	}
	uc.editingID = id
	return todo.MutationOutput{Changed: true, State: uc.publish()}, nil
}

// CommitEdit applies rawText through the same rules as UpdateText and then
// leaves the editing state. A failed save keeps the session open. Blur is
// treated as a commit too.
func (uc *implUseCase) CommitEdit(ctx context.Context, id string, rawText string) (todo.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	updated, err := uc.updateTextLocked(ctx, id, rawText)
	if err != nil {
		return todo.MutationOutput{}, err
	}
	ended := uc.endEditLocked(id)
	if !ended && !updated {
		return todo.MutationOutput{State: uc.snapshot()}, nil
	}
	return todo.MutationOutput{Changed: updated, State: uc.publish()}, nil
}

// CancelEdit leaves the editing state and discards the draft.
func (uc *implUseCase) CancelEdit(ctx context.Context, id string) (todo.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.endEditLocked(id) {
		return todo.MutationOutput{State: uc.snapshot()}, nil
	}
	return todo.MutationOutput{State: uc.publish()}, nil
}

func (uc *implUseCase) endEditLocked(id string) bool {
	if uc.editingID == "" || uc.editingID != id {
		return false
	}
	uc.editingID = ""
	return true
}
