package usecase

import (
	"oneday-todo/internal/model"
	"oneday-todo/internal/todo"
)

// indexOf returns the position of the todo with the given ID, or -1.
func (uc *implUseCase) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, t := range uc.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (uc *implUseCase) cloneTodos() []model.Todo {
	out := make([]model.Todo, len(uc.todos))
	copy(out, uc.todos)
	return out
}

func (uc *implUseCase) snapshot() todo.State {
	return todo.State{
		Todos:     uc.cloneTodos(),
		Filter:    uc.filter,
		EditingID: uc.editingID,
	}
}
