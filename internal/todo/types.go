package todo

import "oneday-todo/internal/model"

// State is a point-in-time copy of the controller state.
type State struct {
	Todos     []model.Todo
	Filter    model.Filter
	EditingID string // empty when no item is being edited
}

// ItemsLeft counts incomplete todos across the whole list.
func (s State) ItemsLeft() int {
	n := 0
	for _, t := range s.Todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// --- UseCase Outputs ---

// AddOutput reports the result of Add. Added is false when the trimmed
// text was empty and nothing changed.
type AddOutput struct {
	Todo  model.Todo
	Added bool
	State State
}

// MutationOutput reports the result of a single-item mutation. Changed is
// false for no-ops (unknown ID, empty text).
type MutationOutput struct {
	Changed bool
	State   State
}

// ClearOutput reports how many completed todos were removed.
type ClearOutput struct {
	Removed int
	State   State
}
