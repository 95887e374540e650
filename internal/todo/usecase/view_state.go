package usecase

import (
	"context"

	"oneday-todo/internal/model"
	"oneday-todo/internal/todo"
)

// SetFilter switches the active filter.
func (uc *implUseCase) SetFilter(ctx context.Context, filter model.Filter) (todo.State, error) {
	if !filter.Valid() {
		return todo.State{}, todo.ErrInvalidFilter
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.filter = filter
	return uc.publish(), nil
}

// State returns a copy of the current controller state.
func (uc *implUseCase) State(ctx context.Context) todo.State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot()
}

// Subscribe registers a re-render observer. The channel holds at most one
// pending state; a slow reader only ever sees the latest one. The returned
// func unsubscribes and closes the channel.
func (uc *implUseCase) Subscribe() (<-chan todo.State, func()) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := uc.nextSub
	uc.nextSub++
	ch := make(chan todo.State, 1)
	uc.subs[id] = ch

	unsubscribe := func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if c, ok := uc.subs[id]; ok {
			delete(uc.subs, id)
			close(c)
		}
	}
	return ch, unsubscribe
}

// publish snapshots the state and hands it to every subscriber. Callers hold uc.mu.
func (uc *implUseCase) publish() todo.State {
	st := uc.snapshot()
	for _, ch := range uc.subs {
		select {
		case ch <- st:
		default:
			// Drop the stale pending state in favour of this one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
	return st
}
