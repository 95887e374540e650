package http

import (
	"context"

	"oneday-todo/internal/todo"
	"oneday-todo/internal/todo/view"
)

// DOM event names accepted by Dispatch.
const (
	eventClick    = "click"
	eventChange   = "change"
	eventDblClick = "dblclick"
	eventKeyDown  = "keydown"
	eventBlur     = "blur"
)

// Keys that end an edit session.
const (
	keyEnter  = "Enter"
	keyEscape = "Escape"
)

type dispatchKey struct {
	control string
	event   string
}

type dispatchFunc func(ctx context.Context, req dispatchReq) (todo.MutationOutput, error)

// dispatchTable resolves a delegated event on a row control to one controller
// operation. Pairs missing from the table are rejected.
func (h *handler) dispatchTable() map[dispatchKey]dispatchFunc {
	toggle := func(ctx context.Context, req dispatchReq) (todo.MutationOutput, error) {
		return h.uc.Toggle(ctx, req.ID, req.Checked)
	}
	commit := func(ctx context.Context, req dispatchReq) (todo.MutationOutput, error) {
		return h.uc.CommitEdit(ctx, req.ID, req.Text)
	}

	return map[dispatchKey]dispatchFunc{
		{view.ControlToggle, eventClick}:  toggle,
		{view.ControlToggle, eventChange}: toggle,
		{view.ControlDelete, eventClick}: func(ctx context.Context, req dispatchReq) (todo.MutationOutput, error) {
			return h.uc.Delete(ctx, req.ID)
		},
		{view.ControlText, eventDblClick}: func(ctx context.Context, req dispatchReq) (todo.MutationOutput, error) {
			return h.uc.BeginEdit(ctx, req.ID)
		},
		{view.ControlText, eventBlur}: commit,
		{view.ControlText, eventKeyDown}: func(ctx context.Context, req dispatchReq) (todo.MutationOutput, error) {
			switch req.Key {
			case keyEnter:
				return commit(ctx, req)
			case keyEscape:
				return h.uc.CancelEdit(ctx, req.ID)
			default:
				return todo.MutationOutput{State: h.uc.State(ctx)}, nil
			}
		},
	}
}

func (h *handler) lookupDispatch(req dispatchReq) (dispatchFunc, error) {
	fn, ok := h.dispatch[dispatchKey{control: req.Control, event: req.Event}]
	if !ok {
		return nil, errUnknownControl
	}
	return fn, nil
}
