package http

import (
	"oneday-todo/internal/model"
	"oneday-todo/internal/todo"
	"oneday-todo/internal/todo/view"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text"`
}

type toggleReq struct {
	ID        string `json:"-"` // populated from URI param
	Completed *bool  `json:"completed" binding:"required"`
}

type updateTextReq struct {
	ID   string `json:"-"` // populated from URI param
	Text string `json:"text"`
}

type filterReq struct {
	Filter string `json:"filter" form:"filter" binding:"required"`
}

type listReq struct {
	Filter string `form:"filter"`
}

type dispatchReq struct {
	Control string `json:"control" binding:"required"`
	Event   string `json:"event"   binding:"required"`
	ID      string `json:"id"      binding:"required"`
	Checked bool   `json:"checked"`
	Key     string `json:"key"`
	Text    string `json:"text"`
}

// --- Response DTOs ---

type todoResp struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{ID: t.ID, Text: t.Text, Completed: t.Completed}
}

type stateResp struct {
	Todos     []todoResp   `json:"todos"`
	Filter    model.Filter `json:"filter"`
	EditingID string       `json:"editing_id,omitempty"`
	ItemsLeft int          `json:"items_left"`
}

func newStateResp(st todo.State) stateResp {
	todos := make([]todoResp, len(st.Todos))
	for i, t := range st.Todos {
		todos[i] = newTodoResp(t)
	}
	return stateResp{
		Todos:     todos,
		Filter:    st.Filter,
		EditingID: st.EditingID,
		ItemsLeft: st.ItemsLeft(),
	}
}

type listResp struct {
	State stateResp `json:"state"`
	View  view.View `json:"view"`
}

func (h *handler) newListResp(st todo.State) listResp {
	return listResp{State: newStateResp(st), View: renderState(st)}
}

type createResp struct {
	Added bool      `json:"added"`
	Todo  *todoResp `json:"todo,omitempty"`
	State stateResp `json:"state"`
}

func (h *handler) newCreateResp(out todo.AddOutput) createResp {
	resp := createResp{Added: out.Added, State: newStateResp(out.State)}
	if out.Added {
		t := newTodoResp(out.Todo)
		resp.Todo = &t
	}
	return resp
}

type mutationResp struct {
	Changed bool      `json:"changed"`
	State   stateResp `json:"state"`
}

func (h *handler) newMutationResp(out todo.MutationOutput) mutationResp {
	return mutationResp{Changed: out.Changed, State: newStateResp(out.State)}
}

type clearResp struct {
	Removed int       `json:"removed"`
	State   stateResp `json:"state"`
}

func (h *handler) newClearResp(out todo.ClearOutput) clearResp {
	return clearResp{Removed: out.Removed, State: newStateResp(out.State)}
}

func renderState(st todo.State) view.View {
	return view.Render(st.Todos, st.Filter, st.EditingID)
}
