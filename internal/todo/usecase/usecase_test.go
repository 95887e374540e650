package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"oneday-todo/internal/model"
	"oneday-todo/internal/todo"
	"oneday-todo/internal/todo/usecase"
)

const key = usecase.DefaultSnapshotKey

func newUC(r *memRepo) todo.UseCase {
	return usecase.New(&mockLogger{}, r, key)
}

func mustAdd(t *testing.T, uc todo.UseCase, text string) model.Todo {
	t.Helper()
	out, err := uc.Add(context.Background(), text)
	if err != nil {
		t.Fatalf("Add(%q): %v", text, err)
	}
	if !out.Added {
		t.Fatalf("Add(%q): expected item to be added", text)
	}
	return out.Todo
}

func assertPersisted(t *testing.T, r *memRepo, uc todo.UseCase) {
	t.Helper()
	got := r.persisted(key)
	want := uc.State(context.Background()).Todos
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("persisted snapshot %+v does not match in-memory list %+v", got, want)
	}
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Trims And Appends", func(t *testing.T) {
		r := newMemRepo()
		uc := newUC(r)

		item := mustAdd(t, uc, "  buy milk  ")
		if item.Text != "buy milk" || item.Completed || item.ID == "" {
			t.Errorf("unexpected todo: %+v", item)
		}
		st := uc.State(ctx)
		if len(st.Todos) != 1 || st.Todos[0] != item {
			t.Errorf("unexpected list: %+v", st.Todos)
		}
		assertPersisted(t, r, uc)
	})

	t.Run("Whitespace Only Is Ignored", func(t *testing.T) {
		r := newMemRepo()
		uc := newUC(r)

		out, err := uc.Add(ctx, "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Added {
			t.Errorf("expected no item to be added")
		}
		if len(uc.State(ctx).Todos) != 0 {
			t.Errorf("expected empty list")
		}
		if r.saveCount() != 0 {
			t.Errorf("expected no write, got %d", r.saveCount())
		}
	})

	t.Run("Insertion Order And Unique IDs", func(t *testing.T) {
		uc := newUC(newMemRepo())
		seen := map[string]bool{}
		for _, text := range []string{"a", "b", "c", "d"} {
			item := mustAdd(t, uc, text)
			if seen[item.ID] {
				t.Fatalf("duplicate id %s", item.ID)
			}
			seen[item.ID] = true
		}
		var texts []string
		for _, td := range uc.State(ctx).Todos {
			texts = append(texts, td.Text)
		}
		if !reflect.DeepEqual(texts, []string{"a", "b", "c", "d"}) {
			t.Errorf("unexpected order: %v", texts)
		}
	})

	t.Run("Save Failure Is Returned", func(t *testing.T) {
		r := newMemRepo()
		r.saveErr = errDiskFull
		uc := newUC(r)

		_, err := uc.Add(ctx, "x")
		if !errors.Is(err, todo.ErrPersist) || !errors.Is(err, errDiskFull) {
			t.Errorf("expected ErrPersist wrapping disk full, got %v", err)
		}
		if len(uc.State(ctx).Todos) != 0 {
			t.Errorf("expected in-memory list to stay unchanged on failed save")
		}
	})
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := newUC(r)
	a := mustAdd(t, uc, "a")

	out, err := uc.Toggle(ctx, a.ID, true)
	if err != nil || !out.Changed {
		t.Fatalf("Toggle: changed=%v err=%v", out.Changed, err)
	}
	if !out.State.Todos[0].Completed {
		t.Errorf("expected todo to be completed")
	}
	assertPersisted(t, r, uc)

	out, _ = uc.Toggle(ctx, a.ID, false)
	if out.State.Todos[0].Completed {
		t.Errorf("expected todo to be active again")
	}

	t.Run("Unknown ID", func(t *testing.T) {
		before := uc.State(ctx)
		saves := r.saveCount()
		out, err := uc.Toggle(ctx, "missing", true)
		if err != nil || out.Changed {
			t.Errorf("expected no-op, got changed=%v err=%v", out.Changed, err)
		}
		if !reflect.DeepEqual(before, uc.State(ctx)) {
			t.Errorf("list changed on unknown id")
		}
		if r.saveCount() != saves {
			t.Errorf("expected no write on unknown id")
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := newUC(r)
	a := mustAdd(t, uc, "a")
	b := mustAdd(t, uc, "b")

	out, err := uc.Delete(ctx, a.ID)
	if err != nil || !out.Changed {
		t.Fatalf("Delete: changed=%v err=%v", out.Changed, err)
	}
	if len(out.State.Todos) != 1 || out.State.Todos[0].ID != b.ID {
		t.Errorf("unexpected list after delete: %+v", out.State.Todos)
	}
	assertPersisted(t, r, uc)

	out, err = uc.Delete(ctx, a.ID)
	if err != nil || out.Changed {
		t.Errorf("expected deleting twice to be a no-op")
	}
}

func TestUpdateText(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := newUC(r)
	a := mustAdd(t, uc, "original")

	for _, empty := range []string{"", "   ", "\t\n"} {
		out, err := uc.UpdateText(ctx, a.ID, empty)
		if err != nil || out.Changed {
			t.Errorf("UpdateText(%q): expected no-op", empty)
		}
		if got := uc.State(ctx).Todos[0].Text; got != "original" {
			t.Errorf("UpdateText(%q): text changed to %q", empty, got)
		}
	}

	out, err := uc.UpdateText(ctx, a.ID, "  renamed ")
	if err != nil || !out.Changed {
		t.Fatalf("UpdateText: changed=%v err=%v", out.Changed, err)
	}
	if out.State.Todos[0].Text != "renamed" || out.State.Todos[0].ID != a.ID {
		t.Errorf("unexpected todo: %+v", out.State.Todos[0])
	}
	assertPersisted(t, r, uc)

	out, _ = uc.UpdateText(ctx, "missing", "x")
	if out.Changed {
		t.Errorf("expected unknown id to be a no-op")
	}
}

func TestClearCompleted(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := newUC(r)

	var ids []string
	for i, text := range []string{"a", "b", "c", "d", "e"} {
		item := mustAdd(t, uc, text)
		ids = append(ids, item.ID)
		if i%2 == 0 {
			_, _ = uc.Toggle(ctx, item.ID, true)
		}
	}

	out, err := uc.ClearCompleted(ctx)
	if err != nil {
		t.Fatalf("ClearCompleted: %v", err)
	}
	if out.Removed != 3 {
		t.Errorf("expected 3 removed, got %d", out.Removed)
	}
	var texts []string
	for _, td := range out.State.Todos {
		if td.Completed {
			t.Errorf("completed todo survived: %+v", td)
		}
		texts = append(texts, td.Text)
	}
	if !reflect.DeepEqual(texts, []string{"b", "d"}) {
		t.Errorf("unexpected survivors: %v", texts)
	}
	assertPersisted(t, r, uc)
}

func TestRoundTripAfterEveryOperation(t *testing.T) {
	ctx := context.Background()
	r := newMemRepo()
	uc := newUC(r)

	a := mustAdd(t, uc, "a")
	assertPersisted(t, r, uc)
	b := mustAdd(t, uc, "b")
	assertPersisted(t, r, uc)
	_, _ = uc.Toggle(ctx, b.ID, true)
	assertPersisted(t, r, uc)
	_, _ = uc.UpdateText(ctx, a.ID, "aa")
	assertPersisted(t, r, uc)
	_, _ = uc.Delete(ctx, a.ID)
	assertPersisted(t, r, uc)
	_, _ = uc.ClearCompleted(ctx)
	assertPersisted(t, r, uc)

	// A fresh controller over the same store sees the same list.
	fresh := newUC(r)
	if got := fresh.Reload(ctx); len(got.Todos) != 0 {
		t.Errorf("expected empty list after reload, got %+v", got.Todos)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Read Errors Degrade To Empty", func(t *testing.T) {
		r := newMemRepo()
		r.loadErr = errors.New("storage unavailable")
		uc := newUC(r)
		got := uc.Load(ctx)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", got)
		}
	})

	t.Run("Corrupt Snapshot Degrades To Empty", func(t *testing.T) {
		r := newMemRepo()
		r.data[key] = []byte(`{"oops":true}`)
		if got := newUC(r).Reload(ctx); len(got.Todos) != 0 {
			t.Errorf("expected empty list, got %+v", got.Todos)
		}
	})

	t.Run("Reload Restores Persisted List", func(t *testing.T) {
		r := newMemRepo()
		first := newUC(r)
		mustAdd(t, first, "keep me")

		second := newUC(r)
		st := second.Reload(ctx)
		if len(st.Todos) != 1 || st.Todos[0].Text != "keep me" {
			t.Errorf("unexpected reloaded list: %+v", st.Todos)
		}
	})
}

func TestSetFilter(t *testing.T) {
	ctx := context.Background()
	uc := newUC(newMemRepo())

	if st := uc.State(ctx); st.Filter != model.FilterAll {
		t.Errorf("expected default filter all, got %s", st.Filter)
	}

	st, err := uc.SetFilter(ctx, model.FilterCompleted)
	if err != nil || st.Filter != model.FilterCompleted {
		t.Errorf("SetFilter: filter=%s err=%v", st.Filter, err)
	}

	_, err = uc.SetFilter(ctx, model.Filter("done"))
	if !errors.Is(err, todo.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
	if uc.State(ctx).Filter != model.FilterCompleted {
		t.Errorf("invalid filter must not change state")
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	uc := newUC(newMemRepo())

	ch, unsubscribe := uc.Subscribe()

	mustAdd(t, uc, "a")
	mustAdd(t, uc, "b")

	// Only the latest state is pending.
	st := <-ch
	if len(st.Todos) != 2 {
		t.Errorf("expected latest state with 2 todos, got %d", len(st.Todos))
	}
	select {
	case extra := <-ch:
		t.Errorf("expected no further pending state, got %+v", extra)
	default:
	}

	// No-ops do not notify.
	_, _ = uc.Toggle(ctx, "missing", true)
	select {
	case <-ch:
		t.Errorf("no-op should not notify")
	default:
	}

	unsubscribe()
	if _, ok := <-ch; ok {
		t.Errorf("expected channel to be closed after unsubscribe")
	}
	unsubscribe()
}

func TestEditing(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit Applies Text", func(t *testing.T) {
		uc := newUC(newMemRepo())
		a := mustAdd(t, uc, "a")

		out, _ := uc.BeginEdit(ctx, a.ID)
		if out.State.EditingID != a.ID {
			t.Fatalf("expected editing %s, got %q", a.ID, out.State.EditingID)
		}
		out, err := uc.CommitEdit(ctx, a.ID, " edited ")
		if err != nil || !out.Changed {
			t.Fatalf("CommitEdit: changed=%v err=%v", out.Changed, err)
		}
		if out.State.EditingID != "" || out.State.Todos[0].Text != "edited" {
			t.Errorf("unexpected state after commit: %+v", out.State)
		}
	})

	t.Run("Cancel Discards", func(t *testing.T) {
		r := newMemRepo()
		uc := newUC(r)
		a := mustAdd(t, uc, "a")
		saves := r.saveCount()

		_, _ = uc.BeginEdit(ctx, a.ID)
		out, _ := uc.CancelEdit(ctx, a.ID)
		if out.State.EditingID != "" || out.State.Todos[0].Text != "a" {
			t.Errorf("unexpected state after cancel: %+v", out.State)
		}
		if r.saveCount() != saves {
			t.Errorf("cancel must not write")
		}
	})

	t.Run("Empty Commit Keeps Text And Ends Session", func(t *testing.T) {
		uc := newUC(newMemRepo())
		a := mustAdd(t, uc, "a")
		_, _ = uc.BeginEdit(ctx, a.ID)

		out, _ := uc.CommitEdit(ctx, a.ID, "   ")
		if out.Changed || out.State.Todos[0].Text != "a" || out.State.EditingID != "" {
			t.Errorf("unexpected state: %+v changed=%v", out.State, out.Changed)
		}
	})

	t.Run("Failed Commit Keeps Session And Text", func(t *testing.T) {
		r := newMemRepo()
		uc := newUC(r)
		a := mustAdd(t, uc, "a")
		_, _ = uc.BeginEdit(ctx, a.ID)

		updates, unsubscribe := uc.Subscribe()
		defer unsubscribe()

		r.saveErr = errDiskFull
		_, err := uc.CommitEdit(ctx, a.ID, "edited")
		if !errors.Is(err, todo.ErrPersist) {
			t.Fatalf("expected ErrPersist, got %v", err)
		}

		st := uc.State(ctx)
		if st.EditingID != a.ID || st.Todos[0].Text != "a" {
			t.Errorf("failed commit must leave the edit session untouched: %+v", st)
		}
		select {
		case got := <-updates:
			t.Errorf("failed commit must not notify, got %+v", got)
		default:
		}

		r.saveErr = nil
		out, err := uc.CommitEdit(ctx, a.ID, "edited")
		if err != nil || !out.Changed || out.State.EditingID != "" || out.State.Todos[0].Text != "edited" {
			t.Errorf("retry after failure: out=%+v err=%v", out, err)
		}
	})

	t.Run("Second Begin Replaces Session", func(t *testing.T) {
		uc := newUC(newMemRepo())
		a := mustAdd(t, uc, "a")
		b := mustAdd(t, uc, "b")

		_, _ = uc.BeginEdit(ctx, a.ID)
		out, _ := uc.BeginEdit(ctx, b.ID)
		if out.State.EditingID != b.ID {
			t.Errorf("expected editing %s, got %s", b.ID, out.State.EditingID)
		}
	})

	t.Run("Unknown ID Is Ignored", func(t *testing.T) {
		uc := newUC(newMemRepo())
		out, _ := uc.BeginEdit(ctx, "missing")
		if out.Changed || out.State.EditingID != "" {
			t.Errorf("expected no-op")
		}
	})

	t.Run("Deleting Edited Item Ends Session", func(t *testing.T) {
		uc := newUC(newMemRepo())
		a := mustAdd(t, uc, "a")
		_, _ = uc.BeginEdit(ctx, a.ID)
		out, _ := uc.Delete(ctx, a.ID)
		if out.State.EditingID != "" {
			t.Errorf("expected edit session to end with the item")
		}
	})
}
