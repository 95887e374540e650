package http

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"oneday-todo/internal/middleware"
	"oneday-todo/internal/model"
	"oneday-todo/internal/todo"
	todoSqlite "oneday-todo/internal/todo/repository/sqlite"
	"oneday-todo/internal/todo/usecase"
	pkgSqlite "oneday-todo/pkg/sqlite"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type testEnv struct {
	router *gin.Engine
	uc     todo.UseCase
	db     *sql.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	db, err := pkgSqlite.Connect(ctx, pkgSqlite.MemoryPath)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := todoSqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	l := &mockLogger{}
	uc := usecase.New(l, todoSqlite.New(db, l), usecase.DefaultSnapshotKey)
	uc.Reload(ctx)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.RateLimitConfig{}))

	return &testEnv{router: r, uc: uc, db: db}
}

// envelope mirrors response.Resp with a typed payload.
type envelope[T any] struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env.Data
}

func (e *testEnv) add(t *testing.T, text string) todoResp {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/todos", createReq{Text: text})
	if w.Code != http.StatusOK {
		t.Fatalf("add %q: status %d body %s", text, w.Code, w.Body.String())
	}
	out := decode[createResp](t, w)
	if !out.Added || out.Todo == nil {
		t.Fatalf("add %q: expected added todo, got %+v", text, out)
	}
	return *out.Todo
}

func TestCreate(t *testing.T) {
	t.Run("adds a trimmed todo and returns the new state", func(t *testing.T) {
		e := newTestEnv(t)

		w := e.do(t, http.MethodPost, "/api/v1/todos", createReq{Text: "  Buy milk  "})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		out := decode[createResp](t, w)
		if !out.Added || out.Todo.Text != "Buy milk" || out.Todo.Completed {
			t.Errorf("unexpected todo: %+v", out.Todo)
		}
		if len(out.State.Todos) != 1 || out.State.ItemsLeft != 1 {
			t.Errorf("unexpected state: %+v", out.State)
		}
	})

	t.Run("blank text is ignored", func(t *testing.T) {
		e := newTestEnv(t)

		w := e.do(t, http.MethodPost, "/api/v1/todos", createReq{Text: "   "})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		out := decode[createResp](t, w)
		if out.Added || out.Todo != nil || len(out.State.Todos) != 0 {
			t.Errorf("expected nothing added, got %+v", out)
		}
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		e := newTestEnv(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("a failed save is a server error", func(t *testing.T) {
		e := newTestEnv(t)
		_ = e.db.Close()

		w := e.do(t, http.MethodPost, "/api/v1/todos", createReq{Text: "lost"})
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if n := len(e.uc.State(context.Background()).Todos); n != 0 {
			t.Errorf("expected in-memory list unchanged, got %d todos", n)
		}
	})
}

func TestListAndFilter(t *testing.T) {
	e := newTestEnv(t)
	a := e.add(t, "A")
	e.add(t, "B")
	if w := e.do(t, http.MethodPatch, "/api/v1/todos/"+a.ID+"/toggle", map[string]bool{"completed": true}); w.Code != http.StatusOK {
		t.Fatalf("toggle: %d", w.Code)
	}

	t.Run("list returns every todo and the view", func(t *testing.T) {
		out := decode[listResp](t, e.do(t, http.MethodGet, "/api/v1/todos", nil))
		if len(out.State.Todos) != 2 || out.State.Filter != model.FilterAll {
			t.Fatalf("unexpected state: %+v", out.State)
		}
		if len(out.View.Rows) != 2 || out.View.ItemsLeftLabel != "1 item left" {
			t.Errorf("unexpected view: %+v", out.View)
		}
	})

	t.Run("filter query narrows the rendered rows", func(t *testing.T) {
		out := decode[listResp](t, e.do(t, http.MethodGet, "/api/v1/todos?filter=active", nil))
		if out.State.Filter != model.FilterActive {
			t.Errorf("expected active filter, got %q", out.State.Filter)
		}
		if len(out.View.Rows) != 1 || out.View.ItemsLeft != 1 {
			t.Errorf("unexpected view: %+v", out.View)
		}
	})

	t.Run("set filter persists across requests", func(t *testing.T) {
		w := e.do(t, http.MethodPut, "/api/v1/view/filter", filterReq{Filter: "completed"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		out := decode[listResp](t, e.do(t, http.MethodGet, "/api/v1/todos", nil))
		if out.State.Filter != model.FilterCompleted || len(out.View.Rows) != 1 || out.View.Rows[0].ID != a.ID {
			t.Errorf("unexpected list after filter: %+v", out)
		}
	})

	t.Run("unknown filter is rejected", func(t *testing.T) {
		if w := e.do(t, http.MethodPut, "/api/v1/view/filter", filterReq{Filter: "done"}); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if w := e.do(t, http.MethodGet, "/api/v1/todos?filter=done", nil); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestMutations(t *testing.T) {
	t.Run("toggle without a completed flag is rejected", func(t *testing.T) {
		e := newTestEnv(t)
		a := e.add(t, "A")

		if w := e.do(t, http.MethodPatch, "/api/v1/todos/"+a.ID+"/toggle", map[string]any{}); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update text trims and unknown ids are a no-op", func(t *testing.T) {
		e := newTestEnv(t)
		a := e.add(t, "A")

		out := decode[mutationResp](t, e.do(t, http.MethodPut, "/api/v1/todos/"+a.ID+"/text", updateTextReq{Text: "  Z "}))
		if !out.Changed || out.State.Todos[0].Text != "Z" {
			t.Errorf("unexpected result: %+v", out)
		}

		out = decode[mutationResp](t, e.do(t, http.MethodPut, "/api/v1/todos/missing/text", updateTextReq{Text: "Q"}))
		if out.Changed {
			t.Errorf("expected no change for unknown id")
		}
	})

	t.Run("delete removes only the matching todo", func(t *testing.T) {
		e := newTestEnv(t)
		a := e.add(t, "A")
		b := e.add(t, "B")

		out := decode[mutationResp](t, e.do(t, http.MethodDelete, "/api/v1/todos/"+a.ID, nil))
		if !out.Changed || len(out.State.Todos) != 1 || out.State.Todos[0].ID != b.ID {
			t.Errorf("unexpected result: %+v", out)
		}
	})

	t.Run("clear completed reports the removed count", func(t *testing.T) {
		e := newTestEnv(t)
		a := e.add(t, "A")
		e.add(t, "B")
		e.do(t, http.MethodPatch, "/api/v1/todos/"+a.ID+"/toggle", map[string]bool{"completed": true})

		out := decode[clearResp](t, e.do(t, http.MethodPost, "/api/v1/todos/clear-completed", nil))
		if out.Removed != 1 || len(out.State.Todos) != 1 || out.State.Todos[0].Text != "B" {
			t.Errorf("unexpected result: %+v", out)
		}
	})
}

func TestDispatch(t *testing.T) {
	t.Run("routes row events to controller operations", func(t *testing.T) {
		e := newTestEnv(t)
		a := e.add(t, "A")
		b := e.add(t, "B")

		steps := []struct {
			name   string
			req    dispatchReq
			assert func(t *testing.T, st stateResp)
		}{
			{
				name: "toggle click completes",
				req:  dispatchReq{Control: "toggle", Event: "click", ID: a.ID, Checked: true},
				assert: func(t *testing.T, st stateResp) {
					if !st.Todos[0].Completed {
						t.Error("expected A completed")
					}
				},
			},
			{
				name: "double click starts editing",
				req:  dispatchReq{Control: "text", Event: "dblclick", ID: b.ID},
				assert: func(t *testing.T, st stateResp) {
					if st.EditingID != b.ID {
						t.Errorf("expected editing %s, got %q", b.ID, st.EditingID)
					}
				},
			},
			{
				name: "other keys keep editing",
				req:  dispatchReq{Control: "text", Event: "keydown", ID: b.ID, Key: "a", Text: "Bz"},
				assert: func(t *testing.T, st stateResp) {
					if st.EditingID != b.ID || st.Todos[1].Text != "B" {
						t.Errorf("unexpected state: %+v", st)
					}
				},
			},
			{
				name: "escape cancels without saving",
				req:  dispatchReq{Control: "text", Event: "keydown", ID: b.ID, Key: "Escape", Text: "ignored"},
				assert: func(t *testing.T, st stateResp) {
					if st.EditingID != "" || st.Todos[1].Text != "B" {
						t.Errorf("unexpected state: %+v", st)
					}
				},
			},
			{
				name: "enter commits the trimmed text",
				req:  dispatchReq{Control: "text", Event: "keydown", ID: b.ID, Key: "Enter", Text: "  B2 "},
				assert: func(t *testing.T, st stateResp) {
					if st.EditingID != "" || st.Todos[1].Text != "B2" {
						t.Errorf("unexpected state: %+v", st)
					}
				},
			},
			{
				name: "blur commits",
				req:  dispatchReq{Control: "text", Event: "blur", ID: a.ID, Text: "A2"},
				assert: func(t *testing.T, st stateResp) {
					if st.Todos[0].Text != "A2" {
						t.Errorf("unexpected state: %+v", st)
					}
				},
			},
			{
				name: "delete click removes",
				req:  dispatchReq{Control: "delete", Event: "click", ID: a.ID},
				assert: func(t *testing.T, st stateResp) {
					if len(st.Todos) != 1 || st.Todos[0].ID != b.ID {
						t.Errorf("unexpected state: %+v", st)
					}
				},
			},
		}

		for _, s := range steps {
			t.Run(s.name, func(t *testing.T) {
				w := e.do(t, http.MethodPost, "/api/v1/todos/dispatch", s.req)
				if w.Code != http.StatusOK {
					t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
				}
				s.assert(t, decode[mutationResp](t, w).State)
			})
		}
	})

	t.Run("unknown control and event pairs are rejected", func(t *testing.T) {
		e := newTestEnv(t)
		a := e.add(t, "A")

		for _, req := range []dispatchReq{
			{Control: "toggle", Event: "dblclick", ID: a.ID},
			{Control: "checkbox", Event: "click", ID: a.ID},
		} {
			if w := e.do(t, http.MethodPost, "/api/v1/todos/dispatch", req); w.Code != http.StatusBadRequest {
				t.Errorf("%s/%s: expected 400, got %d", req.Control, req.Event, w.Code)
			}
		}
	})
}

func TestViewHTML(t *testing.T) {
	e := newTestEnv(t)
	e.add(t, "<b>bold</b>")

	w := e.do(t, http.MethodGet, "/api/v1/view/html", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	if strings.Contains(body, "<b>bold</b>") {
		t.Error("todo text must be escaped")
	}
	if !strings.Contains(body, "1 item left") {
		t.Errorf("expected footer count, got %s", body)
	}
}

func TestEvents(t *testing.T) {
	e := newTestEnv(t)
	srv := httptest.NewServer(e.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/view/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("unexpected content type %q", ct)
	}

	scanner := bufio.NewScanner(resp.Body)
	nextView := func() listResp {
		t.Helper()
		for scanner.Scan() {
			line := scanner.Text()
			if data, ok := strings.CutPrefix(line, "data:"); ok {
				var out listResp
				if err := json.Unmarshal([]byte(data), &out); err != nil {
					t.Fatalf("decode event %q: %v", data, err)
				}
				return out
			}
		}
		t.Fatalf("stream ended: %v", scanner.Err())
		return listResp{}
	}

	if first := nextView(); len(first.View.Rows) != 0 {
		t.Errorf("expected empty initial view, got %+v", first.View)
	}

	if _, err := e.uc.Add(context.Background(), "streamed"); err != nil {
		t.Fatalf("add: %v", err)
	}
	next := nextView()
	if len(next.View.Rows) != 1 || next.View.Rows[0].Text.Content != "streamed" {
		t.Errorf("unexpected streamed view: %+v", next.View)
	}
}
