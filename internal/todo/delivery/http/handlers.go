package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"oneday-todo/internal/model"
	"oneday-todo/internal/todo/view"
	"oneday-todo/pkg/response"
)

// List godoc
// @Summary     List todos
// @Description Returns the full list, the current filter and the rendered view. An optional filter query switches the active filter first.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       filter query string false "Filter (all/active/completed)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	st := h.uc.State(ctx)
	if req.Filter != "" {
		st, err = h.uc.SetFilter(ctx, model.Filter(req.Filter))
		if err != nil {
			response.Error(c, h.mapError(err), nil)
			return
		}
	}

	response.OK(c, h.newListResp(st))
}

// Create godoc
// @Summary     Add a todo
// @Description Appends a new incomplete todo. Blank text is ignored and reported with added=false.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo text"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Add(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Toggle godoc
// @Summary     Set completion
// @Description Sets the completed flag of one todo. Unknown IDs are a no-op.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Todo ID"
// @Param       body body toggleReq true "Completion flag"
// @Success     200  {object} mutationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Toggle(ctx, req.ID, *req.Completed)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// UpdateText godoc
// @Summary     Edit todo text
// @Description Replaces the text of one todo with the trimmed value. Blank text and unknown IDs are a no-op.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Todo ID"
// @Param       body body updateTextReq true "New text"
// @Success     200  {object} mutationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id}/text [PUT]
func (h *handler) UpdateText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateText(ctx, req.ID, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateText: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// Delete godoc
// @Summary     Delete a todo
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// ClearCompleted godoc
// @Summary     Clear completed todos
// @Description Removes every completed todo and persists the result.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/clear-completed [POST]
func (h *handler) ClearCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ClearCompleted(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearCompleted: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClearResp(output))
}

// Dispatch godoc
// @Summary     Dispatch a row event
// @Description Routes a delegated UI event (control kind + event name) on one row to the matching controller operation.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body dispatchReq true "Delegated event"
// @Success     200  {object} mutationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/dispatch [POST]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDispatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	fn, err := h.lookupDispatch(req)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := fn(ctx, req)
	if err != nil {
		h.l.Errorf(ctx, "dispatch %s/%s: %v", req.Control, req.Event, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// View godoc
// @Summary     Rendered view
// @Description Returns the view tree for the current list and filter.
// @Tags        View
// @Produce     json
// @Success     200 {object} view.View
// @Router      /api/v1/view [GET]
func (h *handler) View(c *gin.Context) {
	response.OK(c, renderState(h.uc.State(c.Request.Context())))
}

// ViewHTML godoc
// @Summary     Rendered view as HTML
// @Description Returns the list fragment and footer as HTML.
// @Tags        View
// @Produce     html
// @Success     200 {string} string
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/view/html [GET]
func (h *handler) ViewHTML(c *gin.Context) {
	ctx := c.Request.Context()

	var buf bytes.Buffer
	if err := view.RenderHTML(&buf, renderState(h.uc.State(ctx))); err != nil {
		h.l.Errorf(ctx, "view.RenderHTML: %v", err)
		response.InternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// SetFilter godoc
// @Summary     Set the active filter
// @Tags        View
// @Accept      json
// @Produce     json
// @Param       body body filterReq true "Filter (all/active/completed)"
// @Success     200  {object} listResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/view/filter [PUT]
func (h *handler) SetFilter(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFilterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	st, err := h.uc.SetFilter(ctx, model.Filter(req.Filter))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(st))
}

// Events godoc
// @Summary     View updates
// @Description Server-sent events stream. Sends the current view immediately, then a "view" event after every state change.
// @Tags        View
// @Produce     text/event-stream
// @Success     200 {object} listResp
// @Router      /api/v1/view/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	updates, unsubscribe := h.uc.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent(sseEventView, h.newListResp(h.uc.State(ctx)))
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case st, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent(sseEventView, h.newListResp(st))
			return true
		}
	})
}

const sseEventView = "view"
