package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"oneday-todo/pkg/response"
)

// Status godoc
// @Summary     Offline worker status
// @Description Cache names of the active, waiting and pending workers plus every cache bucket.
// @Tags        Offline
// @Produce     json
// @Success     200 {object} worker.Status
// @Router      /__offline/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.reg.Status())
}

// SkipWaiting godoc
// @Summary     Activate the waiting worker
// @Tags        Offline
// @Produce     json
// @Success     200 {object} worker.Status
// @Failure     409 {object} response.Resp "No worker is waiting"
// @Router      /__offline/skip-waiting [POST]
func (h *handler) SkipWaiting(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.reg.SkipWaiting(ctx); err != nil {
		h.l.Warnf(ctx, "reg.SkipWaiting: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.reg.Status())
}

// Events godoc
// @Summary     Lifecycle events
// @Description Server-sent events stream of worker state changes and controller changes.
// @Tags        Offline
// @Produce     text/event-stream
// @Success     200 {object} worker.Event
// @Router      /__offline/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	events, unsubscribe := h.reg.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.SSEvent("status", h.reg.Status())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		}
	})
}
