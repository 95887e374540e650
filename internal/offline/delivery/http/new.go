package http

import (
	"github.com/gin-gonic/gin"

	"oneday-todo/internal/offline/worker"
	"oneday-todo/pkg/log"
)

// Handler exposes the worker registration to the page side.
type Handler interface {
	Status(c *gin.Context)
	SkipWaiting(c *gin.Context)
	Events(c *gin.Context)
}

type handler struct {
	l   log.Logger
	reg *worker.Registration
}

// New creates a new HTTP handler for the offline worker registration.
func New(l log.Logger, reg *worker.Registration) *handler {
	return &handler{l: l, reg: reg}
}

var _ Handler = (*handler)(nil)
