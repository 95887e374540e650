package http

import (
	"github.com/gin-gonic/gin"

	"oneday-todo/internal/todo"
	"oneday-todo/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Toggle(c *gin.Context)
	UpdateText(c *gin.Context)
	Delete(c *gin.Context)
	ClearCompleted(c *gin.Context)
	Dispatch(c *gin.Context)

	View(c *gin.Context)
	ViewHTML(c *gin.Context)
	SetFilter(c *gin.Context)
	Events(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       todo.UseCase
	dispatch map[dispatchKey]dispatchFunc
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) *handler {
	h := &handler{
		l:  l,
		uc: uc,
	}
	h.dispatch = h.dispatchTable()
	return h
}

var _ Handler = (*handler)(nil)
