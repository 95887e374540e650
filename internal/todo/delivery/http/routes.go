package http

import (
	"oneday-todo/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route goes through the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	todos := rg.Group("/todos", mw.RateLimit())
	{
		todos.GET("", h.List)
		todos.POST("", h.Create)
		todos.POST("/dispatch", h.Dispatch)
		todos.POST("/clear-completed", h.ClearCompleted)
		todos.PATCH("/:id/toggle", h.Toggle)
		todos.PUT("/:id/text", h.UpdateText)
		todos.DELETE("/:id", h.Delete)
	}

	view := rg.Group("/view", mw.RateLimit())
	{
		view.GET("", h.View)
		view.GET("/html", h.ViewHTML)
		view.PUT("/filter", h.SetFilter)
		view.GET("/events", h.Events)
	}
}
