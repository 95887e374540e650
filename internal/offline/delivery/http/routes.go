package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the control endpoints. Everything else on the
// proxy goes through the registration itself.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/status", h.Status)
	rg.POST("/skip-waiting", h.SkipWaiting)
	rg.GET("/events", h.Events)
}
