package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oneday-todo/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "OneDay to-do API"
	HealthVersion = "1.0.0"
	ServiceName   = "oneday-todo"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}

// readyCheck reports ready once the store answers and, on the proxy, a
// worker is in control.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.db != nil {
		if err := srv.db.PingContext(ctx); err != nil {
			srv.l.Warnf(ctx, "readyCheck: store unavailable: %v", err)
			srv.notReady(c, "store unavailable")
			return
		}
	}
	if srv.registration != nil && srv.registration.Active() == nil {
		srv.notReady(c, "no active offline worker")
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}

func (srv HTTPServer) notReady(c *gin.Context, reason string) {
	c.JSON(http.StatusServiceUnavailable, response.Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   reason,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}
