package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	offlineHTTP "oneday-todo/internal/offline/delivery/http"
)

// OfflineControlPrefix is where the registration's control routes live on
// the proxy.
const OfflineControlPrefix = "/__offline"

// setupOfflineDomain mounts the control routes and sends every other
// request through the active worker.
func (srv HTTPServer) setupOfflineDomain(ctx context.Context) {
	h := offlineHTTP.New(srv.l, srv.registration)
	offlineHTTP.RegisterRoutes(srv.gin.Group(OfflineControlPrefix), h)

	srv.gin.NoRoute(gin.WrapH(srv.registration))

	srv.l.Infof(ctx, "Offline proxy registered")
}
