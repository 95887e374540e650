package httpserver

import (
	"context"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"oneday-todo/internal/middleware"
	"oneday-todo/internal/model"
	"oneday-todo/internal/static"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.RequestLogger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Environment: production")
	} else {
		srv.l.Infof(ctx, "Environment: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.metrics, promhttp.HandlerOpts{})))
	}

	if srv.registration == nil {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.db != nil {
		if err := srv.setupTodoDomain(ctx, api, mw); err != nil {
			return err
		}
	} else {
		srv.l.Infof(ctx, "Todo store not configured, skipping todo routes")
	}

	switch {
	case srv.registration != nil:
		srv.setupOfflineDomain(ctx)
	case srv.staticRoot != "":
		if err := srv.setupStatic(ctx); err != nil {
			return err
		}
	}

	return nil
}

// setupStatic serves the web client for every unmatched route.
func (srv HTTPServer) setupStatic(ctx context.Context) error {
	h, err := static.New(srv.l, srv.staticRoot)
	if err != nil {
		return err
	}

	handlers := []gin.HandlerFunc{h.Serve}
	if srv.gzip {
		handlers = append([]gin.HandlerFunc{gzip.Gzip(gzip.DefaultCompression)}, handlers...)
	}
	srv.gin.NoRoute(handlers...)

	srv.l.Infof(ctx, "Static files served from %s", h.Root())
	return nil
}
