package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"oneday-todo/internal/middleware"
	"oneday-todo/internal/offline/worker"
	"oneday-todo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	serviceName string
	rateLimit   middleware.RateLimitConfig
	metrics     prometheus.Gatherer

	// Todo domain
	db          *sql.DB
	snapshotKey string

	// Static files
	staticRoot string
	gzip       bool

	// Offline proxy
	registration *worker.Registration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	ServiceName string
	RateLimit   middleware.RateLimitConfig
	Metrics     prometheus.Gatherer

	// Todo domain: enabled when DB is set.
	DB          *sql.DB
	SnapshotKey string

	// Static files: served for unmatched routes when StaticRoot is set.
	StaticRoot string
	Gzip       bool

	// Offline proxy: unmatched routes go through the registration.
	Registration *worker.Registration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		serviceName:  cfg.ServiceName,
		rateLimit:    cfg.RateLimit,
		metrics:      cfg.Metrics,
		db:           cfg.DB,
		snapshotKey:  cfg.SnapshotKey,
		staticRoot:   cfg.StaticRoot,
		gzip:         cfg.Gzip,
		registration: cfg.Registration,
	}
	if srv.serviceName == "" {
		srv.serviceName = ServiceName
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.registration != nil && srv.staticRoot != "" {
		return errors.New("static root and offline proxy are mutually exclusive")
	}
	return nil
}
