package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"oneday-todo/config"
	_ "oneday-todo/docs" // Swagger docs
	"oneday-todo/internal/httpserver"
	"oneday-todo/internal/middleware"
	"oneday-todo/pkg/log"
	pkgSqlite "oneday-todo/pkg/sqlite"
)

// @title       OneDay To-Do API
// @description Single-list to-do controller with a rendered view, live view updates and static web client delivery.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting OneDay To-Do API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Durable store
	db, err := pkgSqlite.Connect(ctx, cfg.Storage.SQLitePath)
	if err != nil {
		logger.Error(ctx, "Failed to open SQLite store: ", err)
		return
	}
	defer pkgSqlite.Disconnect(db)
	logger.Infof(ctx, "SQLite store: %s", cfg.Storage.SQLitePath)

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
		},
		Metrics:     registry,
		DB:          db,
		SnapshotKey: cfg.Storage.SnapshotKey,
		StaticRoot:  cfg.Static.Root,
		Gzip:        cfg.Static.Gzip,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
