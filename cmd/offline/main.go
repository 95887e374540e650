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
	"oneday-todo/internal/httpserver"
	"oneday-todo/internal/offline/cache"
	"oneday-todo/internal/offline/worker"
	"oneday-todo/pkg/log"
)

// main runs the offline cache worker as a caching proxy in front of the API.
//
//  1. Initialize config and logger (same as cmd/api/main.go)
//  2. Build cache storage, the upstream fetcher and the registration
//  3. Install and activate the configured worker version
//  4. Serve the proxy until shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting offline cache proxy...")
	logger.Infof(ctx, "Origin: %s", cfg.Offline.OriginURL)

	// Infrastructure
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := worker.NewMetrics(registry)

	upstream, err := worker.NewHTTPFetcher(cfg.Offline.OriginURL, cfg.Offline.FetchTimeout)
	if err != nil {
		logger.Error(ctx, "Invalid origin: ", err)
		return
	}

	storage := cache.NewStorage(cfg.Offline.MaxEntries)
	registration := worker.NewRegistration(logger, storage, upstream, metrics, cfg.Offline.InstallRetry)

	// Worker version
	workerCfg := worker.Config{
		Origin:      cfg.Offline.OriginURL,
		Prefix:      cfg.Offline.CachePrefix,
		Version:     cfg.Offline.CacheVersion,
		Assets:      cfg.Offline.Assets,
		ShellPath:   cfg.Offline.ShellPath,
		SkipWaiting: cfg.Offline.SkipWaiting,
	}
	if _, err := registration.Register(ctx, workerCfg); err != nil {
		logger.Warnf(ctx, "Initial install of %s failed, passing requests through until a retry succeeds: %v", workerCfg.CacheName(), err)
	}

	// HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.Offline.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ServiceName:  "oneday-offline",
		Metrics:      registry,
		Registration: registration,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run proxy: ", err)
		return
	}

	logger.Info(ctx, "Offline proxy stopped gracefully")
}
