// Package main is the entry point for the share-target service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http/handlers"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/notes"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/storage"
	"github.com/JAKimball/poc-pwa-share-target/internal/app"
	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
	"github.com/JAKimball/poc-pwa-share-target/internal/platform/config"
	"github.com/JAKimball/poc-pwa-share-target/internal/platform/logging"
	"github.com/JAKimball/poc-pwa-share-target/internal/platform/telemetry"
	"github.com/JAKimball/poc-pwa-share-target/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load and validate configuration (fail fast)
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 3. Telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Share log store
	store, err := storage.Open(ctx, storage.Config{
		Driver:   cfg.Store.Driver,
		Path:     cfg.Store.Path,
		Capacity: cfg.Store.Capacity,
	})
	if err != nil {
		return fmt.Errorf("opening share log: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("share log close error", slog.Any("error", closeErr))
		}
	}()

	logger.Info("share log opened",
		slog.String("driver", cfg.Store.Driver),
		slog.Int("capacity", store.Capacity()),
	)

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering share log health check: %w", err)
	}

	// 5. Application service
	shareService := app.NewShareService(app.ShareServiceConfig{
		Normalizer: domain.NewNormalizer(cfg.Share.StripSuffixes...),
		Store:      store,
		Notes:      notes.NewObsidian(cfg.Notes.Vault),
		Metrics:    app.NewMetrics(prometheus.DefaultRegisterer),
		Logger:     logger,
	})

	// 6. HTTP server and routes
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.Telemetry.ServiceName,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		ShareHandler:  handlers.NewShareHandler(shareService, cfg.Share.MaxFieldLength),
		LogHandler:    handlers.NewLogHandler(shareService),
		PageHandler: handlers.NewPageHandler(shareService, handlers.PageConfig{
			AppName:        cfg.App.Name,
			Vault:          cfg.Notes.Vault,
			CopyBeforeSend: cfg.Notes.CopyBeforeSend,
			SendDelay:      cfg.Notes.SendDelay,
			MaxFieldLength: cfg.Share.MaxFieldLength,
		}),
		Timeout: http.DefaultRequestTimeout,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal or a server error, then
// drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
