package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http/handlers"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http/middleware"
	"github.com/JAKimball/poc-pwa-share-target/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 10 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base request logger.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	ShareHandler  *handlers.ShareHandler
	LogHandler    *handlers.LogHandler
	PageHandler   *handlers.PageHandler

	// Timeout bounds API and page requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures middleware and routes on the Gin engine.
// Middleware runs in this order:
//  1. Recovery
//  2. Context logger
//  3. Request ID and correlation ID
//  4. OpenTelemetry tracing and HTTP metrics
//  5. Request logging (skips /-/ endpoints)
//  6. Timeout (share page and /api/v1 only)
//
// Routes:
//   - /-/: probes, build info and metrics
//   - /share, /manifest.webmanifest: the share-target page
//   - /api/v1/share, /api/v1/log: JSON API
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	timed := engine.Group("")
	if cfg.Timeout > 0 {
		timed.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.PageHandler != nil {
		cfg.PageHandler.RegisterRoutes(timed)
	}

	apiV1 := timed.Group("/api/v1")

	if cfg.ShareHandler != nil {
		cfg.ShareHandler.RegisterRoutes(apiV1)
	}

	if cfg.LogHandler != nil {
		cfg.LogHandler.RegisterRoutes(apiV1)
	}
}
