// Package app contains application services that orchestrate use cases.
// It coordinates the pure normalization in the domain layer with the share
// log store and the notes app through ports.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
	"github.com/JAKimball/poc-pwa-share-target/internal/platform/logging"
	"github.com/JAKimball/poc-pwa-share-target/internal/ports"
)

const tracerName = "github.com/JAKimball/poc-pwa-share-target/internal/app"

// ShareService handles incoming shares and the share log.
type ShareService struct {
	normalizer *domain.Normalizer
	store      ports.ShareLogStore
	notes      ports.NotesApp
	metrics    *Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// ShareServiceConfig contains the dependencies of the share service.
type ShareServiceConfig struct {
	// Normalizer defaults to one stripping domain.DefaultSiteSuffixes.
	Normalizer *domain.Normalizer

	// Store is the share log. Required.
	Store ports.ShareLogStore

	// Notes builds handoff URIs. Required.
	Notes ports.NotesApp

	// Metrics defaults to unregistered collectors.
	Metrics *Metrics

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// ShareResult is the outcome of handling one share.
type ShareResult struct {
	domain.NormalizedShare

	// DailyURI appends the markdown to today's daily note.
	DailyURI string

	// Logged reports whether the share was recorded in the log.
	Logged bool
}

// NewShareService creates a share service. It panics if Store or Notes is nil.
func NewShareService(cfg ShareServiceConfig) *ShareService {
	if cfg.Store == nil {
		panic("app: ShareServiceConfig.Store is required")
	}

	if cfg.Notes == nil {
		panic("app: ShareServiceConfig.Notes is required")
	}

	s := &ShareService{
		normalizer: cfg.Normalizer,
		store:      cfg.Store,
		notes:      cfg.Notes,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
		tracer:     otel.Tracer(tracerName),
		now:        cfg.Clock,
	}

	if s.normalizer == nil {
		s.normalizer = domain.NewNormalizer(domain.DefaultSiteSuffixes...)
	}

	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// Normalize normalizes in without logging it.
func (s *ShareService) Normalize(in domain.ShareInput) domain.NormalizedShare {
	return s.normalizer.Normalize(in)
}

// Share normalizes a share, records it in the log when any field was
// supplied, and returns the markdown with its handoff URI. Log failures are
// reported through logs and metrics only; the markdown is always returned.
func (s *ShareService) Share(ctx context.Context, in domain.ShareInput) *ShareResult {
	ctx, span := s.tracer.Start(ctx, "ShareService.Share")
	defer span.End()

	out := s.normalizer.Normalize(in)
	s.metrics.shareNormalized(linkSource(in, out))

	span.SetAttributes(
		attribute.Bool("share.has_url", out.URL != ""),
		attribute.Bool("share.has_data", in.HasData()),
	)

	result := &ShareResult{
		NormalizedShare: out,
		DailyURI:        s.notes.DailyAppendURI(out.Markdown),
	}

	if !in.HasData() {
		return result
	}

	if err := s.store.Append(ctx, domain.NewLogEntry(in, out, s.now())); err != nil {
		s.metrics.storeFailed("append")
		span.RecordError(err)
		s.loggerFor(ctx).WarnContext(ctx, "share log append failed",
			slog.Any("error", err),
		)

		return result
	}

	result.Logged = true

	s.loggerFor(ctx).DebugContext(ctx, "share logged",
		slog.String("final_url", out.URL),
		slog.String("final_title", out.Title),
	)

	return result
}

// List returns the share log, oldest first.
func (s *ShareService) List(ctx context.Context) ([]domain.LogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "ShareService.List")
	defer span.End()

	entries, err := s.store.List(ctx)
	if err != nil {
		s.metrics.storeFailed("list")
		span.SetStatus(codes.Error, err.Error())
		s.loggerFor(ctx).ErrorContext(ctx, "failed to read share log", slog.Any("error", err))

		return nil, err
	}

	span.SetAttributes(attribute.Int("share_log.entries", len(entries)))

	return entries, nil
}

// Clear removes every entry from the share log.
func (s *ShareService) Clear(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "ShareService.Clear")
	defer span.End()

	if err := s.store.Clear(ctx); err != nil {
		s.metrics.storeFailed("clear")
		span.SetStatus(codes.Error, err.Error())
		s.loggerFor(ctx).ErrorContext(ctx, "failed to clear share log", slog.Any("error", err))

		return err
	}

	s.loggerFor(ctx).InfoContext(ctx, "share log cleared")

	return nil
}

// OpenURI returns the URI that opens the notes app.
func (s *ShareService) OpenURI() string {
	return s.notes.OpenURI()
}

// loggerFor prefers the request-scoped logger carried in ctx.
func (s *ShareService) loggerFor(ctx context.Context) *slog.Logger {
	if l := logging.FromContextOrNil(ctx); l != nil {
		return l
	}

	return s.logger
}

func linkSource(in domain.ShareInput, out domain.NormalizedShare) string {
	switch {
	case in.URL != "":
		return linkSourceURLField
	case out.URL != "":
		return linkSourceText
	default:
		return linkSourceNone
	}
}
