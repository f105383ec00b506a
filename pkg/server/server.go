// Package server implements the read-only activity preview server: an HTML
// dashboard and a JSON API over a snapshot source, plus health and metrics
// endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/Sumatoshi-tech/activityviz/pkg/activity"
	"github.com/Sumatoshi-tech/activityviz/pkg/alg/lru"
	"github.com/Sumatoshi-tech/activityviz/pkg/observability"
	"github.com/Sumatoshi-tech/activityviz/pkg/plotpage"
	"github.com/Sumatoshi-tech/activityviz/pkg/snapshot"
)

// Defaults for zero-valued settings.
const (
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second
	DefaultCacheEntries    = 64
)

// ErrNoSource is returned by the served snapshot routes when no source is configured.
var ErrNoSource = errors.New("no snapshot source configured")

// Source yields the snapshot served at GET routes. It is called per request
// so edits to the underlying file show up on reload.
type Source func(ctx context.Context) (*snapshot.Snapshot, error)

// FileSource reads the snapshot at path on every call.
func FileSource(path string) Source {
	return func(_ context.Context) (*snapshot.Snapshot, error) {
		return snapshot.Load(path)
	}
}

// Deps holds the server's collaborators. Zero-value fields use defaults.
type Deps struct {
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *observability.REDMetrics

	// MetricsHandler is mounted at /metrics when non-nil.
	MetricsHandler http.Handler

	// Source backs GET / and GET /api/visualization. Nil disables them.
	Source Source

	Visualizer activity.Options
	Theme      plotpage.Theme
	Title      string

	MaxBodyBytes int64

	// CacheEntries bounds the visualization cache keyed by snapshot content.
	CacheEntries int
}

// Server serves activity visualizations over HTTP.
type Server struct {
	deps    Deps
	logger  *slog.Logger
	handler http.Handler
	cache   *lru.Cache[cacheKey, *activity.Visualization]
}

// New builds a server and its routes.
func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	if deps.Tracer == nil {
		deps.Tracer = noop.NewTracerProvider().Tracer("activityviz")
	}

	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if deps.Theme == "" {
		deps.Theme = plotpage.ThemeLight
	}

	if deps.CacheEntries <= 0 {
		deps.CacheEntries = DefaultCacheEntries
	}

	s := &Server{
		deps:   deps,
		logger: deps.Logger,
		cache:  lru.New[cacheKey, *activity.Visualization](deps.CacheEntries),
	}
	s.handler = s.routes()

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /{$}", s.handleIndex)
	api.HandleFunc("GET /api/visualization", s.handleGetVisualization)
	api.HandleFunc("POST /api/visualization", s.handlePostVisualization)
	api.HandleFunc("POST /api/render", s.handlePostRender)
	api.HandleFunc("GET /api/schema", s.handleSchema)

	traced := observability.HTTPMiddleware(s.deps.Tracer, s.deps.Metrics, annotateSpan(api))

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", observability.HealthHandler())
	mux.Handle("GET /readyz", observability.ReadyHandler(s.sourceReady))

	if s.deps.MetricsHandler != nil {
		mux.Handle("GET /metrics", s.deps.MetricsHandler)
	}

	mux.Handle("/", traced)

	return requestID(s.logger, mux)
}

func (s *Server) sourceReady(ctx context.Context) error {
	if s.deps.Source == nil {
		return nil
	}

	_, err := s.deps.Source(ctx)

	return err
}

// CacheStats reports visualization cache counters.
func (s *Server) CacheStats() lru.Stats {
	return s.cache.Stats()
}

// Timeouts configures the underlying http.Server.
type Timeouts struct {
	Read     time.Duration
	Write    time.Duration
	Idle     time.Duration
	Shutdown time.Duration
}

// Run listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, to Timeouts) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       to.Read,
		ReadHeaderTimeout: to.Read,
		WriteTimeout:      to.Write,
		IdleTimeout:       to.Idle,
	}

	if to.Shutdown <= 0 {
		to.Shutdown = DefaultShutdownTimeout
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.logger.InfoContext(ctx, "preview server listening", "addr", addr)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", addr, err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), to.Shutdown)
		defer cancel()

		s.logger.InfoContext(shutdownCtx, "preview server shutting down")

		err := httpServer.Shutdown(shutdownCtx)
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		return nil
	})

	return group.Wait()
}
