// Package api implements the HTTP API for chart management.
//
// The server exposes a small REST surface under /v1:
//
//	POST   /v1/charts        create a chart (compute layout, persist)
//	GET    /v1/charts        list charts, newest first
//	GET    /v1/charts/{id}   fetch one chart with its layout
//	DELETE /v1/charts/{id}   delete a chart
//	GET    /v1/charts/{id}/svg  rendered SVG with cache headers
//	POST   /v1/layout        stateless layout computation
//	GET    /healthz          liveness probe
//
// Layout computation and rendering go through the pipeline Runner, so the
// server shares its cache with the CLI. Persistence is pluggable via
// [store.Store]: memory for development, MongoDB for deployments.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/JustBeyond/packedbubble/pkg/pipeline"
	"github.com/JustBeyond/packedbubble/pkg/store"
)

// Defaults for the HTTP server.
const (
	// DefaultAddr is the listen address when Options leaves it empty.
	DefaultAddr = ":8080"

	// DefaultRequestTimeout bounds each request, render work included.
	DefaultRequestTimeout = 30 * time.Second

	// shutdownTimeout bounds graceful shutdown once Start's context ends.
	shutdownTimeout = 10 * time.Second

	// maxBodyBytes bounds request bodies; datasets are small JSON documents.
	maxBodyBytes = 10 << 20
)

// Options configures a server. Zero values select working defaults, so
// api.NewServer(api.Options{}) yields a memory-backed server on :8080.
type Options struct {
	Addr           string
	Store          store.Store      // nil selects an in-memory store
	Runner         *pipeline.Runner // nil selects an uncached runner
	Logger         *log.Logger      // nil selects the default logger
	RequestTimeout time.Duration
}

// Server is the HTTP API server.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	http   *http.Server
}

// NewServer builds a server with its routes mounted.
func NewServer(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}

	s := &Server{
		store:  opts.Store,
		runner: opts.Runner,
		logger: opts.Logger,
	}
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.routes(opts.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the server's routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) routes(timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Route("/charts", func(r chi.Router) {
			r.Post("/", s.handleCreateChart)
			r.Get("/", s.handleListCharts)
			r.Get("/{id}", s.handleGetChart)
			r.Delete("/{id}", s.handleDeleteChart)
			r.Get("/{id}/svg", s.handleChartSVG)
		})
	})
	return r
}

// Start serves until ctx is canceled or the listener fails, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// ctxKey is the context key type for request-scoped values.
type ctxKey int

const requestIDKey ctxKey = 0

// RequestID returns the request's ID, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID assigns each request a UUID, echoed in the X-Request-ID header.
// A client-supplied X-Request-ID is kept so callers can correlate retries.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", RequestID(r.Context()))
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic in handler",
					"panic", rec,
					"path", r.URL.Path,
					"request_id", RequestID(r.Context()))
				writeJSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
