// Package server exposes the layout engine and preset store over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/thangdevalone/meeting-layout-grid/internal/config"
	"github.com/thangdevalone/meeting-layout-grid/pkg/buildinfo"
	"github.com/thangdevalone/meeting-layout-grid/pkg/pipeline"
	"github.com/thangdevalone/meeting-layout-grid/pkg/preset"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	runner  *pipeline.Runner
	presets preset.Store
	logger  *log.Logger
	cfg     config.Config
}

// New creates a server. A nil store disables the preset endpoints'
// persistence and falls back to an in-memory store.
func New(cfg config.Config, runner *pipeline.Runner, store preset.Store, logger *log.Logger) *Server {
	if store == nil {
		store = preset.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:  runner,
		presets: store,
		logger:  logger,
		cfg:     cfg,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleComputeLayout)
		r.Get("/layout/svg", s.handleLayoutSVG)
		s.registerPresetRoutes(r)
	})

	return r
}

// handleHealth reports service liveness.
// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// ctxKey is the type for context keys private to this package.
type ctxKey int

const requestIDKey ctxKey = iota

// requestID assigns each request a unique ID and echoes it in the
// X-Request-ID response header.
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

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// logRequests logs one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", requestIDFromContext(r.Context()))
	})
}
