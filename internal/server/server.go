// Package server exposes a message catalog over HTTP: client bundles,
// server-side translation, number formatting and the override admin API.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lexicon/middlewares"
	"github.com/dmitrymomot/lexicon/pkg/health"
	"github.com/dmitrymomot/lexicon/pkg/logger"
	"github.com/dmitrymomot/lexicon/pkg/overrides"
)

// OverrideStore is the write side of the overrides repository.
type OverrideStore interface {
	List(ctx context.Context) ([]overrides.Override, error)
	Upsert(ctx context.Context, o overrides.Override) error
	Import(ctx context.Context, locale string, tree map[string]any) (int, error)
	Delete(ctx context.Context, locale, key string) error
}

// Server wires the HTTP routes around a Service.
type Server struct {
	svc            *Service
	log            *slog.Logger
	store          OverrideStore
	checks         health.Checks
	gate           *health.Gate
	adminToken     string
	corsOrigins    []string
	requestTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAdmin mounts the override admin routes behind a bearer token.
// Both a token and a store are required.
func WithAdmin(token string, store OverrideStore) Option {
	return func(s *Server) {
		s.adminToken = token
		s.store = store
	}
}

// WithReadinessCheck adds a named check to /health/ready.
func WithReadinessCheck(name string, fn health.CheckFunc) Option {
	return func(s *Server) {
		if fn != nil {
			s.checks[name] = fn
		}
	}
}

// WithGate makes readiness depend on gate being open.
func WithGate(gate *health.Gate) Option {
	return func(s *Server) {
		s.gate = gate
	}
}

// WithCORSOrigins sets the origins allowed to fetch bundles.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = origins
		}
	}
}

// WithRequestTimeout bounds /v1 requests.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

// New creates a Server for svc.
func New(svc *Service, opts ...Option) *Server {
	s := &Server{
		svc:            svc,
		log:            logger.NewNope(),
		checks:         health.Checks{},
		corsOrigins:    []string{"*"},
		requestTimeout: middlewares.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gate != nil {
		s.checks["startup"] = s.gate.Check
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		logRequests(s.log),
		middlewares.Recover(middlewares.WithRecoverLogger(s.log)),
		middlewares.CORS(middlewares.WithAllowOrigins(s.corsOrigins...)),
	)

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(s.checks, health.WithLogger(s.log)))

	r.Route("/v1", func(r chi.Router) {
		r.Use(
			middlewares.Timeout(s.requestTimeout),
			middlewares.Locale(s.svc.Catalog()),
		)

		r.Get("/locales", s.handleLocales)
		r.Get("/locales/{locale}/bundle.json", s.handleBundle)
		r.Get("/translate", s.handleTranslate)
		r.Get("/format/{kind}", s.handleFormat)

		if s.adminToken != "" && s.store != nil {
			r.Group(func(r chi.Router) {
				r.Use(middlewares.BearerToken(s.adminToken))
				r.Post("/reload", s.handleReload)
				r.Get("/overrides", s.handleListOverrides)
				r.Put("/overrides/{locale}", s.handleImportOverrides)
				r.Put("/overrides/{locale}/{key}", s.handleUpsertOverride)
				r.Delete("/overrides/{locale}/{key}", s.handleDeleteOverride)
			})
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})
	return r
}
