// Copyright (c) 2026 Book2Screen. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/book2screen/book2screen/internal/admin"
	"github.com/book2screen/book2screen/internal/assistant"
	"github.com/book2screen/book2screen/internal/core/author"
	"github.com/book2screen/book2screen/internal/core/catalog"
	"github.com/book2screen/book2screen/internal/core/place"
	"github.com/book2screen/book2screen/internal/core/progress"
	"github.com/book2screen/book2screen/internal/core/review"
	"github.com/book2screen/book2screen/internal/platform/config"
	"github.com/book2screen/book2screen/internal/platform/constants"
	"github.com/book2screen/book2screen/internal/platform/middleware"
	"github.com/book2screen/book2screen/internal/users/session"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when the catalog is loaded.
	Readiness http.HandlerFunc

	// Session handles the mock login, logout, and profile routes.
	Session *session.Handler

	// Catalog handles adaptation browsing, detail, and recommendations.
	Catalog *catalog.Handler

	// Author handles the public author directory.
	Author *author.Handler

	// Review handles the global review ledger and per-item reviews.
	Review *review.Handler

	// Progress handles the reading and watching ledger.
	Progress *progress.Handler

	// Place handles the book sales map locations.
	Place *place.Handler

	// Admin handles the catalog and author editing pipeline.
	Admin *admin.Handler

	// Assistant handles the ScreenReader chat transcript.
	Assistant *assistant.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Session.Routes())
		api.Mount("/adaptations", h.Catalog.Routes(h.Review.ItemRoutes()))
		api.Mount("/authors", h.Author.Routes())
		api.Mount("/reviews", h.Review.Routes())
		api.Mount("/progress", h.Progress.Routes())
		api.Mount("/places", h.Place.Routes())
		api.Mount("/admin", h.Admin.Routes())
		api.Mount("/assistant", h.Assistant.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
