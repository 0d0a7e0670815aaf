// Copyright (c) 2026 Book2Screen. All rights reserved.

// Command api is the entry point for the Book2Screen HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Initialize the session token service.
//  4. Wire in-memory stores and domain services.
//  5. Load the seed catalog.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/book2screen/book2screen/internal/admin"
	"github.com/book2screen/book2screen/internal/api"
	"github.com/book2screen/book2screen/internal/assistant"
	"github.com/book2screen/book2screen/internal/core/author"
	"github.com/book2screen/book2screen/internal/core/catalog"
	"github.com/book2screen/book2screen/internal/core/place"
	"github.com/book2screen/book2screen/internal/core/progress"
	"github.com/book2screen/book2screen/internal/core/review"
	"github.com/book2screen/book2screen/internal/platform/config"
	"github.com/book2screen/book2screen/internal/platform/constants"
	"github.com/book2screen/book2screen/internal/platform/sec"
	"github.com/book2screen/book2screen/internal/seed"
	"github.com/book2screen/book2screen/internal/users/session"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "book2screen"))
	slog.SetDefault(log)

	log.Info("[Book2Screen] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "book2screen"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for background workers (rate limiter cleanup). Cancelled
	// when main returns.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. Session Token Service ──────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	catalogStore := catalog.NewMemoryStore()
	authorStore := author.NewMemoryStore()
	reviewStore := review.NewMemoryStore()
	progressStore := progress.NewMemoryStore()
	sessionStore := session.NewStore()

	placeService := place.NewService(log)
	progressService := progress.NewService(progressStore, catalogStore, log)
	catalogService := catalog.NewService(catalogStore, progressService, log)
	authorService := author.NewService(authorStore, log)
	reviewService := review.NewService(reviewStore, log)
	sessionService := session.NewService(sessionStore, tokenService, cfg.AdminEmail, log)
	adminService := admin.NewService(catalogService, authorService, log)

	assistantClient := assistant.NewClient(cfg.AssistantBaseURL, cfg.AssistantModel, cfg.AssistantAPIKey, log)
	assistantService := assistant.NewService(assistantClient, log)

	// ── 5. Seed Data ──────────────────────────────────────────────────────
	seed.Load(rootCtx, seed.Stores{
		Catalog: catalogStore,
		Authors: authorStore,
		Reviews: reviewStore,
		Places:  placeService,
	}, log)

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCatalog: func() error {
			if catalogStore.CountAdaptations(context.Background()) == 0 {
				return fmt.Errorf("catalog store is empty")
			}
			return nil
		},
		CheckAssistant: func() error {
			if len(assistantService.Transcript(context.Background())) == 0 {
				return fmt.Errorf("assistant transcript not initialized")
			}
			return nil
		},
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Session:   session.NewHandler(sessionService),
		Catalog:   catalog.NewHandler(catalogService),
		Author:    author.NewHandler(authorService),
		Review:    review.NewHandler(reviewService),
		Progress:  progress.NewHandler(progressService),
		Place:     place.NewHandler(placeService),
		Admin:     admin.NewHandler(adminService),
		Assistant: assistant.NewHandler(assistantService),
	}

	server := api.NewServer(rootCtx, cfg, log, tokenService, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
