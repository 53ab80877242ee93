// Copyright (c) 2026 The Blog API Authors. All rights reserved.

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

	"github.com/ricardo-cavalheiro/web-api/internal/auth"
	"github.com/ricardo-cavalheiro/web-api/internal/category"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/config"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/constants"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/middleware"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/respond"
	"github.com/ricardo-cavalheiro/web-api/internal/platform/sec"
	"github.com/ricardo-cavalheiro/web-api/internal/post"
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

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles account registration, login, and profile image upload.
	Auth *auth.Handler

	// Category manages the post taxonomy.
	Category *category.Handler

	// Post serves the published article catalogue.
	Post *post.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, apiKeyGate *sec.APIKeyGate, h Handlers) *Server {
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

	// # Static Assets
	// Uploaded profile images are served straight from local disk.
	fileServer := http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.ImageDir)))
	r.Get("/images/*", fileServer.ServeHTTP)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/v1", func(api chi.Router) {
		// Operator status endpoint, gated by the shared API key rather
		// than a session token.
		api.With(middleware.RequireAPIKey(apiKeyGate, cfg.APIKeyHeader)).
			Get("/", statusHandler)

		api.Mount("/accounts", h.Auth.Routes())
		api.Mount("/categories", h.Category.Routes())
		api.Mount("/posts", h.Post.Routes())
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

// statusHandler handles GET /v1 (operator status, API-key gated).
func statusHandler(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		"service": constants.AppName,
		"version": constants.AppVersion,
	})
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
