// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

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

	"github.com/uabcampos/fac-virtual-posters/internal/core/comment"
	"github.com/uabcampos/fac-virtual-posters/internal/core/poster"
	"github.com/uabcampos/fac-virtual-posters/internal/core/session"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/config"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/constants"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/middleware"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/sec"
	"github.com/uabcampos/fac-virtual-posters/internal/users/auth"
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

	// Auth handles moderator authentication (login, refresh, logout).
	Auth *auth.Handler

	// Poster handles the gallery, submissions, and poster moderation.
	Poster *poster.Handler

	// Comment handles the conversation panel and comment moderation.
	Comment *comment.Handler

	// Session handles session pages and lifecycle management.
	Session *session.Handler
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

	// # Public API
	// The visitor-facing surface carries no version prefix; routes are the
	// public contract of the poster site itself.
	r.Mount("/auth", h.Auth.Routes())
	r.Mount("/sessions", h.Session.Routes())
	r.Mount("/posters", h.Poster.Routes())
	r.Mount("/comments", h.Comment.Routes())
	r.Mount("/posters/{posterID}/comments", h.Comment.PosterRoutes())

	// # Moderation API
	// Everything under /admin requires at least the moderator role.
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleModerator))

		admin.Mount("/posters", h.Poster.AdminRoutes())
		admin.Mount("/comments", h.Comment.AdminRoutes())
		admin.Mount("/sessions", h.Session.AdminRoutes())
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
