// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

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

	"github.com/markrahimi/folio/internal/analytics"
	"github.com/markrahimi/folio/internal/content/blog"
	"github.com/markrahimi/folio/internal/content/certificate"
	"github.com/markrahimi/folio/internal/content/education"
	"github.com/markrahimi/folio/internal/content/experience"
	"github.com/markrahimi/folio/internal/content/project"
	"github.com/markrahimi/folio/internal/content/skill"
	"github.com/markrahimi/folio/internal/inbox/message"
	"github.com/markrahimi/folio/internal/media"
	"github.com/markrahimi/folio/internal/platform/config"
	"github.com/markrahimi/folio/internal/platform/constants"
	"github.com/markrahimi/folio/internal/platform/middleware"
	"github.com/markrahimi/folio/internal/site/about"
	"github.com/markrahimi/folio/internal/site/settings"
	"github.com/markrahimi/folio/internal/users/auth"
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

	// Auth handles login, refresh, logout, and account self-service.
	Auth *auth.Handler

	// About serves the about-page singleton.
	About *about.Handler

	// Settings serves the site-settings singleton.
	Settings *settings.Handler

	// Blog serves posts, public and admin.
	Blog *blog.Handler

	// Project serves the project portfolio.
	Project *project.Handler

	// Experience serves the work timeline.
	Experience *experience.Handler

	// Education serves the education timeline.
	Education *education.Handler

	// Skill serves the skill categories.
	Skill *skill.Handler

	// Certificate serves the certifications list.
	Certificate *certificate.Handler

	// Contact serves the public form and the admin inbox.
	Contact *message.Handler

	// Analytics serves view tracking and the admin stats rollup.
	Analytics *analytics.Handler

	// Media serves admin image uploads.
	Media *media.Handler
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
	// Public routes localize with ?lang=; the /api/admin group returns the
	// full bilingual documents for the CMS panel.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		api.Mount("/about", h.About.Routes())
		api.Mount("/settings", h.Settings.Routes())

		api.Mount("/blogs", h.Blog.Routes())
		api.Mount("/projects", h.Project.Routes())
		api.Mount("/experiences", h.Experience.Routes())
		api.Mount("/education", h.Education.Routes())
		api.Mount("/skills", h.Skill.Routes())
		api.Mount("/certificates", h.Certificate.Routes())

		api.Mount("/contact", h.Contact.Routes())
		api.Mount("/views", h.Analytics.ViewRoutes())
		api.Mount("/stats", h.Analytics.StatsRoutes())
		api.Mount("/upload", h.Media.Routes())

		api.Route("/admin", func(admin chi.Router) {
			admin.Mount("/blogs", h.Blog.AdminRoutes())
			admin.Mount("/projects", h.Project.AdminRoutes())
			admin.Mount("/experiences", h.Experience.AdminRoutes())
			admin.Mount("/education", h.Education.AdminRoutes())
			admin.Mount("/skills", h.Skill.AdminRoutes())
		})
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
