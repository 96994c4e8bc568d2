// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Command api is the entry point for the Folio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/markrahimi/folio/internal/analytics"
	"github.com/markrahimi/folio/internal/api"
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
	"github.com/markrahimi/folio/internal/platform/migration"
	pgstore "github.com/markrahimi/folio/internal/platform/postgres"
	redisstore "github.com/markrahimi/folio/internal/platform/redis"
	"github.com/markrahimi/folio/internal/platform/sec"
	"github.com/markrahimi/folio/internal/site/about"
	"github.com/markrahimi/folio/internal/site/settings"
	"github.com/markrahimi/folio/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "folio"))
	slog.SetDefault(log)

	log.Info("[Folio] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env is optional; production injects real environment variables.
	if err := godotenv.Load(); err == nil {
		log.Info("dotenv_loaded")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "folio"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepo := auth.NewPostgresUserRepository(pool)
	sessionStore := auth.NewRedisSessionStore(rdb)
	authService := auth.NewService(userRepo, sessionStore, jwtSvc, log)

	aboutService := about.NewService(about.NewPostgresRepository(pool), log)
	settingsService := settings.NewService(settings.NewPostgresRepository(pool), log)

	// Singletons are served from a process snapshot; load them now so the
	// first public request never pays the bootstrap cost.
	must(log, aboutService.Warm(startupCtx), "load about document")
	must(log, settingsService.Warm(startupCtx), "load site settings")

	blogRepo := blog.NewPostgresRepository(pool)
	blogService := blog.NewService(blogRepo, log)
	projectRepo := project.NewPostgresRepository(pool)
	projectService := project.NewService(projectRepo, log)
	experienceRepo := experience.NewPostgresRepository(pool)
	experienceService := experience.NewService(experienceRepo, log)
	educationRepo := education.NewPostgresRepository(pool)
	educationService := education.NewService(educationRepo, log)
	skillRepo := skill.NewPostgresRepository(pool)
	skillService := skill.NewService(skillRepo, log)
	certificateRepo := certificate.NewPostgresRepository(pool)
	certificateService := certificate.NewService(certificateRepo, log)

	messageRepo := message.NewPostgresRepository(pool)
	messageService := message.NewService(messageRepo, log)

	analyticsService := analytics.NewService(
		analytics.NewPostgresViewRepository(pool),
		analytics.Counters{
			Projects:     projectRepo,
			Blogs:        blogRepo,
			Messages:     messageRepo,
			Experiences:  experienceRepo,
			Education:    educationRepo,
			Skills:       skillRepo,
			Certificates: certificateRepo,
		},
		log,
	)

	mediaService, err := media.NewService(cfg.CloudinaryURL, log)
	must(log, err, "initialize media service")

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        auth.NewHandler(authService),
		About:       about.NewHandler(aboutService),
		Settings:    settings.NewHandler(settingsService),
		Blog:        blog.NewHandler(blogService),
		Project:     project.NewHandler(projectService),
		Experience:  experience.NewHandler(experienceService),
		Education:   education.NewHandler(educationService),
		Skill:       skill.NewHandler(skillService),
		Certificate: certificate.NewHandler(certificateService),
		Contact:     message.NewHandler(messageService),
		Analytics:   analytics.NewHandler(analyticsService),
		Media:       media.NewHandler(mediaService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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
