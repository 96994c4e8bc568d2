// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Command admin provisions API accounts from the command line.
//
// The API has no registration endpoint: this tool is the only way accounts
// come into existence.
//
// Usage:
//
//	admin -name "Mark Rahimi" -email admin@markrahimi.com -password '...' [-role admin]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/markrahimi/folio/internal/platform/config"
	"github.com/markrahimi/folio/internal/platform/migration"
	pgstore "github.com/markrahimi/folio/internal/platform/postgres"
	"github.com/markrahimi/folio/internal/platform/sec"
	"github.com/markrahimi/folio/internal/users/auth"
)

func main() {
	name := flag.String("name", "", "display name of the account")
	email := flag.String("email", "", "login email (unique)")
	password := flag.String("password", "", "initial password (min 12 characters)")
	role := flag.String("role", string(sec.RoleAdmin), "account role: admin or user")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", "folio-admin"))

	if *name == "" || *email == "" || *password == "" {
		log.Error("name, email and password are required")
		flag.Usage()
		os.Exit(2)
	}

	accountRole := sec.Role(*role)
	if accountRole != sec.RoleAdmin && accountRole != sec.RoleUser {
		log.Error("invalid role", slog.String("role", *role))
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("connect to postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		log.Error("run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Provision never issues tokens, so the session and token deps stay nil.
	service := auth.NewService(auth.NewPostgresUserRepository(pool), nil, nil, log)

	user, err := service.Provision(ctx, *name, *email, *password, accountRole)
	if err != nil {
		log.Error("provision account", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("account created",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
		slog.String("role", string(user.Role)),
	)
}
