// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markrahimi/folio/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a single fixed-key row.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Get(context context.Context) (*Settings, error) {
	s, err := repository.get(context)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, dberr.Wrap(err, "get_settings")
	}

	_, err = repository.db.Exec(context,
		`INSERT INTO site_settings (id, data) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
		Defaults())
	if err != nil {
		return nil, dberr.Wrap(err, "bootstrap_settings")
	}

	s, err = repository.get(context)
	return s, dberr.Wrap(err, "get_settings")
}

func (repository *PostgresRepository) get(context context.Context) (*Settings, error) {
	s := &Settings{}
	err := repository.db.QueryRow(context,
		`SELECT data, created_at, updated_at FROM site_settings WHERE id = 1`,
	).Scan(s, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) Put(context context.Context, s *Settings) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO site_settings (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
		RETURNING created_at, updated_at
	`, s).Scan(&s.CreatedAt, &s.UpdatedAt)

	return dberr.Wrap(err, "put_settings")
}
