// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package about

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markrahimi/folio/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a single fixed-key row.
//
// The table has an id column constrained to 1, so concurrent bootstraps
// collapse into one row via ON CONFLICT DO NOTHING.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Get(context context.Context) (*About, error) {
	a, err := repository.get(context)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, dberr.Wrap(err, "get_about")
	}

	_, err = repository.db.Exec(context,
		`INSERT INTO site_about (id, data) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
		Defaults())
	if err != nil {
		return nil, dberr.Wrap(err, "bootstrap_about")
	}

	a, err = repository.get(context)
	return a, dberr.Wrap(err, "get_about")
}

func (repository *PostgresRepository) get(context context.Context) (*About, error) {
	a := &About{}
	err := repository.db.QueryRow(context,
		`SELECT data, created_at, updated_at FROM site_about WHERE id = 1`,
	).Scan(a, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) Put(context context.Context, a *About) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO site_about (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
		RETURNING created_at, updated_at
	`, a).Scan(&a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "put_about")
}
