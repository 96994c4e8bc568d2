// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package analytics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markrahimi/folio/internal/platform/dberr"
)

// PostgresViewRepository implements [ViewRepository] on a pgx connection pool.
type PostgresViewRepository struct {
	db *pgxpool.Pool
}

func NewPostgresViewRepository(db *pgxpool.Pool) *PostgresViewRepository {
	return &PostgresViewRepository{db: db}
}

func (repository *PostgresViewRepository) Increment(context context.Context, page string) (int64, error) {
	var count int64
	err := repository.db.QueryRow(context, `
		INSERT INTO page_views (page, count) VALUES ($1, 1)
		ON CONFLICT (page) DO UPDATE SET count = page_views.count + 1, updated_at = NOW()
		RETURNING count
	`, page).Scan(&count)

	return count, dberr.Wrap(err, "increment_view")
}

func (repository *PostgresViewRepository) All(context context.Context) ([]PageView, error) {
	rows, err := repository.db.Query(context,
		`SELECT page, count FROM page_views ORDER BY count DESC, page ASC`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_views")
	}
	defer rows.Close()

	views := []PageView{}
	for rows.Next() {
		var v PageView
		if err := rows.Scan(&v.Page, &v.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_view")
		}
		views = append(views, v)
	}

	return views, dberr.Wrap(rows.Err(), "list_views")
}

func (repository *PostgresViewRepository) Total(context context.Context) (int64, error) {
	var total int64
	err := repository.db.QueryRow(context,
		`SELECT COALESCE(SUM(count), 0) FROM page_views`).Scan(&total)
	return total, dberr.Wrap(err, "total_views")
}
