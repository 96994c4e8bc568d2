// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package education

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markrahimi/folio/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const educationColumns = `id, degree, status, institution, location, year, courses, color, display_order, published, created_at, updated_at`

func scanEducation(row pgx.Row) (*Education, error) {
	e := &Education{}
	err := row.Scan(
		&e.ID, &e.Degree, &e.Status, &e.Institution, &e.Location, &e.Year,
		&e.Courses, &e.Color, &e.Order, &e.Published, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (repository *PostgresRepository) List(context context.Context, onlyPublished bool) ([]*Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education`
	if onlyPublished {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_education")
	}
	defer rows.Close()

	entries := []*Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_education")
		}
		entries = append(entries, e)
	}

	return entries, dberr.Wrap(rows.Err(), "list_education")
}

func (repository *PostgresRepository) Find(context context.Context, id string) (*Education, error) {
	e, err := scanEducation(repository.db.QueryRow(context,
		`SELECT `+educationColumns+` FROM education WHERE id = $1`, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_education")
	}
	return e, nil
}

func (repository *PostgresRepository) Create(context context.Context, e *Education) error {
	query := `
		INSERT INTO education (id, degree, status, institution, location, year, courses, color, display_order, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		e.ID, e.Degree, e.Status, e.Institution, e.Location, e.Year,
		e.Courses, e.Color, e.Order, e.Published,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	return dberr.Wrap(err, "create_education")
}

func (repository *PostgresRepository) Update(context context.Context, e *Education) error {
	query := `
		UPDATE education
		SET degree = $2, status = $3, institution = $4, location = $5, year = $6,
		    courses = $7, color = $8, display_order = $9, published = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		e.ID, e.Degree, e.Status, e.Institution, e.Location, e.Year,
		e.Courses, e.Color, e.Order, e.Published,
	).Scan(&e.UpdatedAt)

	return dberr.Wrap(err, "update_education")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_education")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `SELECT count(*) FROM education`).Scan(&total)
	return total, dberr.Wrap(err, "count_education")
}
