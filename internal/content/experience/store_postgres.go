// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package experience

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

const experienceColumns = `id, company, role, type, duration, location, description, achievements, color, display_order, published, created_at, updated_at`

func scanExperience(row pgx.Row) (*Experience, error) {
	e := &Experience{}
	err := row.Scan(
		&e.ID, &e.Company, &e.Role, &e.Type, &e.Duration, &e.Location,
		&e.Description, &e.Achievements, &e.Color, &e.Order, &e.Published,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (repository *PostgresRepository) List(context context.Context, onlyPublished bool) ([]*Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences`
	if onlyPublished {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_experiences")
	}
	defer rows.Close()

	entries := []*Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_experience")
		}
		entries = append(entries, e)
	}

	return entries, dberr.Wrap(rows.Err(), "list_experiences")
}

func (repository *PostgresRepository) Find(context context.Context, id string) (*Experience, error) {
	e, err := scanExperience(repository.db.QueryRow(context,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_experience")
	}
	return e, nil
}

func (repository *PostgresRepository) Create(context context.Context, e *Experience) error {
	query := `
		INSERT INTO experiences (id, company, role, type, duration, location, description, achievements, color, display_order, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		e.ID, e.Company, e.Role, e.Type, e.Duration, e.Location,
		e.Description, e.Achievements, e.Color, e.Order, e.Published,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	return dberr.Wrap(err, "create_experience")
}

func (repository *PostgresRepository) Update(context context.Context, e *Experience) error {
	query := `
		UPDATE experiences
		SET company = $2, role = $3, type = $4, duration = $5, location = $6, description = $7,
		    achievements = $8, color = $9, display_order = $10, published = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		e.ID, e.Company, e.Role, e.Type, e.Duration, e.Location,
		e.Description, e.Achievements, e.Color, e.Order, e.Published,
	).Scan(&e.UpdatedAt)

	return dberr.Wrap(err, "update_experience")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_experience")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `SELECT count(*) FROM experiences`).Scan(&total)
	return total, dberr.Wrap(err, "count_experiences")
}
