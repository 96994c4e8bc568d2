// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package skill

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

const skillColumns = `id, title, skills, color, display_order, published, created_at, updated_at`

func scanSkill(row pgx.Row) (*Skill, error) {
	s := &Skill{}
	err := row.Scan(
		&s.ID, &s.Title, &s.Skills, &s.Color, &s.Order, &s.Published,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) List(context context.Context, onlyPublished bool) ([]*Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills`
	if onlyPublished {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_skills")
	}
	defer rows.Close()

	categories := []*Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_skill")
		}
		categories = append(categories, s)
	}

	return categories, dberr.Wrap(rows.Err(), "list_skills")
}

func (repository *PostgresRepository) Find(context context.Context, id string) (*Skill, error) {
	s, err := scanSkill(repository.db.QueryRow(context,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_skill")
	}
	return s, nil
}

func (repository *PostgresRepository) Create(context context.Context, s *Skill) error {
	query := `
		INSERT INTO skills (id, title, skills, color, display_order, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		s.ID, s.Title, s.Skills, s.Color, s.Order, s.Published,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	return dberr.Wrap(err, "create_skill")
}

func (repository *PostgresRepository) Update(context context.Context, s *Skill) error {
	query := `
		UPDATE skills
		SET title = $2, skills = $3, color = $4, display_order = $5, published = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		s.ID, s.Title, s.Skills, s.Color, s.Order, s.Published,
	).Scan(&s.UpdatedAt)

	return dberr.Wrap(err, "update_skill")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_skill")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `SELECT count(*) FROM skills`).Scan(&total)
	return total, dberr.Wrap(err, "count_skills")
}
