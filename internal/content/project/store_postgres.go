// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package project

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

const projectColumns = `id, title, subtitle, description, long_description, image, tags, github, demo, date, category, color, features, challenges, tech_stack, metrics, published, created_at, updated_at`

func scanProject(row pgx.Row) (*Project, error) {
	p := &Project{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Subtitle, &p.Description, &p.LongDescription, &p.Image,
		&p.Tags, &p.GitHub, &p.Demo, &p.Date, &p.Category, &p.Color,
		&p.Features, &p.Challenges, &p.TechStack, &p.Metrics,
		&p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) List(context context.Context, onlyPublished bool) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if onlyPublished {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	projects := []*Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_project")
		}
		projects = append(projects, p)
	}

	return projects, dberr.Wrap(rows.Err(), "list_projects")
}

func (repository *PostgresRepository) Find(context context.Context, id string, onlyPublished bool) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	if onlyPublished {
		query += ` AND published = TRUE`
	}

	p, err := scanProject(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_project")
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, p *Project) error {
	query := `
		INSERT INTO projects (id, title, subtitle, description, long_description, image, tags, github, demo, date, category, color, features, challenges, tech_stack, metrics, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		p.ID, p.Title, p.Subtitle, p.Description, p.LongDescription, p.Image,
		p.Tags, p.GitHub, p.Demo, p.Date, p.Category, p.Color,
		p.Features, p.Challenges, p.TechStack, p.Metrics, p.Published,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "create_project")
}

func (repository *PostgresRepository) Update(context context.Context, p *Project) error {
	query := `
		UPDATE projects
		SET title = $2, subtitle = $3, description = $4, long_description = $5, image = $6,
		    tags = $7, github = $8, demo = $9, date = $10, category = $11, color = $12,
		    features = $13, challenges = $14, tech_stack = $15, metrics = $16, published = $17,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		p.ID, p.Title, p.Subtitle, p.Description, p.LongDescription, p.Image,
		p.Tags, p.GitHub, p.Demo, p.Date, p.Category, p.Color,
		p.Features, p.Challenges, p.TechStack, p.Metrics, p.Published,
	).Scan(&p.UpdatedAt)

	return dberr.Wrap(err, "update_project")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_project")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `SELECT count(*) FROM projects`).Scan(&total)
	return total, dberr.Wrap(err, "count_projects")
}
