// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package blog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markrahimi/folio/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a pgx connection pool.
//
// Bilingual fields live in JSONB columns; pgx marshals the Localized structs
// through its JSON codec on both read and write paths.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const blogColumns = `id, title, excerpt, content, image, date, read_time, category, tags, color, featured, published, created_at, updated_at`

func scanBlog(row pgx.Row) (*Blog, error) {
	b := &Blog{}
	err := row.Scan(
		&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Image, &b.Date, &b.ReadTime,
		&b.Category, &b.Tags, &b.Color, &b.Featured, &b.Published, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (repository *PostgresRepository) List(context context.Context, onlyPublished bool) ([]*Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`
	if onlyPublished {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_blogs")
	}
	defer rows.Close()

	posts := []*Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_blog")
		}
		posts = append(posts, b)
	}

	return posts, dberr.Wrap(rows.Err(), "list_blogs")
}

func (repository *PostgresRepository) Find(context context.Context, id int64, onlyPublished bool) (*Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`
	if onlyPublished {
		query += ` AND published = TRUE`
	}

	b, err := scanBlog(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_blog")
	}
	return b, nil
}

func (repository *PostgresRepository) Create(context context.Context, b *Blog) error {
	query := `
		INSERT INTO blogs (id, title, excerpt, content, image, date, read_time, category, tags, color, featured, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		b.ID, b.Title, b.Excerpt, b.Content, b.Image, b.Date, b.ReadTime,
		b.Category, b.Tags, b.Color, b.Featured, b.Published,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	return dberr.Wrap(err, "create_blog")
}

func (repository *PostgresRepository) Update(context context.Context, b *Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, excerpt = $3, content = $4, image = $5, date = $6, read_time = $7,
		    category = $8, tags = $9, color = $10, featured = $11, published = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		b.ID, b.Title, b.Excerpt, b.Content, b.Image, b.Date, b.ReadTime,
		b.Category, b.Tags, b.Color, b.Featured, b.Published,
	).Scan(&b.UpdatedAt)

	return dberr.Wrap(err, "update_blog")
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `SELECT count(*) FROM blogs`).Scan(&total)
	return total, dberr.Wrap(err, "count_blogs")
}
