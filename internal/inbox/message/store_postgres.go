// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package message

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/markrahimi/folio/internal/platform/dberr"
	"github.com/markrahimi/folio/pkg/pagination"
)

// PostgresRepository implements [Repository] on a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const messageColumns = `id, name, email, subject, message, status, created_at, updated_at`

func scanMessage(row pgx.Row) (*Message, error) {
	m := &Message{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]*Message, int, error) {
	var total int
	if err := repository.db.QueryRow(context,
		`SELECT count(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_messages")
	}

	rows, err := repository.db.Query(context,
		`SELECT `+messageColumns+` FROM contact_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_messages")
	}
	defer rows.Close()

	messages := []*Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_message")
		}
		messages = append(messages, m)
	}

	return messages, total, dberr.Wrap(rows.Err(), "list_messages")
}

func (repository *PostgresRepository) Create(context context.Context, m *Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Status,
	).Scan(&m.CreatedAt, &m.UpdatedAt)

	return dberr.Wrap(err, "create_message")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id, status string) (*Message, error) {
	m, err := scanMessage(repository.db.QueryRow(context,
		`UPDATE contact_messages SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING `+messageColumns,
		id, status))
	if err != nil {
		return nil, dberr.Wrap(err, "update_message_status")
	}
	return m, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_message")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `SELECT count(*) FROM contact_messages`).Scan(&total)
	return total, dberr.Wrap(err, "count_messages")
}
