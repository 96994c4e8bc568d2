// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package certificate

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

const certificateColumns = `id, name, issuer, issue_date, expiry_date, credential_id, credential_url, description, display_order, is_active, created_at, updated_at`

func scanCertificate(row pgx.Row) (*Certificate, error) {
	c := &Certificate{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Issuer, &c.IssueDate, &c.ExpiryDate, &c.CredentialID,
		&c.CredentialURL, &c.Description, &c.Order, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) List(context context.Context, onlyActive bool) ([]*Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_certificates")
	}
	defer rows.Close()

	certificates := []*Certificate{}
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_certificate")
		}
		certificates = append(certificates, c)
	}

	return certificates, dberr.Wrap(rows.Err(), "list_certificates")
}

func (repository *PostgresRepository) Find(context context.Context, id string) (*Certificate, error) {
	c, err := scanCertificate(repository.db.QueryRow(context,
		`SELECT `+certificateColumns+` FROM certificates WHERE id = $1`, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_certificate")
	}
	return c, nil
}

func (repository *PostgresRepository) Create(context context.Context, c *Certificate) error {
	query := `
		INSERT INTO certificates (id, name, issuer, issue_date, expiry_date, credential_id, credential_url, description, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID,
		c.CredentialURL, c.Description, c.Order, c.IsActive,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, "create_certificate")
}

func (repository *PostgresRepository) Update(context context.Context, c *Certificate) error {
	query := `
		UPDATE certificates
		SET name = $2, issuer = $3, issue_date = $4, expiry_date = $5, credential_id = $6,
		    credential_url = $7, description = $8, display_order = $9, is_active = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID,
		c.CredentialURL, c.Description, c.Order, c.IsActive,
	).Scan(&c.UpdatedAt)

	return dberr.Wrap(err, "update_certificate")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_certificate")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(context, `SELECT count(*) FROM certificates`).Scan(&total)
	return total, dberr.Wrap(err, "count_certificates")
}
