// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Why this matters
//
// Raw driver errors must never reach clients: a pgx error message can leak
// table names and query text. Every repository wraps its errors here so the
// handler layer only ever sees an [apperr.AppError].
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/markrahimi/folio/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string is carried in the wrapped cause for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations map to client-visible conflicts.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A document with this identifier already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.Conflict("Referenced document does not exist")
		}
	}

	// 3. Unknown query errors become opaque Internal Server Errors.
	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates a database failure with the repository action that
// produced it, for structured logging only.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }
func (e *actionError) Unwrap() error { return e.cause }
