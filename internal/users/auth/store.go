// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package auth

import "context"

// UserRepository defines the data access contract for accounts.
type UserRepository interface {
	// FindByEmail returns the account with the given email.
	FindByEmail(context context.Context, email string) (*User, error)

	// FindByID returns the account with the given id.
	FindByID(context context.Context, id string) (*User, error)

	// Create persists a new account. Emails are unique.
	Create(context context.Context, user *User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(context context.Context, id, passwordHash string) error
}

// SessionStore defines the refresh-session contract.
//
// Sessions are keyed by the hash of the opaque refresh token; the stored
// value is the account id. Expiry is enforced by the store itself.
type SessionStore interface {
	// Save creates a session for the token hash.
	Save(context context.Context, tokenHash, userID string) error

	// Resolve returns the account id for a token hash, or an error if the
	// session is unknown or expired.
	Resolve(context context.Context, tokenHash string) (string, error)

	// Delete revokes one session. Deleting an unknown session is not an error.
	Delete(context context.Context, tokenHash string) error
}
