// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

/*
Package auth implements the admin identity and session layer.

The portfolio has no public registration: accounts are provisioned from the
command line, and the API only ever authenticates them. Sessions are a pair of
a short-lived RS256 access token and an opaque refresh token stored (hashed)
in Redis with a sliding expiry.
*/
package auth

import (
	"time"

	"github.com/markrahimi/folio/internal/platform/sec"
)

// User is a provisioned account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// LoginResult bundles the authenticated user with their fresh tokens.
type LoginResult struct {
	User   *User     `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// LoginInput is the credential payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshInput carries the opaque refresh token.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordInput rotates the account password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
