// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/internal/platform/dberr"
	"github.com/markrahimi/folio/internal/platform/sec"
)

type memoryUsers struct {
	byID map[string]*User
}

func (repo *memoryUsers) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range repo.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryUsers) FindByID(_ context.Context, id string) (*User, error) {
	if user, ok := repo.byID[id]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryUsers) Create(_ context.Context, user *User) error {
	repo.byID[user.ID] = user
	return nil
}

func (repo *memoryUsers) UpdatePassword(_ context.Context, id, passwordHash string) error {
	user, ok := repo.byID[id]
	if !ok {
		return dberr.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

type memorySessions struct {
	byHash map[string]string
}

func (store *memorySessions) Save(_ context.Context, tokenHash, userID string) error {
	store.byHash[tokenHash] = userID
	return nil
}

func (store *memorySessions) Resolve(_ context.Context, tokenHash string) (string, error) {
	if userID, ok := store.byHash[tokenHash]; ok {
		return userID, nil
	}
	return "", ErrSessionNotFound
}

func (store *memorySessions) Delete(_ context.Context, tokenHash string) error {
	delete(store.byHash, tokenHash)
	return nil
}

// staticTokens mints predictable access tokens for assertions.
type staticTokens struct{}

func (staticTokens) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

func newTestService(t *testing.T) (*Service, *memorySessions) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &memoryUsers{byID: map[string]*User{
		"u1": {
			ID:           "u1",
			Name:         "Mark Rahimi",
			Email:        "admin@markrahimi.com",
			PasswordHash: string(hash),
			Role:         sec.RoleAdmin,
		},
	}}
	sessions := &memorySessions{byHash: map[string]string{}}

	return NewService(users, sessions, staticTokens{}, slog.New(slog.NewTextHandler(io.Discard, nil))), sessions
}

/*
TestService_Login covers the credential check and anti-enumeration behavior.
*/
func TestService_Login(t *testing.T) {
	t.Run("success_opens_session", func(t *testing.T) {
		service, sessions := newTestService(t)

		result, err := service.Login(context.Background(), LoginInput{
			Email:    "admin@markrahimi.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)

		assert.Equal(t, "jwt-for-u1", result.Tokens.AccessToken)
		assert.NotEmpty(t, result.Tokens.RefreshToken)
		assert.Len(t, sessions.byHash, 1)

		// The raw refresh token is never the storage key.
		_, stored := sessions.byHash[result.Tokens.RefreshToken]
		assert.False(t, stored)
	})

	t.Run("wrong_password", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Login(context.Background(), LoginInput{
			Email:    "admin@markrahimi.com",
			Password: "nope",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("unknown_email_reads_the_same", func(t *testing.T) {
		service, _ := newTestService(t)

		_, wrongPassword := service.Login(context.Background(), LoginInput{
			Email: "admin@markrahimi.com", Password: "nope"})
		_, unknownEmail := service.Login(context.Background(), LoginInput{
			Email: "ghost@markrahimi.com", Password: "nope"})

		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})
}

/*
TestService_Refresh verifies rotation: the old token dies with each use.
*/
func TestService_Refresh(t *testing.T) {
	service, sessions := newTestService(t)

	login, err := service.Login(context.Background(), LoginInput{
		Email:    "admin@markrahimi.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	refreshed, err := service.Refresh(context.Background(), RefreshInput{
		RefreshToken: login.Tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.RefreshToken, refreshed.Tokens.RefreshToken)
	assert.Len(t, sessions.byHash, 1, "old session revoked, one new session")

	// Replaying the consumed token must fail.
	_, err = service.Refresh(context.Background(), RefreshInput{
		RefreshToken: login.Tokens.RefreshToken,
	})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_Logout checks session revocation.
*/
func TestService_Logout(t *testing.T) {
	service, sessions := newTestService(t)

	login, err := service.Login(context.Background(), LoginInput{
		Email:    "admin@markrahimi.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), RefreshInput{
		RefreshToken: login.Tokens.RefreshToken,
	}))
	assert.Empty(t, sessions.byHash)

	// Logging out without a token is a no-op, not an error.
	assert.NoError(t, service.Logout(context.Background(), RefreshInput{}))
}

/*
TestService_ChangePassword covers the current-password gate and length rule.
*/
func TestService_ChangePassword(t *testing.T) {
	service, _ := newTestService(t)

	err := service.ChangePassword(context.Background(), "u1", ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "a-long-enough-password",
	})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	err = service.ChangePassword(context.Background(), "u1", ChangePasswordInput{
		CurrentPassword: "correct-horse-battery",
		NewPassword:     "short",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	err = service.ChangePassword(context.Background(), "u1", ChangePasswordInput{
		CurrentPassword: "correct-horse-battery",
		NewPassword:     "a-long-enough-password",
	})
	require.NoError(t, err)

	// The new credential works.
	_, err = service.Login(context.Background(), LoginInput{
		Email:    "admin@markrahimi.com",
		Password: "a-long-enough-password",
	})
	assert.NoError(t, err)
}
