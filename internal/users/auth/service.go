// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/internal/platform/constants"
	"github.com/markrahimi/folio/internal/platform/sec"
	"github.com/markrahimi/folio/internal/platform/validate"
	"github.com/markrahimi/folio/pkg/uuid"
)

// TokenProvider mints access tokens. Satisfied by [sec.TokenService].
type TokenProvider interface {
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

type Service struct {
	users    UserRepository
	sessions SessionStore
	tokens   TokenProvider
	logger   *slog.Logger
}

func NewService(users UserRepository, sessions SessionStore, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{users: users, sessions: sessions, tokens: tokens, logger: logger}
}

// Login verifies credentials and opens a session.
//
// Unknown email and wrong password produce the same error so the endpoint
// cannot be used to probe which accounts exist.
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	validator := &validate.Validator{}
	validator.Required("email", input.Email).Required("password", input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.users.FindByEmail(context, input.Email)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	tokens, err := service.issueTokens(context, user)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))
	return &LoginResult{User: user, Tokens: *tokens}, nil
}

// Refresh rotates a session: the presented refresh token is revoked and a
// fresh pair is issued, so a stolen token is single-use at most.
func (service *Service) Refresh(context context.Context, input RefreshInput) (*LoginResult, error) {
	if input.RefreshToken == "" {
		return nil, apperr.Unauthorized("Refresh token required")
	}

	tokenHash := sec.HashToken(input.RefreshToken)

	userID, err := service.sessions.Resolve(context, tokenHash)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, apperr.Unauthorized("Session expired")
		}
		return nil, apperr.Internal(err)
	}

	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Session expired")
	}

	if err := service.sessions.Delete(context, tokenHash); err != nil {
		return nil, apperr.Internal(err)
	}

	tokens, err := service.issueTokens(context, user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Tokens: *tokens}, nil
}

// Logout revokes the presented refresh session.
func (service *Service) Logout(context context.Context, input RefreshInput) error {
	if input.RefreshToken == "" {
		return nil
	}

	if err := service.sessions.Delete(context, sec.HashToken(input.RefreshToken)); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Me returns the account behind an authenticated request.
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	user, err := service.users.FindByID(context, userID)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return nil, apperr.Unauthorized("Account no longer exists")
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password and stores a new hash.
// Existing sessions stay valid; only the credential changes.
func (service *Service) ChangePassword(context context.Context, userID string, input ChangePasswordInput) error {
	validator := &validate.Validator{}
	validator.Required("currentPassword", input.CurrentPassword).
		Required("newPassword", input.NewPassword).
		MinLen("newPassword", input.NewPassword, 12)
	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := service.users.UpdatePassword(context, userID, string(hash)); err != nil {
		return err
	}

	service.logger.Info("password_changed", slog.String("user_id", userID))
	return nil
}

// Provision creates an account. Not exposed over HTTP; the admin CLI calls it.
func (service *Service) Provision(context context.Context, name, email, password string, role sec.Role) (*User, error) {
	validator := &validate.Validator{}
	validator.Required("name", name).
		Email("email", email).
		MinLen("password", password, 12)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_provisioned",
		slog.String("user_id", user.ID), slog.String("role", string(role)))
	return user, nil
}

func (service *Service) issueTokens(context context.Context, user *User) (*TokenPair, error) {
	accessToken, err := service.tokens.GenerateAccessToken(
		user.ID, user.Email, string(user.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refreshToken, err := sec.GenerateSecureToken(constants.RefreshTokenBytes)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.sessions.Save(context, sec.HashToken(refreshToken), user.ID); err != nil {
		return nil, apperr.Internal(err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(constants.AccessTokenTTL.Seconds()),
	}, nil
}
