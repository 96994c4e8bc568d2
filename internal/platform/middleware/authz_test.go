// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markrahimi/folio/internal/platform/sec"
)

// stubVerifier accepts a single known token and rejects everything else.
type stubVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (v *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr != v.token {
		return nil, errors.New("signature mismatch")
	}
	return v.claims, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate covers the three header states: absent (anonymous pass),
malformed, and verified.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &stubVerifier{
		token:  "good-token",
		claims: &sec.AuthClaims{UserID: "u1", Role: string(sec.RoleAdmin)},
	}

	var seen *sec.AuthClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = GetUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(verifier)(inner)

	t.Run("no_header_is_anonymous", func(t *testing.T) {
		seen = nil
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, seen)
	})

	t.Run("malformed_header_is_rejected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Token abc")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("bad_token_is_rejected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer forged")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid_token_injects_claims", func(t *testing.T) {
		seen = nil
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", "Bearer good-token")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "u1", seen.UserID)
	})
}

/*
TestRequireAdmin checks the 401/403/200 split of the role gate. Requests
are built through Authenticate so the claims travel via the real context key.
*/
func TestRequireAdmin(t *testing.T) {
	serve := func(role string, authorization string) *httptest.ResponseRecorder {
		verifier := &stubVerifier{
			token:  "t",
			claims: &sec.AuthClaims{UserID: "u1", Role: role},
		}
		handler := Authenticate(verifier)(RequireAdmin(okHandler()))

		request := httptest.NewRequest(http.MethodDelete, "/api/admin/blogs/1", nil)
		if authorization != "" {
			request.Header.Set("Authorization", authorization)
		}

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("anonymous_gets_401", func(t *testing.T) {
		recorder := serve(string(sec.RoleAdmin), "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("plain_user_gets_403", func(t *testing.T) {
		recorder := serve(string(sec.RoleUser), "Bearer t")
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin_passes", func(t *testing.T) {
		recorder := serve(string(sec.RoleAdmin), "Bearer t")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

/*
TestRequireAuth verifies the gate blocks anonymous requests regardless of role.
*/
func TestRequireAuth(t *testing.T) {
	verifier := &stubVerifier{
		token:  "t",
		claims: &sec.AuthClaims{UserID: "u1", Role: string(sec.RoleUser)},
	}
	handler := Authenticate(verifier)(RequireAuth(okHandler()))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer t")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
