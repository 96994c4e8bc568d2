// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package message

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/pkg/pagination"
)

// memoryRepository is an in-memory [Repository], newest first like the
// Postgres query.
type memoryRepository struct {
	messages []*Message
}

func (repo *memoryRepository) List(_ context.Context, params pagination.Params) ([]*Message, int, error) {
	total := len(repo.messages)
	start := params.Offset()
	if start >= total {
		return []*Message{}, total, nil
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return repo.messages[start:end], total, nil
}

func (repo *memoryRepository) Create(_ context.Context, m *Message) error {
	repo.messages = append([]*Message{m}, repo.messages...)
	return nil
}

func (repo *memoryRepository) UpdateStatus(_ context.Context, id, status string) (*Message, error) {
	for _, m := range repo.messages {
		if m.ID == id {
			m.Status = status
			return m, nil
		}
	}
	return nil, apperr.NotFound("Record")
}

func (repo *memoryRepository) Delete(_ context.Context, id string) error {
	for i, m := range repo.messages {
		if m.ID == id {
			repo.messages = append(repo.messages[:i], repo.messages[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Record")
}

func (repo *memoryRepository) Count(context.Context) (int, error) {
	return len(repo.messages), nil
}

func testService() (*Service, *memoryRepository) {
	repo := &memoryRepository{}
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func validSubmit() SubmitInput {
	return SubmitInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Contract inquiry",
		Message: "Are you available this fall?",
	}
}

/*
TestService_Submit covers the happy path and the validation gates of the
public contact form.
*/
func TestService_Submit(t *testing.T) {
	t.Run("stores_as_unread", func(t *testing.T) {
		service, repo := testService()

		m, err := service.Submit(context.Background(), validSubmit())
		require.NoError(t, err)

		assert.NotEmpty(t, m.ID)
		assert.Equal(t, StatusUnread, m.Status)
		assert.Len(t, repo.messages, 1)
	})

	t.Run("rejects_missing_fields", func(t *testing.T) {
		service, _ := testService()

		_, err := service.Submit(context.Background(), SubmitInput{Name: "Jane Doe"})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Len(t, ae.Details, 3) // email, subject, message
	})

	t.Run("rejects_malformed_email", func(t *testing.T) {
		service, _ := testService()

		input := validSubmit()
		input.Email = "jane-at-example"
		_, err := service.Submit(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_List verifies newest-first paging and the computed meta.
*/
func TestService_List(t *testing.T) {
	service, _ := testService()

	for _, subject := range []string{"first", "second", "third"} {
		input := validSubmit()
		input.Subject = subject
		_, err := service.Submit(context.Background(), input)
		require.NoError(t, err)
	}

	page, meta, err := service.List(context.Background(), pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Subject)
}

/*
TestService_SetStatus checks the allowed status set and the not-found rewrite.
*/
func TestService_SetStatus(t *testing.T) {
	service, _ := testService()

	m, err := service.Submit(context.Background(), validSubmit())
	require.NoError(t, err)

	updated, err := service.SetStatus(context.Background(), m.ID, StatusInput{Status: StatusRead})
	require.NoError(t, err)
	assert.Equal(t, StatusRead, updated.Status)

	_, err = service.SetStatus(context.Background(), m.ID, StatusInput{Status: "starred"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.SetStatus(context.Background(), "missing", StatusInput{Status: StatusArchived})
	require.Error(t, err)
	assert.Contains(t, apperr.As(err).Message, "Message")
}

/*
TestService_Delete checks removal and the not-found rewrite.
*/
func TestService_Delete(t *testing.T) {
	service, repo := testService()

	m, err := service.Submit(context.Background(), validSubmit())
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), m.ID))
	assert.Empty(t, repo.messages)

	err = service.Delete(context.Background(), m.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
