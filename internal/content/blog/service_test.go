// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package blog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/internal/platform/dberr"
	"github.com/markrahimi/folio/pkg/i18n"
	"github.com/markrahimi/folio/pkg/pointer"
)

// memoryRepository is an in-memory [Repository] for service tests.
type memoryRepository struct {
	posts map[int64]*Blog
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{posts: map[int64]*Blog{}}
}

func (repo *memoryRepository) List(_ context.Context, onlyPublished bool) ([]*Blog, error) {
	out := []*Blog{}
	for _, b := range repo.posts {
		if onlyPublished && !b.Published {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (repo *memoryRepository) Find(_ context.Context, id int64, onlyPublished bool) (*Blog, error) {
	b, ok := repo.posts[id]
	if !ok || (onlyPublished && !b.Published) {
		return nil, dberr.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (repo *memoryRepository) Create(_ context.Context, b *Blog) error {
	if _, exists := repo.posts[b.ID]; exists {
		return apperr.Conflict("duplicate id")
	}
	repo.posts[b.ID] = b
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, b *Blog) error {
	repo.posts[b.ID] = b
	return nil
}

func (repo *memoryRepository) Delete(_ context.Context, id int64) error {
	if _, ok := repo.posts[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.posts, id)
	return nil
}

func (repo *memoryRepository) Count(_ context.Context) (int, error) {
	return len(repo.posts), nil
}

func testService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validInput() Input {
	title := i18n.NewText("First Post", "Premier Article")
	excerpt := i18n.NewText("An excerpt", "Un extrait")
	content := i18n.NewText("Body", "Corps")
	return Input{
		ID:      pointer.To(int64(1)),
		Title:   &title,
		Excerpt: &excerpt,
		Content: &content,
		Image:   pointer.To("/blog/first.png"),
	}
}

/*
TestService_Create covers schema defaults and required-field validation.
*/
func TestService_Create(t *testing.T) {
	t.Run("applies_defaults", func(t *testing.T) {
		service := testService(newMemoryRepository())

		b, err := service.Create(context.Background(), validInput())
		require.NoError(t, err)

		assert.Equal(t, int64(1), b.ID)
		assert.True(t, b.Published)
		assert.False(t, b.Featured)
		assert.NotNil(t, b.Tags)
	})

	t.Run("missing_french_branch_fails", func(t *testing.T) {
		service := testService(newMemoryRepository())

		input := validInput()
		title := i18n.NewText("Only English", "")
		input.Title = &title

		_, err := service.Create(context.Background(), input)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Equal(t, "title.fr", ae.Details[0].Field)
	})

	t.Run("missing_id_fails", func(t *testing.T) {
		service := testService(newMemoryRepository())

		input := validInput()
		input.ID = nil

		_, err := service.Create(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_GetPublished verifies the language projection and draft hiding.
*/
func TestService_GetPublished(t *testing.T) {
	repo := newMemoryRepository()
	service := testService(repo)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	public, err := service.GetPublished(context.Background(), created.ID, i18n.LangFR)
	require.NoError(t, err)
	assert.Equal(t, "Premier Article", public.Title)
	assert.Equal(t, "Un extrait", public.Excerpt)

	// Unpublishing hides the post from the public read but not the admin one.
	_, err = service.Update(context.Background(), created.ID, Input{Published: pointer.To(false)})
	require.NoError(t, err)

	_, err = service.GetPublished(context.Background(), created.ID, i18n.LangEN)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.Get(context.Background(), created.ID)
	assert.NoError(t, err)
}

/*
TestService_Update checks the partial-update allow list.
*/
func TestService_Update(t *testing.T) {
	service := testService(newMemoryRepository())

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, Input{
		Category: pointer.To("go"),
	})
	require.NoError(t, err)

	assert.Equal(t, "go", updated.Category)
	assert.Equal(t, "First Post", updated.Title.EN, "untouched fields survive")
}

/*
TestService_Delete verifies the resource-specific 404 rewrite.
*/
func TestService_Delete(t *testing.T) {
	service := testService(newMemoryRepository())

	err := service.Delete(context.Background(), 42)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Contains(t, ae.Message, "Blog")
}
