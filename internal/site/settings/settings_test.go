// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package settings

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/pkg/i18n"
	"github.com/markrahimi/folio/pkg/pointer"
)

// memoryRepository is an in-memory [Repository] that bootstraps defaults
// the way the Postgres store does.
type memoryRepository struct {
	current *Settings
}

func (repo *memoryRepository) Get(context.Context) (*Settings, error) {
	if repo.current == nil {
		repo.current = Defaults()
	}
	return repo.current, nil
}

func (repo *memoryRepository) Put(_ context.Context, s *Settings) error {
	repo.current = s
	return nil
}

/*
TestDefaults checks both the tagged scalar defaults and the bilingual
fields filled by SetDefaults.
*/
func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, "Mark Rahimi", s.FullName)
	assert.Equal(t, "admin@markrahimi.com", s.Email)
	assert.Equal(t, "/cv.pdf", s.ResumeURL)

	assert.Equal(t, "Welcome", s.HeroGreeting.EN)
	assert.Equal(t, "Bienvenue", s.HeroGreeting.FR)
	assert.Equal(t, "Tous droits réservés", s.CopyrightText.FR)

	assert.NotEmpty(t, s.HeroBadges)
	assert.NotNil(t, s.MetaKeywords.EN)
	assert.NotNil(t, s.MetaKeywords.FR)

	// Optional scripts stay empty until an admin sets them.
	assert.Empty(t, s.GoogleAnalyticsID)
}

/*
TestService_Update covers the partial-update semantics: provided fields
replace, omitted fields survive, and the merged document is validated.
*/
func TestService_Update(t *testing.T) {
	newService := func() *Service {
		return NewService(&memoryRepository{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	t.Run("applies_only_provided_fields", func(t *testing.T) {
		service := newService()

		updated, err := service.Update(context.Background(), Input{
			FullName: pointer.To("Mark R."),
			Role:     &i18n.Text{EN: "Backend Engineer", FR: "Ingénieur Backend"},
			SocialLinks: &SocialLinks{
				GitHub: "https://github.com/markrahimi",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "Mark R.", updated.FullName)
		assert.Equal(t, "Ingénieur Backend", updated.Role.FR)
		assert.Equal(t, "https://github.com/markrahimi", updated.SocialLinks.GitHub)

		// Untouched defaults survive the merge.
		assert.Equal(t, "admin@markrahimi.com", updated.Email)
		assert.Equal(t, "Bienvenue", updated.HeroGreeting.FR)
	})

	t.Run("persists_across_reads", func(t *testing.T) {
		service := newService()

		_, err := service.Update(context.Background(), Input{
			HeroBadges: pointer.To([]string{"Go", "gRPC"}),
		})
		require.NoError(t, err)

		current, err := service.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "gRPC"}, current.HeroBadges)
	})

	t.Run("rejects_blank_full_name", func(t *testing.T) {
		service := newService()

		_, err := service.Update(context.Background(), Input{
			FullName: pointer.To(""),
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

		// The rejected write never reaches the served snapshot.
		current, err := service.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Mark Rahimi", current.FullName)
	})

	t.Run("rejects_malformed_email", func(t *testing.T) {
		service := newService()

		_, err := service.Update(context.Background(), Input{
			Email: pointer.To("not-an-email"),
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}
