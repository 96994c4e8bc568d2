// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package skill

import (
	"context"
	"log/slog"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/internal/platform/validate"
	"github.com/markrahimi/folio/pkg/i18n"
	"github.com/markrahimi/folio/pkg/slice"
	"github.com/markrahimi/folio/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListPublished returns the published categories projected to the given language.
func (service *Service) ListPublished(context context.Context, lang i18n.Lang) ([]*Public, error) {
	categories, err := service.repo.List(context, true)
	if err != nil {
		return nil, err
	}

	return slice.Map(categories, func(s *Skill) *Public { return s.Localize(lang) }), nil
}

// ListAll returns every category, drafts included, in full bilingual form.
func (service *Service) ListAll(context context.Context) ([]*Skill, error) {
	return service.repo.List(context, false)
}

// Get returns one category in full bilingual form.
func (service *Service) Get(context context.Context, id string) (*Skill, error) {
	s, err := service.repo.Find(context, id)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Create validates and persists a new category.
func (service *Service) Create(context context.Context, input Input) (*Skill, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldTitle, input.Title == nil, "This field is required")
	validator.Custom(FieldSkills, input.Skills == nil || len(*input.Skills) == 0, "This field is required")
	if input.Title != nil {
		validator.RequiredText(FieldTitle, *input.Title)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	s := &Skill{ID: uuid.New(), Skills: []string{}, Published: true}
	input.apply(s)

	if err := service.repo.Create(context, s); err != nil {
		return nil, err
	}

	service.logger.Info("skill_created", slog.String("skill_id", s.ID))
	return s, nil
}

// Update replaces the provided fields of an existing category.
func (service *Service) Update(context context.Context, id string, input Input) (*Skill, error) {
	s, err := service.repo.Find(context, id)
	if err != nil {
		return nil, notFound(err)
	}

	input.apply(s)

	validator := &validate.Validator{}
	validator.RequiredText(FieldTitle, s.Title).
		Custom(FieldSkills, len(s.Skills) == 0, "This field is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, s); err != nil {
		return nil, err
	}

	service.logger.Info("skill_updated", slog.String("skill_id", s.ID))
	return s, nil
}

// Delete hard-deletes a category.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("skill_deleted", slog.String("skill_id", id))
	return nil
}

func notFound(err error) error {
	if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
		return apperr.NotFound("Skill")
	}
	return err
}
