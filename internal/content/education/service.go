// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package education

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

// ListPublished returns the published timeline projected to the given language.
func (service *Service) ListPublished(context context.Context, lang i18n.Lang) ([]*Public, error) {
	entries, err := service.repo.List(context, true)
	if err != nil {
		return nil, err
	}

	return slice.Map(entries, func(e *Education) *Public { return e.Localize(lang) }), nil
}

// ListAll returns every entry, drafts included, in full bilingual form.
func (service *Service) ListAll(context context.Context) ([]*Education, error) {
	return service.repo.List(context, false)
}

// Get returns one entry in full bilingual form.
func (service *Service) Get(context context.Context, id string) (*Education, error) {
	e, err := service.repo.Find(context, id)
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

// Create validates and persists a new entry.
func (service *Service) Create(context context.Context, input Input) (*Education, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldDegree, input.Degree == nil, "This field is required")
	validator.Custom(FieldInstitution, input.Institution == nil, "This field is required")
	validator.Custom(FieldStatus, input.Status == nil, "This field is required")
	if input.Degree != nil {
		validator.RequiredText(FieldDegree, *input.Degree)
	}
	if input.Institution != nil {
		validator.RequiredText(FieldInstitution, *input.Institution)
	}
	if input.Status != nil {
		validator.OneOf(FieldStatus, *input.Status, StatusOngoing, StatusCompleted)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	e := &Education{ID: uuid.New(), Published: true}
	input.apply(e)

	if err := service.repo.Create(context, e); err != nil {
		return nil, err
	}

	service.logger.Info("education_created", slog.String("education_id", e.ID))
	return e, nil
}

// Update replaces the provided fields of an existing entry.
func (service *Service) Update(context context.Context, id string, input Input) (*Education, error) {
	e, err := service.repo.Find(context, id)
	if err != nil {
		return nil, notFound(err)
	}

	input.apply(e)

	validator := &validate.Validator{}
	validator.RequiredText(FieldDegree, e.Degree).
		RequiredText(FieldInstitution, e.Institution).
		OneOf(FieldStatus, e.Status, StatusOngoing, StatusCompleted)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, e); err != nil {
		return nil, err
	}

	service.logger.Info("education_updated", slog.String("education_id", e.ID))
	return e, nil
}

// Delete hard-deletes an entry.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("education_deleted", slog.String("education_id", id))
	return nil
}

func notFound(err error) error {
	if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
		return apperr.NotFound("Education")
	}
	return err
}
