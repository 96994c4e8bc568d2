// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package experience

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

	return slice.Map(entries, func(e *Experience) *Public { return e.Localize(lang) }), nil
}

// ListAll returns every entry, drafts included, in full bilingual form.
func (service *Service) ListAll(context context.Context) ([]*Experience, error) {
	return service.repo.List(context, false)
}

// Get returns one entry in full bilingual form.
func (service *Service) Get(context context.Context, id string) (*Experience, error) {
	e, err := service.repo.Find(context, id)
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

// Create validates and persists a new entry.
func (service *Service) Create(context context.Context, input Input) (*Experience, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldCompany, input.Company == nil, "This field is required")
	validator.Custom(FieldRole, input.Role == nil, "This field is required")
	if input.Company != nil {
		validator.RequiredText(FieldCompany, *input.Company)
	}
	if input.Role != nil {
		validator.RequiredText(FieldRole, *input.Role)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	e := &Experience{ID: uuid.New(), Published: true}
	input.apply(e)

	if err := service.repo.Create(context, e); err != nil {
		return nil, err
	}

	service.logger.Info("experience_created", slog.String("experience_id", e.ID))
	return e, nil
}

// Update replaces the provided fields of an existing entry.
func (service *Service) Update(context context.Context, id string, input Input) (*Experience, error) {
	e, err := service.repo.Find(context, id)
	if err != nil {
		return nil, notFound(err)
	}

	input.apply(e)

	validator := &validate.Validator{}
	validator.RequiredText(FieldCompany, e.Company).RequiredText(FieldRole, e.Role)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, e); err != nil {
		return nil, err
	}

	service.logger.Info("experience_updated", slog.String("experience_id", e.ID))
	return e, nil
}

// Delete hard-deletes an entry.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("experience_deleted", slog.String("experience_id", id))
	return nil
}

func notFound(err error) error {
	if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
		return apperr.NotFound("Experience")
	}
	return err
}
