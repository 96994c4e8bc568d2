// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package certificate

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

// ListActive returns active certificates in full bilingual form.
func (service *Service) ListActive(context context.Context) ([]*Certificate, error) {
	return service.repo.List(context, true)
}

// ListActiveLocalized returns active certificates projected to one language.
func (service *Service) ListActiveLocalized(context context.Context, lang i18n.Lang) ([]*Public, error) {
	certificates, err := service.repo.List(context, true)
	if err != nil {
		return nil, err
	}

	return slice.Map(certificates, func(c *Certificate) *Public { return c.Localize(lang) }), nil
}

// Get returns one certificate in full bilingual form.
func (service *Service) Get(context context.Context, id string) (*Certificate, error) {
	c, err := service.repo.Find(context, id)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Create validates and persists a new certificate.
func (service *Service) Create(context context.Context, input Input) (*Certificate, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldName, input.Name == nil, "This field is required")
	validator.Custom(FieldIssuer, input.Issuer == nil, "This field is required")
	validator.Custom(FieldDescription, input.Description == nil, "This field is required")
	validator.Custom(FieldIssueDate, input.IssueDate == nil || *input.IssueDate == "", "This field is required")
	if input.Name != nil {
		validator.RequiredText(FieldName, *input.Name)
	}
	if input.Issuer != nil {
		validator.RequiredText(FieldIssuer, *input.Issuer)
	}
	if input.Description != nil {
		validator.RequiredText(FieldDescription, *input.Description)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	c := &Certificate{ID: uuid.New(), IsActive: true}
	input.apply(c)

	if err := service.repo.Create(context, c); err != nil {
		return nil, err
	}

	service.logger.Info("certificate_created", slog.String("certificate_id", c.ID))
	return c, nil
}

// Update replaces the provided fields of an existing certificate.
func (service *Service) Update(context context.Context, id string, input Input) (*Certificate, error) {
	c, err := service.repo.Find(context, id)
	if err != nil {
		return nil, notFound(err)
	}

	input.apply(c)

	validator := &validate.Validator{}
	validator.RequiredText(FieldName, c.Name).
		RequiredText(FieldIssuer, c.Issuer).
		RequiredText(FieldDescription, c.Description).
		Required(FieldIssueDate, c.IssueDate)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, c); err != nil {
		return nil, err
	}

	service.logger.Info("certificate_updated", slog.String("certificate_id", c.ID))
	return c, nil
}

// Delete hard-deletes a certificate.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("certificate_deleted", slog.String("certificate_id", id))
	return nil
}

func notFound(err error) error {
	if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
		return apperr.NotFound("Certificate")
	}
	return err
}
