// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package project

import (
	"context"
	"log/slog"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/internal/platform/validate"
	"github.com/markrahimi/folio/pkg/i18n"
	"github.com/markrahimi/folio/pkg/slice"
	"github.com/markrahimi/folio/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListPublished returns all published projects projected to the given language.
func (service *Service) ListPublished(context context.Context, lang i18n.Lang) ([]*Public, error) {
	projects, err := service.repo.List(context, true)
	if err != nil {
		return nil, err
	}

	return slice.Map(projects, func(p *Project) *Public { return p.Localize(lang) }), nil
}

// GetPublished returns one published project projected to the given language.
func (service *Service) GetPublished(context context.Context, id string, lang i18n.Lang) (*Public, error) {
	p, err := service.repo.Find(context, id, true)
	if err != nil {
		return nil, notFound(err)
	}
	return p.Localize(lang), nil
}

// ListAll returns every project, drafts included, in full bilingual form.
func (service *Service) ListAll(context context.Context) ([]*Project, error) {
	return service.repo.List(context, false)
}

// Get returns one project in full bilingual form regardless of publish state.
func (service *Service) Get(context context.Context, id string) (*Project, error) {
	p, err := service.repo.Find(context, id, false)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Create validates and persists a new project.
//
// When no slug id is supplied it is derived from the English title.
func (service *Service) Create(context context.Context, input Input) (*Project, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldTitle, input.Title == nil, "This field is required")
	validator.Custom(FieldSubtitle, input.Subtitle == nil, "This field is required")
	validator.Custom(FieldDescription, input.Description == nil, "This field is required")
	validator.Custom(FieldLongDescription, input.LongDescription == nil, "This field is required")
	validator.Custom(FieldImage, input.Image == nil || *input.Image == "", "This field is required")

	if input.Title != nil {
		validator.RequiredText(FieldTitle, *input.Title)
	}
	if input.Subtitle != nil {
		validator.RequiredText(FieldSubtitle, *input.Subtitle)
	}
	if input.Description != nil {
		validator.RequiredText(FieldDescription, *input.Description)
	}
	if input.LongDescription != nil {
		validator.RequiredText(FieldLongDescription, *input.LongDescription)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	id := ""
	if input.ID != nil {
		id = *input.ID
	}
	if id == "" {
		id = slug.From(input.Title.EN)
	}

	idValidator := &validate.Validator{}
	idValidator.Required(FieldID, id).Slug(FieldID, id)
	if err := idValidator.Err(); err != nil {
		return nil, err
	}

	p := &Project{ID: id, Tags: []string{}, Published: true}
	input.apply(p)

	if err := service.repo.Create(context, p); err != nil {
		return nil, err
	}

	service.logger.Info("project_created", slog.String("project_id", p.ID))
	return p, nil
}

// Update replaces the provided fields of an existing project.
func (service *Service) Update(context context.Context, id string, input Input) (*Project, error) {
	p, err := service.repo.Find(context, id, false)
	if err != nil {
		return nil, notFound(err)
	}

	input.apply(p)

	validator := &validate.Validator{}
	validator.RequiredText(FieldTitle, p.Title).
		RequiredText(FieldSubtitle, p.Subtitle).
		RequiredText(FieldDescription, p.Description).
		RequiredText(FieldLongDescription, p.LongDescription).
		Required(FieldImage, p.Image)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, p); err != nil {
		return nil, err
	}

	service.logger.Info("project_updated", slog.String("project_id", p.ID))
	return p, nil
}

// Delete hard-deletes a project by slug id.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("project_deleted", slog.String("project_id", id))
	return nil
}

func notFound(err error) error {
	if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
		return apperr.NotFound("Project")
	}
	return err
}
