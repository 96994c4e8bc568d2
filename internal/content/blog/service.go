// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package blog

import (
	"context"
	"log/slog"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/internal/platform/validate"
	"github.com/markrahimi/folio/pkg/i18n"
	"github.com/markrahimi/folio/pkg/slice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListPublished returns all published posts projected to the given language.
func (service *Service) ListPublished(context context.Context, lang i18n.Lang) ([]*Public, error) {
	posts, err := service.repo.List(context, true)
	if err != nil {
		return nil, err
	}

	return slice.Map(posts, func(b *Blog) *Public { return b.Localize(lang) }), nil
}

// GetPublished returns one published post projected to the given language.
func (service *Service) GetPublished(context context.Context, id int64, lang i18n.Lang) (*Public, error) {
	b, err := service.repo.Find(context, id, true)
	if err != nil {
		return nil, notFound(err)
	}
	return b.Localize(lang), nil
}

// ListAll returns every post, drafts included, in full bilingual form.
func (service *Service) ListAll(context context.Context) ([]*Blog, error) {
	return service.repo.List(context, false)
}

// Get returns one post in full bilingual form regardless of publish state.
func (service *Service) Get(context context.Context, id int64) (*Blog, error) {
	b, err := service.repo.Find(context, id, false)
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

// Create validates and persists a new post.
func (service *Service) Create(context context.Context, input Input) (*Blog, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldID, input.ID == nil || *input.ID <= 0, "A positive numeric id is required")
	validator.Custom(FieldTitle, input.Title == nil, "This field is required")
	validator.Custom(FieldExcerpt, input.Excerpt == nil, "This field is required")
	validator.Custom(FieldContent, input.Content == nil, "This field is required")
	validator.Custom(FieldImage, input.Image == nil || *input.Image == "", "This field is required")

	if input.Title != nil {
		validator.RequiredText(FieldTitle, *input.Title)
	}
	if input.Excerpt != nil {
		validator.RequiredText(FieldExcerpt, *input.Excerpt)
	}
	if input.Content != nil {
		validator.RequiredText(FieldContent, *input.Content)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Schema defaults: published unless explicitly drafted, not featured.
	b := &Blog{ID: *input.ID, Tags: []string{}, Published: true}
	input.apply(b)

	if err := service.repo.Create(context, b); err != nil {
		return nil, err
	}

	service.logger.Info("blog_created", slog.Int64("blog_id", b.ID))
	return b, nil
}

// Update replaces the provided fields of an existing post.
func (service *Service) Update(context context.Context, id int64, input Input) (*Blog, error) {
	b, err := service.repo.Find(context, id, false)
	if err != nil {
		return nil, notFound(err)
	}

	input.apply(b)

	validator := &validate.Validator{}
	validator.RequiredText(FieldTitle, b.Title).
		RequiredText(FieldExcerpt, b.Excerpt).
		RequiredText(FieldContent, b.Content).
		Required(FieldImage, b.Image)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, b); err != nil {
		return nil, err
	}

	service.logger.Info("blog_updated", slog.Int64("blog_id", b.ID))
	return b, nil
}

// Delete hard-deletes a post by public id.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("blog_deleted", slog.Int64("blog_id", id))
	return nil
}

// notFound rewrites the generic storage 404 with the resource name.
func notFound(err error) error {
	if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
		return apperr.NotFound("Blog")
	}
	return err
}
