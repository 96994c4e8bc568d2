// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package message

import (
	"context"
	"log/slog"

	"github.com/markrahimi/folio/internal/platform/apperr"
	"github.com/markrahimi/folio/internal/platform/validate"
	"github.com/markrahimi/folio/pkg/pagination"
	"github.com/markrahimi/folio/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit validates and stores a public contact-form submission.
func (service *Service) Submit(context context.Context, input SubmitInput) (*Message, error) {
	validator := &validate.Validator{}
	validator.Required("name", input.Name).
		Required("email", input.Email).
		Required("subject", input.Subject).
		Required("message", input.Message)
	if !validator.HasErrors() {
		validator.Email("email", input.Email).
			MaxLen("name", input.Name, 200).
			MaxLen("subject", input.Subject, 300).
			MaxLen("message", input.Message, 10000)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	m := &Message{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Status:  StatusUnread,
	}

	if err := service.repo.Create(context, m); err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_received", slog.String("message_id", m.ID))
	return m, nil
}

// List returns a page of messages for the admin inbox, newest first.
func (service *Service) List(context context.Context, params pagination.Params) ([]*Message, pagination.Meta, error) {
	messages, total, err := service.repo.List(context, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return messages, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// SetStatus updates the triage status of one message.
func (service *Service) SetStatus(context context.Context, id string, input StatusInput) (*Message, error) {
	validator := &validate.Validator{}
	validator.OneOf("status", input.Status, StatusUnread, StatusRead, StatusArchived)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	m, err := service.repo.UpdateStatus(context, id, input.Status)
	if err != nil {
		return nil, notFound(err)
	}

	service.logger.Info("contact_message_status_changed",
		slog.String("message_id", id), slog.String("status", input.Status))
	return m, nil
}

// Delete removes one message from the inbox.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("contact_message_deleted", slog.String("message_id", id))
	return nil
}

func notFound(err error) error {
	if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
		return apperr.NotFound("Message")
	}
	return err
}
