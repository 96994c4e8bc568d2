// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package about

import (
	"context"
	"log/slog"
	"sync"

	"github.com/markrahimi/folio/internal/platform/validate"
	"github.com/markrahimi/folio/pkg/i18n"
)

// Service serves the about singleton from a process-wide snapshot.
//
// The document changes only on admin PUT, so reads are answered from memory
// and the snapshot is replaced after every successful write. [Service.Warm]
// loads it at startup.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu      sync.RWMutex
	current *About
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Warm loads the document into the snapshot, bootstrapping defaults on an
// empty store. Called once at startup.
func (service *Service) Warm(context context.Context) error {
	_, err := service.load(context)
	return err
}

// Get returns the full bilingual document.
func (service *Service) Get(context context.Context) (*About, error) {
	service.mu.RLock()
	a := service.current
	service.mu.RUnlock()
	if a != nil {
		return a, nil
	}
	return service.load(context)
}

func (service *Service) load(context context.Context) (*About, error) {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.current != nil {
		return service.current, nil
	}

	a, err := service.repo.Get(context)
	if err != nil {
		return nil, err
	}
	service.current = a
	return a, nil
}

// GetLocalized returns the document projected to one language.
func (service *Service) GetLocalized(context context.Context, lang i18n.Lang) (*Public, error) {
	a, err := service.Get(context)
	if err != nil {
		return nil, err
	}
	return a.Localize(lang), nil
}

// Update applies the provided fields on top of the current document, saves it,
// and swaps the snapshot. The snapshot is only replaced after a successful
// write, so a failed validation or Put never leaks a half-applied document.
func (service *Service) Update(context context.Context, input Input) (*About, error) {
	current, err := service.Get(context)
	if err != nil {
		return nil, err
	}

	// Work on a copy; apply replaces whole fields, never mutates in place.
	updated := *current
	a := &updated
	input.apply(a)

	validator := &validate.Validator{}
	validator.RequiredText("title", a.Title).
		RequiredText("description", a.Description).
		RequiredText("description2", a.Description2).
		RequiredText("description3", a.Description3)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Put(context, a); err != nil {
		return nil, err
	}

	service.mu.Lock()
	service.current = a
	service.mu.Unlock()

	service.logger.Info("about_updated")
	return a, nil
}
