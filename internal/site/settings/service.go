// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package settings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/markrahimi/folio/internal/platform/validate"
)

// Service serves the settings singleton from a process-wide snapshot.
//
// Settings are read on effectively every page render but change only on
// admin PUT, so reads come from memory and the snapshot is swapped after
// every successful write. [Service.Warm] loads it at startup.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu      sync.RWMutex
	current *Settings
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

// Get returns the current settings.
func (service *Service) Get(context context.Context) (*Settings, error) {
	service.mu.RLock()
	s := service.current
	service.mu.RUnlock()
	if s != nil {
		return s, nil
	}
	return service.load(context)
}

func (service *Service) load(context context.Context) (*Settings, error) {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.current != nil {
		return service.current, nil
	}

	s, err := service.repo.Get(context)
	if err != nil {
		return nil, err
	}
	service.current = s
	return s, nil
}

// Update applies the provided fields on top of the current document, saves it,
// and swaps the snapshot. The snapshot is only replaced after a successful
// write, so a failed validation or Put never leaks a half-applied document.
func (service *Service) Update(context context.Context, input Input) (*Settings, error) {
	current, err := service.Get(context)
	if err != nil {
		return nil, err
	}

	// Work on a copy; apply replaces whole fields, never mutates in place.
	updated := *current
	s := &updated
	input.apply(s)

	validator := &validate.Validator{}
	validator.Required("fullName", s.FullName)
	if s.Email != "" {
		validator.Email("email", s.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Put(context, s); err != nil {
		return nil, err
	}

	service.mu.Lock()
	service.current = s
	service.mu.Unlock()

	service.logger.Info("settings_updated")
	return s, nil
}
