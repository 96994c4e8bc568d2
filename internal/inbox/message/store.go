// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package message

import (
	"context"

	"github.com/markrahimi/folio/pkg/pagination"
)

// Repository defines the data access contract for contact messages.
type Repository interface {
	// List returns a page of messages, newest first, plus the total count.
	List(context context.Context, params pagination.Params) ([]*Message, int, error)

	// Create persists a new submission.
	Create(context context.Context, m *Message) error

	// UpdateStatus sets the triage status of one message.
	UpdateStatus(context context.Context, id, status string) (*Message, error)

	// Delete hard-deletes one message.
	Delete(context context.Context, id string) error

	// Count returns the total number of messages, all statuses included.
	Count(context context.Context) (int, error)
}
