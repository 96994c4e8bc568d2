// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package experience

import "context"

// Repository defines the data access contract for experience entries.
type Repository interface {
	// List returns entries sorted by display order ascending.
	List(context context.Context, onlyPublished bool) ([]*Experience, error)

	// Find returns the entry with the given internal id.
	Find(context context.Context, id string) (*Experience, error)

	// Create persists a new entry.
	Create(context context.Context, e *Experience) error

	// Update replaces the stored document for e.ID.
	Update(context context.Context, e *Experience) error

	// Delete hard-deletes the entry with the given internal id.
	Delete(context context.Context, id string) error

	// Count returns the total number of entries, drafts included.
	Count(context context.Context) (int, error)
}
