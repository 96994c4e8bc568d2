// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package skill

import "context"

// Repository defines the data access contract for skill categories.
type Repository interface {
	// List returns categories sorted by display order ascending.
	List(context context.Context, onlyPublished bool) ([]*Skill, error)

	// Find returns the category with the given internal id.
	Find(context context.Context, id string) (*Skill, error)

	// Create persists a new category.
	Create(context context.Context, s *Skill) error

	// Update replaces the stored document for s.ID.
	Update(context context.Context, s *Skill) error

	// Delete hard-deletes the category with the given internal id.
	Delete(context context.Context, id string) error

	// Count returns the total number of categories, drafts included.
	Count(context context.Context) (int, error)
}
