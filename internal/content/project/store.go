// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package project

import "context"

// Repository defines the data access contract for projects.
type Repository interface {
	// List returns projects sorted by date descending. When onlyPublished is
	// true, unpublished drafts are excluded (public reads).
	List(context context.Context, onlyPublished bool) ([]*Project, error)

	// Find returns the project with the given slug id.
	Find(context context.Context, id string, onlyPublished bool) (*Project, error)

	// Create persists a new project.
	Create(context context.Context, p *Project) error

	// Update replaces the stored document for p.ID.
	Update(context context.Context, p *Project) error

	// Delete hard-deletes the project with the given slug id.
	Delete(context context.Context, id string) error

	// Count returns the total number of projects, drafts included.
	Count(context context.Context) (int, error)
}
