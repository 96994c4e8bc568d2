// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package blog

import "context"

// Repository defines the data access contract for blog posts.
type Repository interface {
	// List returns posts sorted by date descending. When onlyPublished is
	// true, unpublished drafts are excluded (public reads).
	List(context context.Context, onlyPublished bool) ([]*Blog, error)

	// Find returns the post with the given public id.
	Find(context context.Context, id int64, onlyPublished bool) (*Blog, error)

	// Create persists a new post.
	Create(context context.Context, b *Blog) error

	// Update replaces the stored document for b.ID.
	Update(context context.Context, b *Blog) error

	// Delete hard-deletes the post with the given public id.
	Delete(context context.Context, id int64) error

	// Count returns the total number of posts, drafts included.
	Count(context context.Context) (int, error)
}
