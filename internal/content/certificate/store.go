// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package certificate

import "context"

// Repository defines the data access contract for certificates.
type Repository interface {
	// List returns certificates sorted by display order ascending.
	List(context context.Context, onlyActive bool) ([]*Certificate, error)

	// Find returns the certificate with the given internal id.
	Find(context context.Context, id string) (*Certificate, error)

	// Create persists a new certificate.
	Create(context context.Context, c *Certificate) error

	// Update replaces the stored document for c.ID.
	Update(context context.Context, c *Certificate) error

	// Delete hard-deletes the certificate with the given internal id.
	Delete(context context.Context, id string) error

	// Count returns the total number of certificates, inactive included.
	Count(context context.Context) (int, error)
}
