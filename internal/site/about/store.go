// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package about

import "context"

// Repository defines the data access contract for the about singleton.
type Repository interface {
	// Get returns the singleton, bootstrapping the default document on first read.
	Get(context context.Context) (*About, error)

	// Put replaces the singleton document.
	Put(context context.Context, a *About) error
}
