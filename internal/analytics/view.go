// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package analytics implements page-view tracking and the admin stats rollup.
package analytics

import "context"

// PageView is the per-page counter row.
type PageView struct {
	Page  string `json:"page"`
	Count int64  `json:"count"`
}

// ViewInput is the public tracking payload.
type ViewInput struct {
	Page string `json:"page"`
}

// ViewSummary is the public read shape: total plus per-page breakdown.
type ViewSummary struct {
	TotalViews int64      `json:"totalViews"`
	Pages      []PageView `json:"pages"`
}

// ViewRepository defines the data access contract for page-view counters.
type ViewRepository interface {
	// Increment bumps the counter for a page, creating it at 1 if absent,
	// and returns the new count. The upsert is atomic so concurrent hits
	// never lose an increment.
	Increment(context context.Context, page string) (int64, error)

	// All returns every counter row.
	All(context context.Context) ([]PageView, error)

	// Total returns the sum of all counters.
	Total(context context.Context) (int64, error)
}
