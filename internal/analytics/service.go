// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package analytics

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/markrahimi/folio/internal/platform/validate"
)

// Counter is satisfied by every resource repository that can report its size.
type Counter interface {
	Count(context context.Context) (int, error)
}

// Counters names the resource repositories the stats rollup reads from.
type Counters struct {
	Projects     Counter
	Blogs        Counter
	Messages     Counter
	Experiences  Counter
	Education    Counter
	Skills       Counter
	Certificates Counter
}

// Stats is the admin dashboard rollup.
//
// TotalContent counts the portfolio resources (projects, blogs, experiences,
// education, certificates); messages and skill categories are excluded.
type Stats struct {
	Projects     int   `json:"projects"`
	Blogs        int   `json:"blogs"`
	Messages     int   `json:"messages"`
	Experiences  int   `json:"experiences"`
	Education    int   `json:"education"`
	Skills       int   `json:"skills"`
	Certificates int   `json:"certificates"`
	TotalViews   int64 `json:"totalViews"`
	TotalContent int   `json:"totalContent"`
}

type Service struct {
	views    ViewRepository
	counters Counters
	logger   *slog.Logger
}

func NewService(views ViewRepository, counters Counters, logger *slog.Logger) *Service {
	return &Service{views: views, counters: counters, logger: logger}
}

// Track bumps the view counter for a page.
func (service *Service) Track(context context.Context, input ViewInput) (*PageView, error) {
	validator := &validate.Validator{}
	validator.Required("page", input.Page).MaxLen("page", input.Page, 300)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	count, err := service.views.Increment(context, input.Page)
	if err != nil {
		return nil, err
	}

	return &PageView{Page: input.Page, Count: count}, nil
}

// Summary returns the total view count and the per-page breakdown.
func (service *Service) Summary(context context.Context) (*ViewSummary, error) {
	views, err := service.views.All(context)
	if err != nil {
		return nil, err
	}

	summary := &ViewSummary{Pages: views}
	for _, v := range views {
		summary.TotalViews += v.Count
	}
	return summary, nil
}

// Collect gathers the resource counts concurrently. A failing count fails
// the whole rollup instead of being reported as zero.
func (service *Service) Collect(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	group, groupCtx := errgroup.WithContext(ctx)

	count := func(target *int, counter Counter) {
		group.Go(func() error {
			n, err := counter.Count(groupCtx)
			if err != nil {
				return err
			}
			*target = n
			return nil
		})
	}

	count(&stats.Projects, service.counters.Projects)
	count(&stats.Blogs, service.counters.Blogs)
	count(&stats.Messages, service.counters.Messages)
	count(&stats.Experiences, service.counters.Experiences)
	count(&stats.Education, service.counters.Education)
	count(&stats.Skills, service.counters.Skills)
	count(&stats.Certificates, service.counters.Certificates)

	group.Go(func() error {
		total, err := service.views.Total(groupCtx)
		if err != nil {
			return err
		}
		stats.TotalViews = total
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	stats.TotalContent = stats.Projects + stats.Blogs + stats.Experiences +
		stats.Education + stats.Certificates

	return stats, nil
}
