// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package analytics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markrahimi/folio/internal/platform/apperr"
)

// memoryViews is an in-memory [ViewRepository].
type memoryViews struct {
	counts map[string]int64
}

func (repo *memoryViews) Increment(_ context.Context, page string) (int64, error) {
	repo.counts[page]++
	return repo.counts[page], nil
}

func (repo *memoryViews) All(_ context.Context) ([]PageView, error) {
	views := []PageView{}
	for page, count := range repo.counts {
		views = append(views, PageView{Page: page, Count: count})
	}
	return views, nil
}

func (repo *memoryViews) Total(_ context.Context) (int64, error) {
	var total int64
	for _, count := range repo.counts {
		total += count
	}
	return total, nil
}

// fixedCount is a [Counter] stub.
type fixedCount int

func (c fixedCount) Count(context.Context) (int, error) { return int(c), nil }

// failingCount is a [Counter] that always errors.
type failingCount struct{}

func (failingCount) Count(context.Context) (int, error) {
	return 0, errors.New("store offline")
}

func testCounters() Counters {
	return Counters{
		Projects:     fixedCount(4),
		Blogs:        fixedCount(7),
		Messages:     fixedCount(12),
		Experiences:  fixedCount(3),
		Education:    fixedCount(2),
		Skills:       fixedCount(5),
		Certificates: fixedCount(6),
	}
}

/*
TestService_Track covers counter monotonicity and the required page field.
*/
func TestService_Track(t *testing.T) {
	service := NewService(&memoryViews{counts: map[string]int64{}}, testCounters(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	first, err := service.Track(context.Background(), ViewInput{Page: "/projects"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Count)

	second, err := service.Track(context.Background(), ViewInput{Page: "/projects"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Count)

	_, err = service.Track(context.Background(), ViewInput{})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_Summary verifies the total is the sum of the breakdown.
*/
func TestService_Summary(t *testing.T) {
	views := &memoryViews{counts: map[string]int64{"/": 10, "/blog": 3}}
	service := NewService(views, testCounters(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(13), summary.TotalViews)
	assert.Len(t, summary.Pages, 2)
}

/*
TestService_Collect checks the rollup math and error propagation.
*/
func TestService_Collect(t *testing.T) {
	t.Run("aggregates_all_counts", func(t *testing.T) {
		views := &memoryViews{counts: map[string]int64{"/": 100}}
		service := NewService(views, testCounters(), slog.New(slog.NewTextHandler(io.Discard, nil)))

		stats, err := service.Collect(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 4, stats.Projects)
		assert.Equal(t, 12, stats.Messages)
		assert.Equal(t, int64(100), stats.TotalViews)

		// projects + blogs + experiences + education + certificates
		assert.Equal(t, 4+7+3+2+6, stats.TotalContent)
	})

	t.Run("failing_store_fails_the_rollup", func(t *testing.T) {
		counters := testCounters()
		counters.Blogs = failingCount{}

		views := &memoryViews{counts: map[string]int64{}}
		service := NewService(views, counters, slog.New(slog.NewTextHandler(io.Discard, nil)))

		_, err := service.Collect(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, "store offline")
	})
}
