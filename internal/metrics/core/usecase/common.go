package usecase

import (
	"context"
	"errors"
	"fmt"

	evdomain "process-mining-service/internal/events/core/domain"
	evports "process-mining-service/internal/events/core/ports"
	"process-mining-service/internal/metrics/core/domain"
	"process-mining-service/internal/metrics/core/ports"
)

var (
	ErrInvalidDataset   = errors.New("invalid dataset")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidSort      = errors.New("invalid sort key")
	ErrInvalidLimit     = errors.New("invalid limit")
	ErrInvalidHeatmap   = errors.New("invalid heatmap query")
)

const (
	SortCount       = "count"
	SortDuration    = "duration"
	SortAvgDuration = "avg_duration"
	SortClicks      = "clicks"
)

// Filter restricts the events to the given teams, actors and cases.
type Filter struct {
	Teams  []string
	Actors []string
	Cases  []string
}

func loadEvents(ctx context.Context, source ports.EventSourcePort, dataset string, f Filter) (evdomain.Dataset, []evdomain.Event, error) {
	ds, err := evdomain.ParseDataset(dataset)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidDataset, dataset)
	}

	events, err := source.ListEvents(ctx, evports.EventFilter{
		Dataset: ds,
		Teams:   f.Teams,
		Actors:  f.Actors,
		Cases:   f.Cases,
	})
	if err != nil {
		return ds, nil, err
	}
	return ds, events, nil
}

func parseDimension(s string) (domain.Dimension, error) {
	d, err := domain.ParseDimension(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}
	return d, nil
}

func defaultSort(d domain.Dimension) string {
	if d == domain.DimensionActivity {
		return SortCount
	}
	return SortDuration
}

func caseSortValue(sortBy string) (func(domain.CaseStats) float64, error) {
	switch sortBy {
	case SortCount:
		return func(c domain.CaseStats) float64 { return float64(c.EventCount) }, nil
	case SortDuration:
		return func(c domain.CaseStats) float64 { return c.TotalDurationSeconds }, nil
	case SortAvgDuration:
		return func(c domain.CaseStats) float64 { return c.AvgDurationSeconds }, nil
	case SortClicks:
		return func(c domain.CaseStats) float64 { return float64(c.Clicks) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, sortBy)
	}
}

func groupSortValue(sortBy string) (func(domain.GroupStats) float64, error) {
	switch sortBy {
	case SortCount:
		return func(g domain.GroupStats) float64 { return float64(g.EventCount) }, nil
	case SortDuration:
		return func(g domain.GroupStats) float64 { return g.TotalDurationSeconds }, nil
	case SortAvgDuration:
		return func(g domain.GroupStats) float64 { return g.AvgDurationSeconds }, nil
	case SortClicks:
		return func(g domain.GroupStats) float64 { return float64(g.Clicks) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, sortBy)
	}
}
