package usecase

import (
	"context"

	evdomain "process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/metrics/core/aggregate"
	"process-mining-service/internal/metrics/core/domain"
	"process-mining-service/internal/metrics/core/ports"
)

type StatsInput struct {
	Dataset   string
	Dimension string
	Filter    Filter
	SortBy    string // "" -> count for activity, duration otherwise
	Limit     int    // 0 -> all
}

// StatsResult carries Cases for the case dimension and Groups otherwise.
type StatsResult struct {
	Dataset   evdomain.Dataset
	Dimension domain.Dimension
	SortBy    string
	Total     int // groups before the limit
	Cases     []domain.CaseStats
	Groups    []domain.GroupStats
}

type GetStatsUseCase struct {
	source ports.EventSourcePort
}

func NewGetStatsUseCase(source ports.EventSourcePort) *GetStatsUseCase {
	return &GetStatsUseCase{source: source}
}

// Execute validates the query, loads the events and aggregates them by the
// requested dimension.
func (uc *GetStatsUseCase) Execute(ctx context.Context, in StatsInput) (*StatsResult, error) {
	dim, err := parseDimension(in.Dimension)
	if err != nil {
		return nil, err
	}
	if in.Limit < 0 {
		return nil, ErrInvalidLimit
	}
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = defaultSort(dim)
	}

	if dim == domain.DimensionCase {
		value, err := caseSortValue(sortBy)
		if err != nil {
			return nil, err
		}
		ds, events, err := loadEvents(ctx, uc.source, in.Dataset, in.Filter)
		if err != nil {
			return nil, err
		}
		cases := aggregate.ProjectCases(events)
		return &StatsResult{
			Dataset:   ds,
			Dimension: dim,
			SortBy:    sortBy,
			Total:     len(cases),
			Cases:     aggregate.TopNFunc(cases, in.Limit, value),
		}, nil
	}

	value, err := groupSortValue(sortBy)
	if err != nil {
		return nil, err
	}
	ds, events, err := loadEvents(ctx, uc.source, in.Dataset, in.Filter)
	if err != nil {
		return nil, err
	}
	groups, err := aggregate.ProjectGroups(events, dim)
	if err != nil {
		return nil, err
	}
	return &StatsResult{
		Dataset:   ds,
		Dimension: dim,
		SortBy:    sortBy,
		Total:     len(groups),
		Groups:    aggregate.TopNFunc(groups, in.Limit, value),
	}, nil
}
