package usecase

import (
	"context"

	"process-mining-service/internal/metrics/core/aggregate"
	"process-mining-service/internal/metrics/core/domain"
	"process-mining-service/internal/metrics/core/ports"
)

// DefaultCaseLimit is applied by callers when no limit was requested.
const DefaultCaseLimit = 20

type CasesInput struct {
	Dataset string
	Filter  Filter
	SortBy  string // "" -> count
	Limit   int    // 0 -> all cases
}

type GetCasesUseCase struct {
	source ports.EventSourcePort
}

func NewGetCasesUseCase(source ports.EventSourcePort) *GetCasesUseCase {
	return &GetCasesUseCase{source: source}
}

// Execute returns the case table, busiest cases first.
func (uc *GetCasesUseCase) Execute(ctx context.Context, in CasesInput) ([]domain.CaseStats, error) {
	if in.Limit < 0 {
		return nil, ErrInvalidLimit
	}
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = SortCount
	}
	value, err := caseSortValue(sortBy)
	if err != nil {
		return nil, err
	}

	_, events, err := loadEvents(ctx, uc.source, in.Dataset, in.Filter)
	if err != nil {
		return nil, err
	}

	return aggregate.TopNFunc(aggregate.ProjectCases(events), in.Limit, value), nil
}
