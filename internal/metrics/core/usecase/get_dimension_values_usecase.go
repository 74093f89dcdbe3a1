package usecase

import (
	"context"
	"slices"

	evdomain "process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/metrics/core/aggregate"
	"process-mining-service/internal/metrics/core/ports"
)

type DimensionValuesInput struct {
	Dataset   string
	Dimension string
}

type GetDimensionValuesUseCase struct {
	source ports.EventSourcePort
}

func NewGetDimensionValuesUseCase(source ports.EventSourcePort) *GetDimensionValuesUseCase {
	return &GetDimensionValuesUseCase{source: source}
}

// Execute lists the distinct values of a dimension in ascending order,
// without the Unknown placeholder.
func (uc *GetDimensionValuesUseCase) Execute(ctx context.Context, in DimensionValuesInput) ([]string, error) {
	dim, err := parseDimension(in.Dimension)
	if err != nil {
		return nil, err
	}
	key, _ := aggregate.KeyFor(dim)

	_, events, err := loadEvents(ctx, uc.source, in.Dataset, Filter{})
	if err != nil {
		return nil, err
	}

	values := slices.DeleteFunc(aggregate.AggregateByKey(events, key).Keys(), func(k string) bool {
		return k == evdomain.UnknownLabel
	})
	slices.Sort(values)
	return values, nil
}
