package usecase

import (
	"context"
	"fmt"

	"process-mining-service/internal/metrics/core/aggregate"
	"process-mining-service/internal/metrics/core/domain"
	"process-mining-service/internal/metrics/core/ports"
)

type HeatmapInput struct {
	Dataset string
	Rows    string // "" -> step
	Columns string // "" -> team
	Value   string // "" -> count, or duration
	Filter  Filter
}

type GetHeatmapUseCase struct {
	source ports.EventSourcePort
}

func NewGetHeatmapUseCase(source ports.EventSourcePort) *GetHeatmapUseCase {
	return &GetHeatmapUseCase{source: source}
}

func (uc *GetHeatmapUseCase) Execute(ctx context.Context, in HeatmapInput) (*domain.HeatMap, error) {
	rows, cols, value := in.Rows, in.Columns, in.Value
	if rows == "" {
		rows = string(domain.DimensionStep)
	}
	if cols == "" {
		cols = string(domain.DimensionTeam)
	}
	if value == "" {
		value = aggregate.CellCount
	}

	rowDim, err := parseDimension(rows)
	if err != nil {
		return nil, err
	}
	colDim, err := parseDimension(cols)
	if err != nil {
		return nil, err
	}
	if rowDim == colDim {
		return nil, fmt.Errorf("%w: rows and columns are both %q", ErrInvalidHeatmap, rowDim)
	}
	if value != aggregate.CellCount && value != aggregate.CellDuration {
		return nil, fmt.Errorf("%w: value %q", ErrInvalidHeatmap, value)
	}

	_, events, err := loadEvents(ctx, uc.source, in.Dataset, in.Filter)
	if err != nil {
		return nil, err
	}

	hm, err := aggregate.CrossTab(events, rowDim, colDim, value)
	if err != nil {
		return nil, err
	}
	return &hm, nil
}
