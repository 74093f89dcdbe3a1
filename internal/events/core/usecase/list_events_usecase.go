package usecase

import (
	"context"
	"fmt"

	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/ports"
)

type ListEventsUseCase struct {
	reader ports.EventReaderPort
}

func NewListEventsUseCase(reader ports.EventReaderPort) *ListEventsUseCase {
	return &ListEventsUseCase{reader: reader}
}

type ListEventsInput struct {
	Dataset string
	Teams   []string
	Actors  []string
	Cases   []string
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, in ListEventsInput) ([]domain.Event, error) {
	ds, err := domain.ParseDataset(in.Dataset)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDataset, in.Dataset)
	}

	filter := ports.EventFilter{
		Dataset: ds,
		Teams:   in.Teams,
		Actors:  in.Actors,
		Cases:   in.Cases,
	}

	return uc.reader.ListEvents(ctx, filter)
}
