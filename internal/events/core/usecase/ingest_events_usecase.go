package usecase

import (
	"context"
	"errors"
	"fmt"

	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const DefaultBatchSize = 1000

var (
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrNoEvents       = errors.New("no events to ingest")
	ErrInvalidBatch   = errors.New("invalid batch size")
)

type IngestEventsUseCase struct {
	writer ports.EventWriterPort
}

func NewIngestEventsUseCase(writer ports.EventWriterPort) *IngestEventsUseCase {
	return &IngestEventsUseCase{writer: writer}
}

type ReplaceInput struct {
	Dataset   string
	Events    []domain.Event
	BatchSize int // 0 -> DefaultBatchSize
}

type ReplaceResult struct {
	RunID    string
	Dataset  domain.Dataset
	Inserted int
	Batches  int
}

// Replace normalizes the events once and swaps the dataset table for them.
func (uc *IngestEventsUseCase) Replace(ctx context.Context, in ReplaceInput) (ReplaceResult, error) {
	var res ReplaceResult

	ds, err := domain.ParseDataset(in.Dataset)
	if err != nil {
		return res, fmt.Errorf("%w: %q", ErrInvalidDataset, in.Dataset)
	}
	if len(in.Events) == 0 {
		return res, ErrNoEvents
	}

	batchSize := in.BatchSize
	switch {
	case batchSize == 0:
		batchSize = DefaultBatchSize
	case batchSize < 0:
		return res, ErrInvalidBatch
	}

	normalized := make([]domain.Event, len(in.Events))
	for i, e := range in.Events {
		normalized[i] = domain.Normalize(e)
	}

	res.RunID = uuid.NewString()
	res.Dataset = ds

	logger := log.With().Str("run_id", res.RunID).Str("dataset", string(ds)).Logger()
	logger.Info().Int("events", len(normalized)).Int("batch_size", batchSize).Msg("replacing dataset")

	batches, err := uc.writer.ReplaceEvents(ctx, ds, normalized, batchSize)
	if err != nil {
		logger.Error().Err(err).Msg("replace failed")
		return res, err
	}

	res.Inserted = len(normalized)
	res.Batches = batches

	logger.Info().Int("inserted", res.Inserted).Int("batches", res.Batches).Msg("dataset replaced")
	return res, nil
}
