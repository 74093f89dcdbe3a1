package telemetry

import (
	"context"

	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/ports"
)

type instrumentedWriter struct {
	next ports.EventWriterPort
}

// InstrumentWriter counts written rows and failures around next.
func InstrumentWriter(next ports.EventWriterPort) ports.EventWriterPort {
	return &instrumentedWriter{next: next}
}

func (w *instrumentedWriter) ReplaceEvents(ctx context.Context, ds domain.Dataset, events []domain.Event, batchSize int) (int, error) {
	batches, err := w.next.ReplaceEvents(ctx, ds, events, batchSize)
	if err != nil {
		IngestFailuresTotal.WithLabelValues(string(ds)).Inc()
		return batches, err
	}
	IngestedRowsTotal.WithLabelValues(string(ds)).Add(float64(len(events)))
	return batches, nil
}
