package snapshot

import (
	"context"

	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/ports"

	"github.com/rs/zerolog/log"
)

type refreshingWriter struct {
	next  ports.EventWriterPort
	store *Store
}

// RefreshAfterWrite returns a writer that reloads the snapshot once next has
// replaced a dataset, so reads never serve the pre-import events.
func (s *Store) RefreshAfterWrite(next ports.EventWriterPort) ports.EventWriterPort {
	return &refreshingWriter{next: next, store: s}
}

func (w *refreshingWriter) ReplaceEvents(ctx context.Context, ds domain.Dataset, events []domain.Event, batchSize int) (int, error) {
	batches, err := w.next.ReplaceEvents(ctx, ds, events, batchSize)
	if err != nil {
		return batches, err
	}
	if _, err := w.store.Refresh(context.WithoutCancel(ctx)); err != nil {
		log.Warn().Err(err).Str("dataset", string(ds)).Msg("snapshot refresh after import incomplete")
	}
	return batches, nil
}
