package ports

import (
	"context"

	evdomain "process-mining-service/internal/events/core/domain"
	evports "process-mining-service/internal/events/core/ports"
)

// EventSourcePort supplies the events the statistics are computed from.
type EventSourcePort interface {
	ListEvents(ctx context.Context, f evports.EventFilter) ([]evdomain.Event, error)
}
