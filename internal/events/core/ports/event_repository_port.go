package ports

import (
	"context"

	"process-mining-service/internal/events/core/domain"
)

// EventFilter narrows a dataset to the given teams, actors and cases.
// An empty set means "no restriction" for that field.
type EventFilter struct {
	Dataset domain.Dataset
	Teams   []string
	Actors  []string
	Cases   []string
}

// Matches reports whether e passes the team/actor/case restrictions.
func (f EventFilter) Matches(e domain.Event) bool {
	return contains(f.Teams, e.Team) && contains(f.Actors, e.ActorID) && contains(f.Cases, e.CaseID)
}

// Empty reports whether the filter restricts nothing beyond the dataset.
func (f EventFilter) Empty() bool {
	return len(f.Teams) == 0 && len(f.Actors) == 0 && len(f.Cases) == 0
}

// StoredValues expands a filter set to the raw column values it selects.
// Optional labels are stored empty but reported as domain.UnknownLabel, so
// filtering by Unknown also selects "".
func StoredValues(set []string) []string {
	for _, s := range set {
		if s == domain.UnknownLabel {
			return append(set[:len(set):len(set)], "")
		}
	}
	return set
}

func contains(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	if v == "" {
		v = domain.UnknownLabel
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

type EventReaderPort interface {
	ListEvents(ctx context.Context, f EventFilter) ([]domain.Event, error)
}

type EventWriterPort interface {
	// ReplaceEvents swaps the whole dataset table for events, inserting in
	// batches of batchSize inside one transaction. It returns the number of
	// batches written.
	ReplaceEvents(ctx context.Context, ds domain.Dataset, events []domain.Event, batchSize int) (batches int, err error)
}
