// Package snapshot holds the most recently loaded events of every dataset
// and notifies listeners after each load.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/ports"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DatasetSnapshot is the outcome of the last load of one dataset. When the
// load failed, Events and LoadedAt still describe the previous good load.
type DatasetSnapshot struct {
	Events   []domain.Event
	LoadedAt time.Time
	Err      error
}

func (d DatasetSnapshot) Loaded() bool { return !d.LoadedAt.IsZero() }

type Snapshot struct {
	RefreshedAt time.Time
	Datasets    map[domain.Dataset]DatasetSnapshot
}

type Listener interface {
	OnSnapshot(s *Snapshot)
}

type ListenerFunc func(s *Snapshot)

func (f ListenerFunc) OnSnapshot(s *Snapshot) { f(s) }

type Store struct {
	source  ports.EventReaderPort
	current atomic.Pointer[Snapshot]
	now     func() time.Time

	refreshMu sync.Mutex

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
}

var _ ports.EventReaderPort = (*Store)(nil)

func NewStore(source ports.EventReaderPort) *Store {
	return &Store{
		source:    source,
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
}

// Current returns the last snapshot, or nil before the first refresh.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Subscribe registers l for every future refresh. The returned func removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Refresh loads every dataset in parallel and swaps in the new snapshot.
// The returned error joins the per-dataset failures; the snapshot is
// published either way.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	prev := s.current.Load()
	results := make([]DatasetSnapshot, len(domain.Datasets))

	g, gctx := errgroup.WithContext(ctx)
	for i, ds := range domain.Datasets {
		i, ds := i, ds
		g.Go(func() error {
			events, err := s.source.ListEvents(gctx, ports.EventFilter{Dataset: ds})
			if err != nil {
				res := DatasetSnapshot{Err: fmt.Errorf("%s: %w", ds, err)}
				if prev != nil {
					old := prev.Datasets[ds]
					res.Events, res.LoadedAt = old.Events, old.LoadedAt
				}
				results[i] = res
				return nil
			}
			results[i] = DatasetSnapshot{Events: events, LoadedAt: s.now()}
			return nil
		})
	}
	_ = g.Wait()

	next := &Snapshot{
		RefreshedAt: s.now(),
		Datasets:    make(map[domain.Dataset]DatasetSnapshot, len(results)),
	}
	var errs []error
	for i, ds := range domain.Datasets {
		next.Datasets[ds] = results[i]
		if results[i].Err != nil {
			errs = append(errs, results[i].Err)
		}
	}
	s.current.Store(next)

	s.notify(next)
	return next, errors.Join(errs...)
}

func (s *Store) notify(snap *Snapshot) {
	s.mu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l.OnSnapshot(snap)
	}
}

// ListEvents serves from the snapshot when the dataset has been loaded and
// falls through to the source otherwise.
func (s *Store) ListEvents(ctx context.Context, f ports.EventFilter) ([]domain.Event, error) {
	if f.Dataset.Table() == "" {
		return nil, domain.ErrUnknownDataset
	}

	snap := s.current.Load()
	if snap == nil {
		return s.source.ListEvents(ctx, f)
	}
	ds, ok := snap.Datasets[f.Dataset]
	if !ok || !ds.Loaded() {
		return s.source.ListEvents(ctx, f)
	}

	if f.Empty() {
		return slices.Clone(ds.Events), nil
	}
	out := make([]domain.Event, 0, len(ds.Events))
	for _, e := range ds.Events {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Run refreshes on every tick until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				log.Warn().Err(err).Msg("snapshot refresh incomplete")
			}
		}
	}
}
