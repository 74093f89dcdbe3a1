package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/ports"

	"github.com/lib/pq"
)

type EventRepository struct {
	db     DB
	driver string
}

func NewEventRepository(db DB, driver string) *EventRepository {
	return &EventRepository{db: db, driver: driver}
}

var (
	_ ports.EventReaderPort = (*EventRepository)(nil)
	_ ports.EventWriterPort = (*EventRepository)(nil)
)

// EnsureSchema creates the event tables and their indexes when missing.
func (r *EventRepository) EnsureSchema(ctx context.Context) error {
	for _, ds := range domain.Datasets {
		for _, stmt := range schemaStatements(r.driver, ds.Table()) {
			if _, err := r.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("schema %s: %w", ds.Table(), err)
			}
		}
	}
	return nil
}

func (r *EventRepository) ReplaceEvents(ctx context.Context, ds domain.Dataset, events []domain.Event, batchSize int) (int, error) {
	table := ds.Table()
	if table == "" {
		return 0, domain.ErrUnknownDataset
	}
	if batchSize <= 0 {
		batchSize = max(len(events), 1)
	}

	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return 0, fmt.Errorf("clear %s: %w", table, err)
	}

	batches := 0
	for start := 0; start < len(events); start += batchSize {
		end := min(start+batchSize, len(events))
		if err := r.insertBatch(ctx, tx, table, events[start:end]); err != nil {
			return 0, fmt.Errorf("batch %d: %w", batches+1, err)
		}
		batches++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true

	return batches, nil
}

func (r *EventRepository) insertBatch(ctx context.Context, tx Tx, table string, batch []domain.Event) error {
	stmt, err := tx.PrepareContext(ctx, r.insertStatement(table))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range batch {
		if _, err := stmt.ExecContext(ctx, eventArgs(e)...); err != nil {
			return err
		}
	}

	if r.driver == DriverPostgres {
		// an argument-less Exec flushes the COPY buffer
		if _, err := stmt.ExecContext(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *EventRepository) insertStatement(table string) string {
	if r.driver == DriverPostgres {
		return pq.CopyIn(table, eventColumns...)
	}

	marks := make([]string, len(eventColumns))
	for i := range marks {
		marks[i] = r.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(eventColumns, ", "), strings.Join(marks, ", "))
}

func (r *EventRepository) placeholder(n int) string {
	if r.driver == DriverSQLite {
		return fmt.Sprintf("?%d", n)
	}
	return fmt.Sprintf("$%d", n)
}

func (r *EventRepository) ListEvents(ctx context.Context, f ports.EventFilter) ([]domain.Event, error) {
	table := f.Dataset.Table()
	if table == "" {
		return nil, domain.ErrUnknownDataset
	}

	var (
		where []string
		args  []any
	)
	addIn := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		values = ports.StoredValues(values)
		marks := make([]string, len(values))
		for i, v := range values {
			args = append(args, v)
			marks[i] = r.placeholder(len(args))
		}
		where = append(where, fmt.Sprintf("%s IN (%s)", column, strings.Join(marks, ", ")))
	}
	addIn("team", f.Teams)
	addIn("actor_id", f.Actors)
	addIn("case_id", f.Cases)

	query := "SELECT " + strings.Join(eventColumns, ", ") + " FROM " + table
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			e          domain.Event
			start, end sql.NullTime
		)
		if err := rows.Scan(
			&e.CaseID,
			&e.ActorID,
			&e.Team,
			&e.Application,
			&e.Window,
			&e.Activity,
			&e.Step,
			&e.DurationSeconds,
			&e.MouseClicks,
			&e.Keypresses,
			&e.Copies,
			&e.Pastes,
			&start,
			&end,
		); err != nil {
			return nil, err
		}
		e.StartTime = timePtr(start)
		e.EndTime = timePtr(end)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func eventArgs(e domain.Event) []any {
	return []any{
		e.CaseID,
		e.ActorID,
		e.Team,
		e.Application,
		e.Window,
		e.Activity,
		e.Step,
		e.DurationSeconds,
		e.MouseClicks,
		e.Keypresses,
		e.Copies,
		e.Pastes,
		nullableTime(e.StartTime),
		nullableTime(e.EndTime),
	}
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
