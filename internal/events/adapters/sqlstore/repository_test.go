package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/ports"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct{}

func (fakeResult) LastInsertId() (int64, error) { return 0, errors.New("not implemented") }
func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

// fakeStmt records every Exec call.
type fakeStmt struct {
	execs  [][]any
	ExecFn func(args ...any) error
	closed bool
}

func (s *fakeStmt) ExecContext(_ context.Context, args ...any) (sql.Result, error) {
	s.execs = append(s.execs, args)
	if s.ExecFn != nil {
		if err := s.ExecFn(args...); err != nil {
			return nil, err
		}
	}
	return fakeResult{}, nil
}

func (s *fakeStmt) Close() error {
	s.closed = true
	return nil
}

type fakeTx struct {
	execQueries []string
	prepared    []string
	stmts       []*fakeStmt
	ExecFn      func(query string) error
	StmtExecFn  func(args ...any) error
	committed   bool
	rolledBack  bool
}

func (t *fakeTx) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	t.execQueries = append(t.execQueries, query)
	if t.ExecFn != nil {
		if err := t.ExecFn(query); err != nil {
			return nil, err
		}
	}
	return fakeResult{}, nil
}

func (t *fakeTx) PrepareContext(_ context.Context, query string) (Stmt, error) {
	t.prepared = append(t.prepared, query)
	s := &fakeStmt{ExecFn: t.StmtExecFn}
	t.stmts = append(t.stmts, s)
	return s, nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	tx        *fakeTx
	lastQuery string
	lastArgs  []any
	QueryFn   func(query string, args ...any) (RowScanner, error)
}

func (f *fakeDB) QueryContext(_ context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(query, args...)
	}
	return &fakeRows{}, nil
}

func (f *fakeDB) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	f.lastQuery = query
	return fakeResult{}, nil
}

func (f *fakeDB) BeginTx(context.Context) (Tx, error) {
	if f.tx == nil {
		f.tx = &fakeTx{}
	}
	return f.tx, nil
}

type fakeRows struct{}

func (fakeRows) Next() bool        { return false }
func (fakeRows) Scan(...any) error { return nil }
func (fakeRows) Err() error        { return nil }
func (fakeRows) Close() error      { return nil }

func sampleEvents(n int) []domain.Event {
	events := make([]domain.Event, n)
	for i := range events {
		events[i] = domain.Event{
			CaseID:          "C1",
			ActorID:         "alice",
			Window:          "Inbox",
			Activity:        "Review",
			DurationSeconds: 60,
		}
	}
	return events
}

// ------------------------------------------------------------
// ReplaceEvents (fakes)
// ------------------------------------------------------------

func TestEventRepository_ReplaceEvents_PostgresUsesCopyPerBatch(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db, DriverPostgres)

	batches, err := repo.ReplaceEvents(context.Background(), domain.DatasetSalesforce, sampleEvents(5), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batches != 3 {
		t.Fatalf("expected 3 batches, got %d", batches)
	}

	tx := db.tx
	if len(tx.execQueries) != 1 || tx.execQueries[0] != "DELETE FROM salesforce_events" {
		t.Fatalf("expected table to be cleared first, got %v", tx.execQueries)
	}
	if len(tx.prepared) != 3 {
		t.Fatalf("expected one COPY per batch, got %d", len(tx.prepared))
	}
	if !strings.HasPrefix(tx.prepared[0], "COPY \"salesforce_events\"") {
		t.Fatalf("unexpected statement: %s", tx.prepared[0])
	}

	// 2 rows + flush, 2 rows + flush, 1 row + flush
	wantExecs := []int{3, 3, 2}
	for i, s := range tx.stmts {
		if len(s.execs) != wantExecs[i] {
			t.Fatalf("batch %d: expected %d execs, got %d", i, wantExecs[i], len(s.execs))
		}
		if last := s.execs[len(s.execs)-1]; len(last) != 0 {
			t.Fatalf("batch %d: expected trailing flush exec, got %v", i, last)
		}
		if !s.closed {
			t.Fatalf("batch %d: statement not closed", i)
		}
	}
	if !tx.committed || tx.rolledBack {
		t.Fatalf("expected commit without rollback, committed=%v rolledBack=%v", tx.committed, tx.rolledBack)
	}
}

func TestEventRepository_ReplaceEvents_SQLiteUsesInsert(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db, DriverSQLite)

	batches, err := repo.ReplaceEvents(context.Background(), domain.DatasetAmadeus, sampleEvents(3), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batches != 1 {
		t.Fatalf("expected a single batch, got %d", batches)
	}

	stmt := db.tx.prepared[0]
	if !strings.HasPrefix(stmt, "INSERT INTO amadeus_events") || !strings.Contains(stmt, "?14") {
		t.Fatalf("unexpected statement: %s", stmt)
	}
	if len(db.tx.stmts[0].execs) != 3 {
		t.Fatalf("expected 3 execs without flush, got %d", len(db.tx.stmts[0].execs))
	}
}

func TestEventRepository_ReplaceEvents_RollsBackOnFailure(t *testing.T) {
	boom := errors.New("boom")
	db := &fakeDB{tx: &fakeTx{
		StmtExecFn: func(args ...any) error {
			if len(args) > 0 {
				return boom
			}
			return nil
		},
	}}
	repo := NewEventRepository(db, DriverPostgres)

	_, err := repo.ReplaceEvents(context.Background(), domain.DatasetSalesforce, sampleEvents(2), 10)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if db.tx.committed {
		t.Fatalf("transaction must not be committed")
	}
	if !db.tx.rolledBack {
		t.Fatalf("expected rollback")
	}
}

func TestEventRepository_ReplaceEvents_UnknownDataset(t *testing.T) {
	repo := NewEventRepository(&fakeDB{}, DriverPostgres)

	_, err := repo.ReplaceEvents(context.Background(), domain.Dataset("jira"), sampleEvents(1), 1)
	if !errors.Is(err, domain.ErrUnknownDataset) {
		t.Fatalf("expected ErrUnknownDataset, got %v", err)
	}
}

// ------------------------------------------------------------
// ListEvents (fakes)
// ------------------------------------------------------------

func TestEventRepository_ListEvents_BuildsFilters(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db, DriverPostgres)

	_, err := repo.ListEvents(context.Background(), ports.EventFilter{
		Dataset: domain.DatasetSalesforce,
		Teams:   []string{"Sales", "Ops"},
		Cases:   []string{"C1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "WHERE team IN ($1, $2) AND case_id IN ($3) ORDER BY id"
	if !strings.HasSuffix(db.lastQuery, want) {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 3 || db.lastArgs[2] != "C1" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestEventRepository_ListEvents_UnknownTeamSelectsEmpty(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db, DriverPostgres)

	_, err := repo.ListEvents(context.Background(), ports.EventFilter{
		Dataset: domain.DatasetSalesforce,
		Teams:   []string{domain.UnknownLabel},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "WHERE team IN ($1, $2) ORDER BY id"
	if !strings.HasSuffix(db.lastQuery, want) {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 2 || db.lastArgs[0] != domain.UnknownLabel || db.lastArgs[1] != "" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestEventRepository_ListEvents_NoFilter(t *testing.T) {
	db := &fakeDB{}
	repo := NewEventRepository(db, DriverPostgres)

	if _, err := repo.ListEvents(context.Background(), ports.EventFilter{Dataset: domain.DatasetAmadeus}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(db.lastQuery, "WHERE") {
		t.Fatalf("unexpected WHERE clause: %s", db.lastQuery)
	}
	if !strings.Contains(db.lastQuery, "FROM amadeus_events") {
		t.Fatalf("unexpected table: %s", db.lastQuery)
	}
}

func TestEventRepository_ListEvents_QueryError(t *testing.T) {
	db := &fakeDB{QueryFn: func(string, ...any) (RowScanner, error) {
		return nil, errors.New("db down")
	}}
	repo := NewEventRepository(db, DriverPostgres)

	if _, err := repo.ListEvents(context.Background(), ports.EventFilter{Dataset: domain.DatasetAmadeus}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// ------------------------------------------------------------
// SQLite round trip
// ------------------------------------------------------------

func TestEventRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := Open(ctx, DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sqlDB.Close()

	repo := NewEventRepository(NewSQLDB(sqlDB), DriverSQLite)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{CaseID: "C1", ActorID: "alice", Team: "Sales", Window: "Inbox", Activity: "Review", DurationSeconds: 60, MouseClicks: 3, StartTime: &start},
		{CaseID: "C2", ActorID: "bob", Team: "Ops", Window: "CRM", Activity: "Edit", DurationSeconds: 120, Keypresses: 40},
		{CaseID: "C1", ActorID: "carol", Team: "Sales", Window: "CRM", Activity: "Close", DurationSeconds: 30.5, Pastes: 1},
	}

	if _, err := repo.ReplaceEvents(ctx, domain.DatasetSalesforce, events, 2); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.ListEvents(ctx, ports.EventFilter{Dataset: domain.DatasetSalesforce})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].ActorID != "alice" || got[2].DurationSeconds != 30.5 {
		t.Fatalf("rows out of order or altered: %+v", got)
	}
	if got[0].StartTime == nil || !got[0].StartTime.Equal(start) {
		t.Fatalf("start time not preserved: %v", got[0].StartTime)
	}
	if got[1].StartTime != nil {
		t.Fatalf("expected nil start time, got %v", got[1].StartTime)
	}

	sales, err := repo.ListEvents(ctx, ports.EventFilter{Dataset: domain.DatasetSalesforce, Teams: []string{"Sales"}})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 Sales events, got %d", len(sales))
	}

	if _, err := repo.ReplaceEvents(ctx, domain.DatasetAmadeus, []domain.Event{
		{CaseID: "C9", ActorID: "dave", Activity: "Book", DurationSeconds: 5},
		{CaseID: "C9", ActorID: "erin", Team: "Ops", Activity: "Book", DurationSeconds: 5},
	}, 10); err != nil {
		t.Fatalf("replace amadeus: %v", err)
	}
	unknown, err := repo.ListEvents(ctx, ports.EventFilter{Dataset: domain.DatasetAmadeus, Teams: []string{domain.UnknownLabel}})
	if err != nil {
		t.Fatalf("list unknown team: %v", err)
	}
	if len(unknown) != 1 || unknown[0].ActorID != "dave" {
		t.Fatalf("expected the team-less event, got %+v", unknown)
	}

	// a second replace swaps the table contents
	if _, err := repo.ReplaceEvents(ctx, domain.DatasetSalesforce, events[:1], 10); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err = repo.ListEvents(ctx, ports.EventFilter{Dataset: domain.DatasetSalesforce})
	if err != nil {
		t.Fatalf("list after replace: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event after replace, got %d", len(got))
	}

	other, err := repo.ListEvents(ctx, ports.EventFilter{Dataset: domain.DatasetAmadeus})
	if err != nil {
		t.Fatalf("list amadeus: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty amadeus table, got %d", len(other))
	}
}
