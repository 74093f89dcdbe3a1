package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	evdomain "process-mining-service/internal/events/core/domain"
	evports "process-mining-service/internal/events/core/ports"
	httpadapter "process-mining-service/internal/metrics/adapters/http/fiber"
	"process-mining-service/internal/metrics/core/domain"
	"process-mining-service/internal/metrics/core/usecase"
	"process-mining-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

// Fake usecases implementing the interfaces the handler depends on.
type fakeStatsUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.StatsInput) (*usecase.StatsResult, error)
	lastInput usecase.StatsInput
	called    bool
}

func (f *fakeStatsUseCase) Execute(ctx context.Context, in usecase.StatsInput) (*usecase.StatsResult, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &usecase.StatsResult{}, nil
}

type fakeCasesUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.CasesInput) ([]domain.CaseStats, error)
	lastInput usecase.CasesInput
}

func (f *fakeCasesUseCase) Execute(ctx context.Context, in usecase.CasesInput) ([]domain.CaseStats, error) {
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeEventSource struct {
	ListFn func(ctx context.Context, f evports.EventFilter) ([]evdomain.Event, error)
}

func (f *fakeEventSource) ListEvents(ctx context.Context, flt evports.EventFilter) ([]evdomain.Event, error) {
	return f.ListFn(ctx, flt)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func setupApp(t *testing.T, stats httpadapter.GetStatsUseCase, cases httpadapter.GetCasesUseCase, source *fakeEventSource) *fiber.App {
	t.Helper()
	if source == nil {
		source = &fakeEventSource{ListFn: func(context.Context, evports.EventFilter) ([]evdomain.Event, error) {
			return nil, nil
		}}
	}
	h := httpadapter.NewMetricsHandler(
		stats,
		cases,
		usecase.NewGetHeatmapUseCase(source),
		usecase.NewGetDimensionValuesUseCase(source),
		usecase.NewGetDashboardUseCase(source),
	)

	app := fiber.New()
	h.Register(app.Group("/api"))
	app.Use(server.NotFound)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, envelope) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("invalid json response: %v (body: %s)", err, raw)
	}
	return resp, env
}

// ------------------------------------------------------------
// GetStats
// ------------------------------------------------------------

func TestGetStats_Success_Groups(t *testing.T) {
	uc := &fakeStatsUseCase{
		ExecuteFn: func(_ context.Context, in usecase.StatsInput) (*usecase.StatsResult, error) {
			return &usecase.StatsResult{
				Dimension: domain.DimensionTeam,
				Total:     7,
				Groups: []domain.GroupStats{
					{Dimension: domain.DimensionTeam, Key: "Sales", EventCount: 4, TotalDurationMinutes: 12},
				},
			}, nil
		},
	}
	app := setupApp(t, uc, &fakeCasesUseCase{}, nil)

	params := url.Values{}
	params.Set("sort", "count")
	params.Set("limit", "5")
	params.Add("actor", "alice,bob")

	resp, env := get(t, app, "/api/salesforce/stats/team?"+params.Encode())

	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d %+v", resp.StatusCode, env)
	}
	if resp.Header.Get("X-Total-Count") != "7" {
		t.Fatalf("expected X-Total-Count 7, got %q", resp.Header.Get("X-Total-Count"))
	}
	in := uc.lastInput
	if in.Dataset != "salesforce" || in.Dimension != "team" || in.SortBy != "count" || in.Limit != 5 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Filter.Actors) != 2 {
		t.Fatalf("expected 2 actors in filter, got %v", in.Filter.Actors)
	}

	var groups []httpadapter.GroupStatsResponse
	if err := json.Unmarshal(env.Data, &groups); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(groups) != 1 || groups[0].Key != "Sales" || groups[0].TotalDurationMinutes != 12 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestGetStats_Success_Cases(t *testing.T) {
	uc := &fakeStatsUseCase{
		ExecuteFn: func(context.Context, usecase.StatsInput) (*usecase.StatsResult, error) {
			return &usecase.StatsResult{
				Dimension: domain.DimensionCase,
				Cases:     []domain.CaseStats{{CaseID: "C1", EventCount: 3, VariabilityRatio: 0.41}},
			}, nil
		},
	}
	app := setupApp(t, uc, &fakeCasesUseCase{}, nil)

	_, env := get(t, app, "/api/amadeus/stats/case")

	var cases []httpadapter.CaseStatsResponse
	if err := json.Unmarshal(env.Data, &cases); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(cases) != 1 || cases[0].CaseID != "C1" || cases[0].VariabilityRatio != 0.41 {
		t.Fatalf("unexpected cases: %+v", cases)
	}
}

func TestGetStats_InvalidLimit(t *testing.T) {
	uc := &fakeStatsUseCase{}
	app := setupApp(t, uc, &fakeCasesUseCase{}, nil)

	resp, env := get(t, app, "/api/salesforce/stats/team?limit=abc")

	if resp.StatusCode != http.StatusBadRequest || env.Code != "invalid_query" {
		t.Fatalf("expected 400 invalid_query, got %d %+v", resp.StatusCode, env)
	}
	if uc.called {
		t.Fatalf("usecase must not be called")
	}
}

func TestGetStats_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"dataset", usecase.ErrInvalidDataset, http.StatusBadRequest, "invalid_dataset"},
		{"dimension", usecase.ErrInvalidDimension, http.StatusBadRequest, "invalid_dimension"},
		{"sort", usecase.ErrInvalidSort, http.StatusBadRequest, "invalid_query"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeStatsUseCase{
				ExecuteFn: func(context.Context, usecase.StatsInput) (*usecase.StatsResult, error) {
					return nil, tt.err
				},
			}
			app := setupApp(t, uc, &fakeCasesUseCase{}, nil)

			resp, env := get(t, app, "/api/salesforce/stats/team")

			if resp.StatusCode != tt.wantStatus || env.Code != tt.wantCode || env.Success {
				t.Fatalf("expected %d %s, got %d %+v", tt.wantStatus, tt.wantCode, resp.StatusCode, env)
			}
		})
	}
}

// ------------------------------------------------------------
// GetCases
// ------------------------------------------------------------

func TestGetCases_ForwardsQuery(t *testing.T) {
	cases := &fakeCasesUseCase{}
	app := setupApp(t, &fakeStatsUseCase{}, cases, nil)

	resp, _ := get(t, app, "/api/salesforce/cases?limit=15&team=Sales")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if cases.lastInput.Limit != 15 || cases.lastInput.Filter.Teams[0] != "Sales" {
		t.Fatalf("unexpected input: %+v", cases.lastInput)
	}
}

func TestGetCases_LimitDefaultAndAll(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"absent uses default", "", usecase.DefaultCaseLimit},
		{"zero keeps all", "?limit=0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases := &fakeCasesUseCase{}
			app := setupApp(t, &fakeStatsUseCase{}, cases, nil)

			resp, _ := get(t, app, "/api/salesforce/cases"+tt.query)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			if cases.lastInput.Limit != tt.want {
				t.Fatalf("expected limit %d, got %d", tt.want, cases.lastInput.Limit)
			}
		})
	}
}

// ------------------------------------------------------------
// Heatmap, dimension values, dashboard (real usecases)
// ------------------------------------------------------------

func sourceWith(events []evdomain.Event, failAmadeus bool) *fakeEventSource {
	return &fakeEventSource{ListFn: func(_ context.Context, f evports.EventFilter) ([]evdomain.Event, error) {
		if failAmadeus && f.Dataset == evdomain.DatasetAmadeus {
			return nil, errors.New("relation amadeus_events does not exist")
		}
		return events, nil
	}}
}

var sample = []evdomain.Event{
	{CaseID: "C1", ActorID: "alice", Team: "Sales", Window: "A", Activity: "Open", Step: "S1", DurationSeconds: 30},
	{CaseID: "C1", ActorID: "bob", Team: "Ops", Window: "B", Activity: "Close", Step: "S2", DurationSeconds: 90},
}

func TestGetHeatmap_Success(t *testing.T) {
	app := setupApp(t, &fakeStatsUseCase{}, &fakeCasesUseCase{}, sourceWith(sample, false))

	resp, env := get(t, app, "/api/salesforce/heatmap?rows=actor&cols=window&value=duration")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", resp.StatusCode, env)
	}
	var hm httpadapter.HeatmapResponse
	if err := json.Unmarshal(env.Data, &hm); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if hm.Rows != "actor" || hm.Max != 90 || hm.Cells[1][1] != 90 {
		t.Fatalf("unexpected heatmap: %+v", hm)
	}
}

func TestGetHeatmap_SameDimensions(t *testing.T) {
	app := setupApp(t, &fakeStatsUseCase{}, &fakeCasesUseCase{}, sourceWith(sample, false))

	resp, env := get(t, app, "/api/salesforce/heatmap?rows=team&cols=team")

	if resp.StatusCode != http.StatusBadRequest || env.Code != "invalid_query" {
		t.Fatalf("expected 400 invalid_query, got %d %+v", resp.StatusCode, env)
	}
}

func TestGetDimensionValues_Success(t *testing.T) {
	app := setupApp(t, &fakeStatsUseCase{}, &fakeCasesUseCase{}, sourceWith(sample, false))

	_, env := get(t, app, "/api/salesforce/dimensions/resources")

	var values []string
	if err := json.Unmarshal(env.Data, &values); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if len(values) != 2 || values[0] != "alice" {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestGetDashboard_PartialFailure(t *testing.T) {
	app := setupApp(t, &fakeStatsUseCase{}, &fakeCasesUseCase{}, sourceWith(sample, true))

	resp, env := get(t, app, "/api/dashboard/metrics")

	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d %+v", resp.StatusCode, env)
	}
	var dash httpadapter.DashboardResponse
	if err := json.Unmarshal(env.Data, &dash); err != nil {
		t.Fatalf("invalid data: %v", err)
	}
	if time.Since(dash.GeneratedAt) > time.Minute {
		t.Fatalf("unexpected generated_at: %v", dash.GeneratedAt)
	}
	if dash.Datasets[0].Overview == nil || dash.Datasets[0].Overview.Records != 2 {
		t.Fatalf("unexpected salesforce block: %+v", dash.Datasets[0])
	}
	if dash.Datasets[1].Error == "" || dash.Datasets[1].Overview != nil {
		t.Fatalf("expected amadeus error block, got %+v", dash.Datasets[1])
	}
}

func TestUnknownRoute_NotFoundEnvelope(t *testing.T) {
	app := setupApp(t, &fakeStatsUseCase{}, &fakeCasesUseCase{}, nil)

	resp, env := get(t, app, "/api/salesforce/unknown/thing")

	if resp.StatusCode != http.StatusNotFound || env.Code != "not_found" || env.Success {
		t.Fatalf("expected 404 not_found, got %d %+v", resp.StatusCode, env)
	}
}
