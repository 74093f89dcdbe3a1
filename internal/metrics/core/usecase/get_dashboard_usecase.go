package usecase

import (
	"context"
	"time"

	evdomain "process-mining-service/internal/events/core/domain"
	evports "process-mining-service/internal/events/core/ports"
	"process-mining-service/internal/metrics/core/aggregate"
	"process-mining-service/internal/metrics/core/domain"
	"process-mining-service/internal/metrics/core/ports"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardTopCases  = 5
	dashboardTopGroups = 10
)

type GetDashboardUseCase struct {
	source ports.EventSourcePort
	now    func() time.Time
}

func NewGetDashboardUseCase(source ports.EventSourcePort) *GetDashboardUseCase {
	return &GetDashboardUseCase{source: source, now: time.Now}
}

// Execute loads every dataset in parallel. A dataset that fails to load is
// reported through its Error field and does not fail the others.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*domain.Dashboard, error) {
	blocks := make([]domain.DatasetDashboard, len(evdomain.Datasets))

	g, gctx := errgroup.WithContext(ctx)
	for i, ds := range evdomain.Datasets {
		i, ds := i, ds
		g.Go(func() error {
			blocks[i] = uc.datasetBlock(gctx, ds)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &domain.Dashboard{GeneratedAt: uc.now().UTC(), Datasets: blocks}, nil
}

func (uc *GetDashboardUseCase) datasetBlock(ctx context.Context, ds evdomain.Dataset) domain.DatasetDashboard {
	block := domain.DatasetDashboard{Dataset: string(ds)}

	events, err := uc.source.ListEvents(ctx, evports.EventFilter{Dataset: ds})
	if err != nil {
		log.Warn().Err(err).Str("dataset", string(ds)).Msg("dashboard dataset unavailable")
		block.Error = err.Error()
		return block
	}

	ov := aggregate.Summarize(events)
	block.Overview = &ov
	block.TopCases = aggregate.TopNFunc(aggregate.ProjectCases(events), dashboardTopCases,
		func(c domain.CaseStats) float64 { return c.TotalDurationSeconds })

	byDuration := func(g domain.GroupStats) float64 { return g.TotalDurationSeconds }
	byCount := func(g domain.GroupStats) float64 { return float64(g.EventCount) }
	top := func(dim domain.Dimension, value func(domain.GroupStats) float64) []domain.GroupStats {
		groups, _ := aggregate.ProjectGroups(events, dim)
		return aggregate.TopNFunc(groups, dashboardTopGroups, value)
	}
	block.TopActors = top(domain.DimensionActor, byDuration)
	block.TopTeams = top(domain.DimensionTeam, byDuration)
	block.TopWindows = top(domain.DimensionWindow, byDuration)
	block.TopActivities = top(domain.DimensionActivity, byCount)
	return block
}
