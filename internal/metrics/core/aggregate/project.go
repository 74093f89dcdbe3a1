package aggregate

import (
	"process-mining-service/internal/events/core/domain"
	mdomain "process-mining-service/internal/metrics/core/domain"
)

// CaseReducers are the statistics behind a CaseStats record.
var CaseReducers = []Reducer{
	TotalDuration,
	AvgDuration,
	MinDuration,
	MedianDuration,
	MaxDuration,
	Variability,
	UniqueActivity,
	UniqueActors,
	UniqueWindows,
	TotalClicks,
	TotalKeypresses,
	TotalCopies,
	TotalPastes,
	Span,
}

// GroupReducers are the statistics behind a GroupStats record.
var GroupReducers = []Reducer{
	TotalDuration,
	AvgDuration,
	UniqueCases,
	UniqueActors,
	UniqueWindows,
	UniqueActivity,
	TotalClicks,
	TotalKeypresses,
	TotalCopies,
	TotalPastes,
}

// ProjectCases aggregates records by case, in first-encounter order.
func ProjectCases(records []domain.Event) []mdomain.CaseStats {
	res := AggregateByKey(records, ByCase, CaseReducers...)

	out := make([]mdomain.CaseStats, 0, res.Len())
	for _, g := range res.groups {
		avg := g.Value(StatAvgDuration)
		lo := g.Value(StatMinDuration)
		mid := g.Value(StatMedianDuration)
		hi := g.Value(StatMaxDuration)
		out = append(out, mdomain.CaseStats{
			CaseID:                g.Key,
			EventCount:            g.Count,
			TotalDurationSeconds:  g.Value(StatTotalDuration),
			TotalDurationHours:    Hours(g.Value(StatTotalDuration)),
			AvgDurationSeconds:    Round2(avg),
			AvgDurationMinutes:    Minutes(avg),
			MinDurationSeconds:    Round2(lo),
			MinDurationMinutes:    Minutes(lo),
			MedianDurationSeconds: Round2(mid),
			MedianDurationMinutes: Minutes(mid),
			MaxDurationSeconds:    Round2(hi),
			MaxDurationMinutes:    Minutes(hi),
			VariabilityRatio:      g.Value(StatVariabilityRatio),
			UniqueActivities:      int(g.Value(StatUniqueActivities)),
			UniqueActors:          int(g.Value(StatUniqueActors)),
			UniqueWindows:         int(g.Value(StatUniqueWindows)),
			Clicks:                int64(g.Value(StatTotalClicks)),
			Keypresses:            int64(g.Value(StatTotalKeypresses)),
			Copies:                int64(g.Value(StatTotalCopies)),
			Pastes:                int64(g.Value(StatTotalPastes)),
			SpanSeconds:           g.Value(StatSpanSeconds),
		})
	}
	return out
}

// ProjectGroups aggregates records by a non-case dimension.
func ProjectGroups(records []domain.Event, dim mdomain.Dimension) ([]mdomain.GroupStats, error) {
	key, ok := KeyFor(dim)
	if !ok {
		return nil, mdomain.ErrUnknownDimension
	}
	res := AggregateByKey(records, key, GroupReducers...)

	out := make([]mdomain.GroupStats, 0, res.Len())
	for _, g := range res.groups {
		total := g.Value(StatTotalDuration)
		avg := g.Value(StatAvgDuration)
		out = append(out, mdomain.GroupStats{
			Dimension:            dim,
			Key:                  g.Key,
			EventCount:           g.Count,
			TotalDurationSeconds: total,
			TotalDurationMinutes: Minutes(total),
			TotalDurationHours:   Hours(total),
			AvgDurationSeconds:   Round2(avg),
			AvgDurationMinutes:   Minutes(avg),
			UniqueCases:          int(g.Value(StatUniqueCases)),
			UniqueActors:         int(g.Value(StatUniqueActors)),
			UniqueWindows:        int(g.Value(StatUniqueWindows)),
			UniqueActivities:     int(g.Value(StatUniqueActivities)),
			Clicks:               int64(g.Value(StatTotalClicks)),
			Keypresses:           int64(g.Value(StatTotalKeypresses)),
			Copies:               int64(g.Value(StatTotalCopies)),
			Pastes:               int64(g.Value(StatTotalPastes)),
		})
	}
	return out, nil
}

// HeatMap values.
const (
	CellCount    = "count"
	CellDuration = "duration"
)

// CrossTab builds a rows x columns matrix of event counts or summed
// durations. Missing combinations are 0.
func CrossTab(records []domain.Event, rowDim, colDim mdomain.Dimension, value string) (mdomain.HeatMap, error) {
	rowKey, ok := KeyFor(rowDim)
	if !ok {
		return mdomain.HeatMap{}, mdomain.ErrUnknownDimension
	}
	colKey, ok := KeyFor(colDim)
	if !ok {
		return mdomain.HeatMap{}, mdomain.ErrUnknownDimension
	}

	hm := mdomain.HeatMap{RowDimension: rowDim, ColumnDimension: colDim, Value: value}
	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)

	for _, e := range records {
		r := normalizeKey(rowKey(e))
		c := normalizeKey(colKey(e))

		ri, ok := rowIdx[r]
		if !ok {
			ri = len(hm.Rows)
			rowIdx[r] = ri
			hm.Rows = append(hm.Rows, r)
			hm.Cells = append(hm.Cells, make([]float64, len(hm.Columns)))
		}
		ci, ok := colIdx[c]
		if !ok {
			ci = len(hm.Columns)
			colIdx[c] = ci
			hm.Columns = append(hm.Columns, c)
			for i := range hm.Cells {
				hm.Cells[i] = append(hm.Cells[i], 0)
			}
		}

		if value == CellDuration {
			hm.Cells[ri][ci] = finite(hm.Cells[ri][ci] + duration(e))
		} else {
			hm.Cells[ri][ci]++
		}
	}

	for _, row := range hm.Cells {
		for _, v := range row {
			hm.Max = max(hm.Max, v)
		}
	}
	return hm, nil
}

// Summarize computes the dataset overview.
func Summarize(records []domain.Event) mdomain.Overview {
	ov := mdomain.Overview{Records: len(records)}
	if len(records) == 0 {
		return ov
	}

	res := AggregateByKey(records, func(domain.Event) string { return "all" },
		TotalDuration, UniqueCases, UniqueActors, DistinctOf("unique_teams", ByTeam))
	all, _ := res.Get("all")

	ov.Cases = int(all.Value(StatUniqueCases))
	ov.Actors = int(all.Value(StatUniqueActors))
	ov.Teams = int(all.Value("unique_teams"))
	ov.TotalDurationSeconds = all.Value(StatTotalDuration)
	ov.TotalDurationHours = Hours(ov.TotalDurationSeconds)
	ov.AvgDurationSeconds = Round2(ov.TotalDurationSeconds / float64(len(records)))
	if ov.Cases > 0 {
		ov.AvgEventsPerCase = Round2(float64(len(records)) / float64(ov.Cases))
	}
	ov.Windows = AggregateByKey(records, ByWindow).Keys()
	ov.Activities = AggregateByKey(records, ByActivity).Keys()
	ov.Applications = AggregateByKey(records, ByApplication).Keys()
	return ov
}
