package fiber

import (
	"time"

	"process-mining-service/internal/metrics/core/domain"
)

// CaseStatsResponse is one row of the case table
type CaseStatsResponse struct {
	CaseID                string  `json:"case_id" example:"C1"`
	EventCount            int     `json:"event_count" example:"3"`
	TotalDurationSeconds  float64 `json:"total_duration_seconds" example:"360"`
	TotalDurationHours    float64 `json:"total_duration_hours" example:"0.1"`
	AvgDurationSeconds    float64 `json:"avg_duration_seconds" example:"120"`
	AvgDurationMinutes    float64 `json:"avg_duration_minutes" example:"2"`
	MinDurationSeconds    float64 `json:"min_duration_seconds" example:"60"`
	MinDurationMinutes    float64 `json:"min_duration_minutes" example:"1"`
	MedianDurationSeconds float64 `json:"median_duration_seconds" example:"120"`
	MedianDurationMinutes float64 `json:"median_duration_minutes" example:"2"`
	MaxDurationSeconds    float64 `json:"max_duration_seconds" example:"180"`
	MaxDurationMinutes    float64 `json:"max_duration_minutes" example:"3"`
	VariabilityRatio      float64 `json:"variability_ratio" example:"0.41"`
	UniqueActivities      int     `json:"unique_activities"`
	UniqueActors          int     `json:"unique_actors"`
	UniqueWindows         int     `json:"unique_windows"`
	Clicks                int64   `json:"mouse_click_count"`
	Keypresses            int64   `json:"keypress_count"`
	Copies                int64   `json:"copy_count"`
	Pastes                int64   `json:"paste_count"`
	SpanSeconds           float64 `json:"span_seconds"`
}

// GroupStatsResponse is one group of a non-case dimension
type GroupStatsResponse struct {
	Dimension            string  `json:"dimension" example:"team"`
	Key                  string  `json:"key" example:"Sales"`
	EventCount           int     `json:"event_count"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	TotalDurationHours   float64 `json:"total_duration_hours"`
	AvgDurationSeconds   float64 `json:"avg_duration_seconds"`
	AvgDurationMinutes   float64 `json:"avg_duration_minutes"`
	UniqueCases          int     `json:"unique_cases"`
	UniqueActors         int     `json:"unique_actors"`
	UniqueWindows        int     `json:"unique_windows"`
	UniqueActivities     int     `json:"unique_activities"`
	Clicks               int64   `json:"mouse_click_count"`
	Keypresses           int64   `json:"keypress_count"`
	Copies               int64   `json:"copy_count"`
	Pastes               int64   `json:"paste_count"`
}

type HeatmapResponse struct {
	Rows    string      `json:"rows" example:"step"`
	Columns string      `json:"columns" example:"team"`
	Value   string      `json:"value" example:"count"`
	RowKeys []string    `json:"row_keys"`
	ColKeys []string    `json:"column_keys"`
	Cells   [][]float64 `json:"cells"`
	Max     float64     `json:"max"`
}

type OverviewResponse struct {
	Records              int      `json:"records"`
	Cases                int      `json:"cases"`
	Actors               int      `json:"actors"`
	Teams                int      `json:"teams"`
	TotalDurationSeconds float64  `json:"total_duration_seconds"`
	TotalDurationHours   float64  `json:"total_duration_hours"`
	AvgDurationSeconds   float64  `json:"avg_duration_seconds"`
	AvgEventsPerCase     float64  `json:"avg_events_per_case"`
	Windows              []string `json:"windows"`
	Activities           []string `json:"activities"`
	Applications         []string `json:"applications"`
}

type DatasetDashboardResponse struct {
	Dataset       string               `json:"dataset" example:"salesforce"`
	Overview      *OverviewResponse    `json:"overview,omitempty"`
	TopCases      []CaseStatsResponse  `json:"top_cases,omitempty"`
	TopActors     []GroupStatsResponse `json:"top_actors,omitempty"`
	TopTeams      []GroupStatsResponse `json:"top_teams,omitempty"`
	TopWindows    []GroupStatsResponse `json:"top_windows,omitempty"`
	TopActivities []GroupStatsResponse `json:"top_activities,omitempty"`
	Error         string               `json:"error,omitempty"`
}

type DashboardResponse struct {
	GeneratedAt time.Time                  `json:"generated_at"`
	Datasets    []DatasetDashboardResponse `json:"datasets"`
}

func toCaseResponses(cases []domain.CaseStats) []CaseStatsResponse {
	out := make([]CaseStatsResponse, len(cases))
	for i, c := range cases {
		out[i] = CaseStatsResponse{
			CaseID:                c.CaseID,
			EventCount:            c.EventCount,
			TotalDurationSeconds:  c.TotalDurationSeconds,
			TotalDurationHours:    c.TotalDurationHours,
			AvgDurationSeconds:    c.AvgDurationSeconds,
			AvgDurationMinutes:    c.AvgDurationMinutes,
			MinDurationSeconds:    c.MinDurationSeconds,
			MinDurationMinutes:    c.MinDurationMinutes,
			MedianDurationSeconds: c.MedianDurationSeconds,
			MedianDurationMinutes: c.MedianDurationMinutes,
			MaxDurationSeconds:    c.MaxDurationSeconds,
			MaxDurationMinutes:    c.MaxDurationMinutes,
			VariabilityRatio:      c.VariabilityRatio,
			UniqueActivities:      c.UniqueActivities,
			UniqueActors:          c.UniqueActors,
			UniqueWindows:         c.UniqueWindows,
			Clicks:                c.Clicks,
			Keypresses:            c.Keypresses,
			Copies:                c.Copies,
			Pastes:                c.Pastes,
			SpanSeconds:           c.SpanSeconds,
		}
	}
	return out
}

func toGroupResponses(groups []domain.GroupStats) []GroupStatsResponse {
	out := make([]GroupStatsResponse, len(groups))
	for i, g := range groups {
		out[i] = GroupStatsResponse{
			Dimension:            string(g.Dimension),
			Key:                  g.Key,
			EventCount:           g.EventCount,
			TotalDurationSeconds: g.TotalDurationSeconds,
			TotalDurationMinutes: g.TotalDurationMinutes,
			TotalDurationHours:   g.TotalDurationHours,
			AvgDurationSeconds:   g.AvgDurationSeconds,
			AvgDurationMinutes:   g.AvgDurationMinutes,
			UniqueCases:          g.UniqueCases,
			UniqueActors:         g.UniqueActors,
			UniqueWindows:        g.UniqueWindows,
			UniqueActivities:     g.UniqueActivities,
			Clicks:               g.Clicks,
			Keypresses:           g.Keypresses,
			Copies:               g.Copies,
			Pastes:               g.Pastes,
		}
	}
	return out
}

func toHeatmapResponse(hm *domain.HeatMap) HeatmapResponse {
	return HeatmapResponse{
		Rows:    string(hm.RowDimension),
		Columns: string(hm.ColumnDimension),
		Value:   hm.Value,
		RowKeys: hm.Rows,
		ColKeys: hm.Columns,
		Cells:   hm.Cells,
		Max:     hm.Max,
	}
}

func toOverviewResponse(ov *domain.Overview) *OverviewResponse {
	if ov == nil {
		return nil
	}
	return &OverviewResponse{
		Records:              ov.Records,
		Cases:                ov.Cases,
		Actors:               ov.Actors,
		Teams:                ov.Teams,
		TotalDurationSeconds: ov.TotalDurationSeconds,
		TotalDurationHours:   ov.TotalDurationHours,
		AvgDurationSeconds:   ov.AvgDurationSeconds,
		AvgEventsPerCase:     ov.AvgEventsPerCase,
		Windows:              ov.Windows,
		Activities:           ov.Activities,
		Applications:         ov.Applications,
	}
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		GeneratedAt: d.GeneratedAt,
		Datasets:    make([]DatasetDashboardResponse, 0, len(d.Datasets)),
	}
	for _, b := range d.Datasets {
		block := DatasetDashboardResponse{
			Dataset:  b.Dataset,
			Overview: toOverviewResponse(b.Overview),
			Error:    b.Error,
		}
		if b.Error == "" {
			block.TopCases = toCaseResponses(b.TopCases)
			block.TopActors = toGroupResponses(b.TopActors)
			block.TopTeams = toGroupResponses(b.TopTeams)
			block.TopWindows = toGroupResponses(b.TopWindows)
			block.TopActivities = toGroupResponses(b.TopActivities)
		}
		resp.Datasets = append(resp.Datasets, block)
	}
	return resp
}
