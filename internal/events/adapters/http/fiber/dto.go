package fiber

import (
	"time"

	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/usecase"
)

// ImportEventsResponse reports a dataset replacement
// @Description Result of a CSV import
type ImportEventsResponse struct {
	RunID    string `json:"run_id" example:"7d7b6a7e-4c1e-4a55-9a89-2f4c3c1f0b1d"`
	Dataset  string `json:"dataset" example:"salesforce"`
	Inserted int    `json:"inserted" example:"1250"`
	Batches  int    `json:"batches" example:"2"`
}

// EventResponse is one stored event
type EventResponse struct {
	CaseID          string     `json:"case_id"`
	ActorID         string     `json:"actor_id"`
	Team            string     `json:"team,omitempty"`
	Application     string     `json:"application,omitempty"`
	Window          string     `json:"window"`
	Activity        string     `json:"activity"`
	Step            string     `json:"step,omitempty"`
	DurationSeconds float64    `json:"duration_seconds"`
	MouseClicks     int64      `json:"mouse_click_count"`
	Keypresses      int64      `json:"keypress_count"`
	Copies          int64      `json:"copy_count"`
	Pastes          int64      `json:"paste_count"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
}

func toImportResponse(r usecase.ReplaceResult) ImportEventsResponse {
	return ImportEventsResponse{
		RunID:    r.RunID,
		Dataset:  string(r.Dataset),
		Inserted: r.Inserted,
		Batches:  r.Batches,
	}
}

func toEventResponses(events []domain.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = EventResponse{
			CaseID:          e.CaseID,
			ActorID:         e.ActorID,
			Team:            e.Team,
			Application:     e.Application,
			Window:          e.Window,
			Activity:        e.Activity,
			Step:            e.Step,
			DurationSeconds: e.DurationSeconds,
			MouseClicks:     e.MouseClicks,
			Keypresses:      e.Keypresses,
			Copies:          e.Copies,
			Pastes:          e.Pastes,
			StartTime:       e.StartTime,
			EndTime:         e.EndTime,
		}
	}
	return out
}
