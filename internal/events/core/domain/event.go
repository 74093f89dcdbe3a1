package domain

import (
	"errors"
	"math"
	"strings"
	"time"
)

// UnknownLabel fills required labels that are missing from source data.
const UnknownLabel = "Unknown"

var ErrUnknownDataset = errors.New("unknown dataset")

type Dataset string

const (
	DatasetSalesforce Dataset = "salesforce"
	DatasetAmadeus    Dataset = "amadeus"
)

// Datasets lists every dataset served by the API, in display order.
var Datasets = []Dataset{DatasetSalesforce, DatasetAmadeus}

func ParseDataset(s string) (Dataset, error) {
	switch Dataset(strings.ToLower(strings.TrimSpace(s))) {
	case DatasetSalesforce:
		return DatasetSalesforce, nil
	case DatasetAmadeus:
		return DatasetAmadeus, nil
	default:
		return "", ErrUnknownDataset
	}
}

// Table is the event table that holds the dataset. Only whitelisted names are returned.
func (d Dataset) Table() string {
	switch d {
	case DatasetSalesforce:
		return "salesforce_events"
	case DatasetAmadeus:
		return "amadeus_events"
	default:
		return ""
	}
}

// Event is one observed user action.
type Event struct {
	CaseID      string
	ActorID     string
	Team        string // optional
	Application string // optional, process name
	Window      string
	Activity    string
	Step        string // optional

	DurationSeconds float64
	MouseClicks     int64
	Keypresses      int64
	Copies          int64
	Pastes          int64

	StartTime *time.Time
	EndTime   *time.Time
}

// Normalize returns a copy with labels trimmed, required labels default-filled
// and negative measurements clamped to zero.
func Normalize(e Event) Event {
	e.CaseID = orUnknown(e.CaseID)
	e.ActorID = orUnknown(e.ActorID)
	e.Window = orUnknown(e.Window)
	e.Activity = orUnknown(e.Activity)
	e.Team = strings.TrimSpace(e.Team)
	e.Application = strings.TrimSpace(e.Application)
	e.Step = strings.TrimSpace(e.Step)

	if e.DurationSeconds < 0 || math.IsNaN(e.DurationSeconds) || math.IsInf(e.DurationSeconds, 0) {
		e.DurationSeconds = 0
	}
	e.MouseClicks = max(e.MouseClicks, 0)
	e.Keypresses = max(e.Keypresses, 0)
	e.Copies = max(e.Copies, 0)
	e.Pastes = max(e.Pastes, 0)

	if e.StartTime != nil {
		t := e.StartTime.UTC()
		e.StartTime = &t
	}
	if e.EndTime != nil {
		t := e.EndTime.UTC()
		e.EndTime = &t
	}
	return e
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownLabel
	}
	return s
}
