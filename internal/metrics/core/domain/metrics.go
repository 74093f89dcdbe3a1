package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrUnknownDimension = errors.New("unknown dimension")

// Dimension is the field events are grouped by.
type Dimension string

const (
	DimensionCase        Dimension = "case"
	DimensionActor       Dimension = "actor"
	DimensionTeam        Dimension = "team"
	DimensionWindow      Dimension = "window"
	DimensionApplication Dimension = "application"
	DimensionActivity    Dimension = "activity"
	DimensionStep        Dimension = "step"
)

var Dimensions = []Dimension{
	DimensionCase,
	DimensionActor,
	DimensionTeam,
	DimensionWindow,
	DimensionApplication,
	DimensionActivity,
	DimensionStep,
}

var dimensionAliases = map[string]Dimension{
	"cases":        DimensionCase,
	"actors":       DimensionActor,
	"agent":        DimensionActor,
	"agents":       DimensionActor,
	"resource":     DimensionActor,
	"resources":    DimensionActor,
	"teams":        DimensionTeam,
	"windows":      DimensionWindow,
	"applications": DimensionApplication,
	"process":      DimensionApplication,
	"activities":   DimensionActivity,
	"steps":        DimensionStep,
}

func ParseDimension(s string) (Dimension, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Dimensions {
		if string(d) == s {
			return d, nil
		}
	}
	if d, ok := dimensionAliases[s]; ok {
		return d, nil
	}
	return "", ErrUnknownDimension
}

// CaseStats is the per-case derived record.
type CaseStats struct {
	CaseID                string
	EventCount            int
	TotalDurationSeconds  float64
	TotalDurationHours    float64
	AvgDurationSeconds    float64
	AvgDurationMinutes    float64
	MinDurationSeconds    float64
	MinDurationMinutes    float64
	MedianDurationSeconds float64
	MedianDurationMinutes float64
	MaxDurationSeconds    float64
	MaxDurationMinutes    float64
	VariabilityRatio      float64
	UniqueActivities      int // variant count
	UniqueActors          int
	UniqueWindows         int
	Clicks                int64
	Keypresses            int64
	Copies                int64
	Pastes                int64
	SpanSeconds           float64 // first start to last end, 0 without timestamps
}

// GroupStats is the derived record for every non-case dimension.
type GroupStats struct {
	Dimension            Dimension
	Key                  string
	EventCount           int
	TotalDurationSeconds float64
	TotalDurationMinutes float64
	TotalDurationHours   float64
	AvgDurationSeconds   float64
	AvgDurationMinutes   float64
	UniqueCases          int
	UniqueActors         int
	UniqueWindows        int
	UniqueActivities     int
	Clicks               int64
	Keypresses           int64
	Copies               int64
	Pastes               int64
}

// HeatMap is a row x column matrix, rows and columns in first-encounter order.
type HeatMap struct {
	RowDimension    Dimension
	ColumnDimension Dimension
	Value           string
	Rows            []string
	Columns         []string
	Cells           [][]float64 // Cells[row][col]
	Max             float64
}

// Overview summarizes one dataset.
type Overview struct {
	Records              int
	Cases                int
	Actors               int
	Teams                int
	TotalDurationSeconds float64
	TotalDurationHours   float64
	AvgDurationSeconds   float64
	AvgEventsPerCase     float64
	Windows              []string
	Activities           []string
	Applications         []string
}

// DatasetDashboard is one dataset's block of the dashboard. Error is set
// instead of the statistics when the dataset could not be loaded.
type DatasetDashboard struct {
	Dataset       string
	Overview      *Overview
	TopCases      []CaseStats
	TopActors     []GroupStats
	TopTeams      []GroupStats
	TopWindows    []GroupStats
	TopActivities []GroupStats
	Error         string
}

type Dashboard struct {
	GeneratedAt time.Time
	Datasets    []DatasetDashboard
}
