package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"process-mining-service/internal/events/core/domain"
)

var ErrMissingColumn = errors.New("missing required column")

// Header names are matched after normalization (lower case, spaces -> "_"),
// so "Start Time", "Start_Time" and "start_time" are the same column.
type columnSet struct {
	caseID      []string
	actor       []string
	team        []string
	application []string
	window      []string
	activity    []string
	step        []string
	duration    []string
	hours       []string
	clicks      []string
	keypresses  []string
	copies      []string
	pastes      []string
	start       []string
	end         []string
}

var baseColumns = columnSet{
	caseID:      []string{"case_id"},
	team:        []string{"team", "team_name"},
	application: []string{"process_name", "application"},
	window:      []string{"window"},
	activity:    []string{"activity", "activity_type"},
	step:        []string{"step"},
	duration:    []string{"duration_seconds", "duration"},
	hours:       []string{"duration_hours"},
	clicks:      []string{"mouse_click_count", "clicks"},
	keypresses:  []string{"keypress_count", "keypresses"},
	copies:      []string{"copy_count"},
	pastes:      []string{"paste_count"},
	start:       []string{"start_time", "window_start"},
	end:         []string{"end_time", "endtime", "window_end"},
}

func columnsFor(ds domain.Dataset) columnSet {
	c := baseColumns
	switch ds {
	case domain.DatasetAmadeus:
		c.actor = []string{"upn", "agent_profile_id", "resource", "actor_id"}
	default:
		c.actor = []string{"resource", "agent_profile_id", "upn", "actor_id"}
	}
	return c
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a header-first delimited file into Event Records. Numeric
// fields that are absent or unparsable become 0; timestamps that cannot be
// parsed are left nil.
func (p *Parser) Parse(ds domain.Dataset, r io.Reader) ([]domain.Event, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	cols := columnsFor(ds)
	if _, ok := lookup(index, cols.caseID); !ok {
		return nil, fmt.Errorf("%w: Case_ID", ErrMissingColumn)
	}

	var events []domain.Event
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		rw := row{record: record, index: index}
		e := domain.Event{
			CaseID:      rw.text(cols.caseID),
			ActorID:     rw.text(cols.actor),
			Team:        rw.text(cols.team),
			Application: rw.text(cols.application),
			Window:      rw.text(cols.window),
			Activity:    rw.text(cols.activity),
			Step:        rw.text(cols.step),
			MouseClicks: rw.integer(cols.clicks),
			Keypresses:  rw.integer(cols.keypresses),
			Copies:      rw.integer(cols.copies),
			Pastes:      rw.integer(cols.pastes),
			StartTime:   rw.timestamp(cols.start),
			EndTime:     rw.timestamp(cols.end),
		}
		if _, ok := lookup(index, cols.duration); ok {
			e.DurationSeconds = rw.number(cols.duration)
		} else {
			e.DurationSeconds = rw.number(cols.hours) * 3600
		}
		if math.IsInf(e.DurationSeconds, 0) {
			e.DurationSeconds = 0
		}

		events = append(events, e)
	}

	return events, nil
}

type row struct {
	record []string
	index  map[string]int
}

func (r row) text(names []string) string {
	for _, n := range names {
		if i, ok := r.index[n]; ok && i < len(r.record) {
			if v := strings.TrimSpace(r.record[i]); v != "" {
				return v
			}
		}
	}
	return ""
}

func (r row) number(names []string) float64 {
	v, err := strconv.ParseFloat(r.text(names), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// integer truncates like the ingestion scripts did ("3.7" -> 3).
func (r row) integer(names []string) int64 {
	return int64(r.number(names))
}

func (r row) timestamp(names []string) *time.Time {
	s := r.text(names)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func lookup(index map[string]int, names []string) (int, bool) {
	for _, n := range names {
		if i, ok := index[n]; ok {
			return i, true
		}
	}
	return 0, false
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
