package aggregate

import (
	"math"
	"time"

	"process-mining-service/internal/events/core/domain"
)

const (
	StatCount            = "count"
	StatTotalDuration    = "total_duration"
	StatAvgDuration      = "avg_duration"
	StatMinDuration      = "min_duration"
	StatMedianDuration   = "median_duration"
	StatMaxDuration      = "max_duration"
	StatVariabilityRatio = "variability_ratio"
	StatTotalClicks      = "total_clicks"
	StatTotalKeypresses  = "total_keypresses"
	StatTotalCopies      = "total_copies"
	StatTotalPastes      = "total_pastes"
	StatUniqueCases      = "unique_cases"
	StatUniqueActors     = "unique_actors"
	StatUniqueWindows    = "unique_windows"
	StatUniqueActivities = "unique_activities"
	StatSpanSeconds      = "span_seconds"
)

// duration reads a record's seconds; non-finite values count as 0.
func duration(e domain.Event) float64 {
	if math.IsNaN(e.DurationSeconds) || math.IsInf(e.DurationSeconds, 0) {
		return 0
	}
	return e.DurationSeconds
}

var (
	TotalDuration   = SumOf(StatTotalDuration, duration)
	AvgDuration     = Reducer{Name: StatAvgDuration, New: func() Accumulator { return &meanAcc{field: duration} }}
	MinDuration     = Reducer{Name: StatMinDuration, New: func() Accumulator { return &extremeAcc{field: duration, less: true} }}
	MaxDuration     = Reducer{Name: StatMaxDuration, New: func() Accumulator { return &extremeAcc{field: duration} }}
	MedianDuration  = collectDurations(StatMedianDuration, Median)
	Variability     = collectDurations(StatVariabilityRatio, func(v []float64) float64 { return Round2(VariabilityRatio(v)) })
	TotalClicks     = SumOf(StatTotalClicks, func(e domain.Event) float64 { return float64(e.MouseClicks) })
	TotalKeypresses = SumOf(StatTotalKeypresses, func(e domain.Event) float64 { return float64(e.Keypresses) })
	TotalCopies     = SumOf(StatTotalCopies, func(e domain.Event) float64 { return float64(e.Copies) })
	TotalPastes     = SumOf(StatTotalPastes, func(e domain.Event) float64 { return float64(e.Pastes) })
	UniqueCases     = DistinctOf(StatUniqueCases, ByCase)
	UniqueActors    = DistinctOf(StatUniqueActors, ByActor)
	UniqueWindows   = DistinctOf(StatUniqueWindows, ByWindow)
	UniqueActivity  = DistinctOf(StatUniqueActivities, ByActivity)
	Span            = Reducer{Name: StatSpanSeconds, New: func() Accumulator { return &spanAcc{} }}
)

// SumOf sums field over the group.
func SumOf(name string, field func(domain.Event) float64) Reducer {
	return Reducer{Name: name, New: func() Accumulator { return &sumAcc{field: field} }}
}

// DistinctOf counts distinct keys within the group. Blank keys count as Unknown.
func DistinctOf(name string, key KeyFunc) Reducer {
	return Reducer{Name: name, New: func() Accumulator {
		return &distinctAcc{key: key, seen: make(map[string]struct{})}
	}}
}

func collectDurations(name string, fn func([]float64) float64) Reducer {
	return Reducer{Name: name, New: func() Accumulator { return &collectAcc{fn: fn} }}
}

type sumAcc struct {
	field func(domain.Event) float64
	sum   float64
}

func (a *sumAcc) Add(e domain.Event) { a.sum += a.field(e) }
func (a *sumAcc) Value() float64     { return finite(a.sum) }

type meanAcc struct {
	field func(domain.Event) float64
	sum   float64
	n     int
}

func (a *meanAcc) Add(e domain.Event) {
	a.sum += a.field(e)
	a.n++
}

func (a *meanAcc) Value() float64 {
	if a.n == 0 {
		return 0
	}
	return finite(a.sum) / float64(a.n)
}

type extremeAcc struct {
	field func(domain.Event) float64
	less  bool
	v     float64
	set   bool
}

func (a *extremeAcc) Add(e domain.Event) {
	v := a.field(e)
	switch {
	case !a.set:
		a.v, a.set = v, true
	case a.less && v < a.v, !a.less && v > a.v:
		a.v = v
	}
}

func (a *extremeAcc) Value() float64 { return a.v }

type collectAcc struct {
	fn     func([]float64) float64
	values []float64
}

func (a *collectAcc) Add(e domain.Event) { a.values = append(a.values, duration(e)) }
func (a *collectAcc) Value() float64     { return a.fn(a.values) }

type distinctAcc struct {
	key  KeyFunc
	seen map[string]struct{}
}

func (a *distinctAcc) Add(e domain.Event) { a.seen[normalizeKey(a.key(e))] = struct{}{} }
func (a *distinctAcc) Value() float64     { return float64(len(a.seen)) }

// spanAcc measures from the earliest start to the latest end (or start when
// the end is missing). Records without timestamps are ignored.
type spanAcc struct {
	first, last time.Time
}

func (a *spanAcc) Add(e domain.Event) {
	if e.StartTime == nil {
		return
	}
	start := *e.StartTime
	end := start
	if e.EndTime != nil && e.EndTime.After(start) {
		end = *e.EndTime
	}
	if a.first.IsZero() || start.Before(a.first) {
		a.first = start
	}
	if end.After(a.last) {
		a.last = end
	}
}

func (a *spanAcc) Value() float64 {
	if a.first.IsZero() {
		return 0
	}
	return math.Max(a.last.Sub(a.first).Seconds(), 0)
}
