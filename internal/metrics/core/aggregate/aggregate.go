// Package aggregate groups event records by a key and reduces every group to
// a set of named statistics. All functions are pure: inputs are never
// mutated and results share no state, so they are safe for concurrent use.
package aggregate

import (
	"slices"
	"strings"

	"process-mining-service/internal/events/core/domain"
)

// KeyFunc maps a record to its group key. Blank keys are grouped under
// domain.UnknownLabel.
type KeyFunc func(e domain.Event) string

// Accumulator folds the records of one group into a single value.
type Accumulator interface {
	Add(e domain.Event)
	Value() float64
}

// Reducer names a statistic and creates a fresh accumulator per group.
type Reducer struct {
	Name string
	New  func() Accumulator
}

type Group struct {
	Key    string
	Count  int
	Values map[string]float64
}

// Value returns the named statistic. StatCount is always available.
func (g Group) Value(stat string) float64 {
	if stat == StatCount {
		return float64(g.Count)
	}
	return g.Values[stat]
}

// Result holds groups in first-encounter order of their keys.
type Result struct {
	groups []Group
	index  map[string]int
}

func (r *Result) Len() int { return len(r.groups) }

func (r *Result) Keys() []string {
	keys := make([]string, len(r.groups))
	for i, g := range r.groups {
		keys[i] = g.Key
	}
	return keys
}

func (r *Result) Get(key string) (Group, bool) {
	i, ok := r.index[key]
	if !ok {
		return Group{}, false
	}
	return r.groups[i], true
}

// Groups returns a copy of the groups in first-encounter order.
func (r *Result) Groups() []Group {
	return slices.Clone(r.groups)
}

type groupState struct {
	key   string
	count int
	accs  []Accumulator
}

// AggregateByKey buckets records by key and runs every reducer over each
// bucket. An empty input yields an empty result.
func AggregateByKey(records []domain.Event, key KeyFunc, reducers ...Reducer) *Result {
	index := make(map[string]int)
	var states []*groupState

	for _, e := range records {
		k := normalizeKey(key(e))
		i, ok := index[k]
		if !ok {
			st := &groupState{key: k, accs: make([]Accumulator, len(reducers))}
			for j, r := range reducers {
				st.accs[j] = r.New()
			}
			i = len(states)
			index[k] = i
			states = append(states, st)
		}

		st := states[i]
		st.count++
		for _, acc := range st.accs {
			acc.Add(e)
		}
	}

	res := &Result{groups: make([]Group, len(states)), index: index}
	for i, st := range states {
		values := make(map[string]float64, len(reducers))
		for j, r := range reducers {
			values[r.Name] = st.accs[j].Value()
		}
		res.groups[i] = Group{Key: st.key, Count: st.count, Values: values}
	}
	return res
}

func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if k == "" {
		return domain.UnknownLabel
	}
	return k
}
