package aggregate

import (
	"slices"
)

// TopN sorts groups by stat, highest first, and keeps the first n. Ties keep
// their input order. n <= 0 keeps every group. The input is not modified.
func TopN(groups []Group, n int, stat string) []Group {
	return TopNFunc(groups, n, func(g Group) float64 { return g.Value(stat) })
}

// TopNFunc is TopN over any record type.
func TopNFunc[T any](items []T, n int, value func(T) float64) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		va, vb := value(a), value(b)
		switch {
		case va > vb:
			return -1
		case va < vb:
			return 1
		default:
			return 0
		}
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
