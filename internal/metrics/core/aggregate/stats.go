package aggregate

import (
	"math"
	"slices"
)

const maxRoundable = 1 << 52

// finite saturates overflowed sums at the largest float and maps NaN to 0.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

func Sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return finite(s)
}

// Mean is 0 for an empty list.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Median averages the two central values when the list has even length.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	lo, hi := sorted[n/2-1], sorted[n/2]
	return lo + (hi-lo)/2
}

func PopulationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return finite(ss / float64(len(values)))
}

func PopulationStdDev(values []float64) float64 {
	return math.Sqrt(PopulationVariance(values))
}

// VariabilityRatio is the coefficient of variation, 0 when the mean is not positive.
func VariabilityRatio(values []float64) float64 {
	m := Mean(values)
	if m <= 0 {
		return 0
	}
	return PopulationStdDev(values) / m
}

// Round2 leaves values too large to carry cents unchanged.
func Round2(v float64) float64 {
	if math.Abs(v) >= maxRoundable {
		return v
	}
	return math.Round(v*100) / 100
}

func Minutes(seconds float64) float64 { return Round2(seconds / 60) }

func Hours(seconds float64) float64 { return Round2(seconds / 3600) }
