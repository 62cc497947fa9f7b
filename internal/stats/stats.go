// Package stats provides the pure statistical functions used by the
// estimation engine. Functions operate on plain float slices and know
// nothing about features or tracked-time entries.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyInput is returned when a statistic is requested over zero values.
// Callers that can legitimately see empty data (seed fallback) must branch
// before calling, or convert this error into the fallback path.
var ErrEmptyInput = errors.New("stats: empty input")

// Mean returns the arithmetic mean of values
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median returns the middle value of the sorted input, averaging the two
// middle values for even-length input
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	sorted := sortedCopy(values)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Percentile returns the p-th percentile (0 <= p <= 100) using linear
// interpolation between closest ranks: rank = p/100 * (n-1).
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	if p < 0 || p > 100 {
		return 0, errors.New("stats: percentile out of range")
	}
	sorted := sortedCopy(values)
	if len(sorted) == 1 {
		return sorted[0], nil
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := math.Floor(rank)
	upper := math.Ceil(rank)
	if lower == upper {
		return sorted[int(rank)], nil
	}
	frac := rank - lower
	return sorted[int(lower)]*(1-frac) + sorted[int(upper)]*frac, nil
}

// StdDev returns the population standard deviation (dividing by n, not
// n-1). Population stddev is deterministic for the single-element samples
// common in this domain, where the sample formula would divide by zero.
func StdDev(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	mean, _ := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values))), nil
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
