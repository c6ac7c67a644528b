// Package stats computes summary values over integer samples.
package stats

import (
	"errors"
	"slices"
)

var (
	// ErrEmptySample is returned when a statistic needs at least one value.
	ErrEmptySample = errors.New("stats: empty sample")
	// ErrUnsorted is returned by Median for input that is not sorted ascending.
	ErrUnsorted = errors.New("stats: sample not sorted")
)

// Median returns the middle value of sorted. For an even number of values it
// is the mean of the two middle ones. The input must already be sorted
// ascending; Median checks this but never sorts.
func Median(sorted []int) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptySample
	}
	if !slices.IsSorted(sorted) {
		return 0, ErrUnsorted
	}
	if n%2 == 0 {
		return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2, nil
	}
	return float64(sorted[n/2]), nil
}

// Mode returns the most frequent value and its count. Ties go to the
// smallest value. Input order does not matter.
func Mode(values []int) (value int, count int, err error) {
	if len(values) == 0 {
		return 0, 0, ErrEmptySample
	}

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	first := true
	for v, c := range counts {
		if first || c > count || (c == count && v < value) {
			value, count = v, c
			first = false
		}
	}
	return value, count, nil
}
