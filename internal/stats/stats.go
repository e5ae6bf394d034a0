// Package stats holds the in-memory reductions used by the reporting
// endpoints. All functions accept empty input and return zero values
// rather than erroring.
package stats

import "time"

// Average returns the arithmetic mean of vals, 0 for an empty slice.
func Average(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// AverageNonNil averages the non-nil values. Nil entries are excluded,
// not treated as zero. Returns 0 when no value is present.
func AverageNonNil(vals []*float64) float64 {
	var sum float64
	var n int
	for _, v := range vals {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// SumInt64 sums the non-nil values.
func SumInt64(vals []*int64) int64 {
	var sum int64
	for _, v := range vals {
		if v != nil {
			sum += *v
		}
	}
	return sum
}

// SumFloat64 sums the non-nil values.
func SumFloat64(vals []*float64) float64 {
	var sum float64
	for _, v := range vals {
		if v != nil {
			sum += *v
		}
	}
	return sum
}

// Distribution counts occurrences of each distinct value. Nil and empty
// values are excluded entirely; they do not get a bucket of their own.
func Distribution(vals []*string) map[string]int {
	dist := make(map[string]int)
	for _, v := range vals {
		if v == nil || *v == "" {
			continue
		}
		dist[*v]++
	}
	return dist
}

// CountSince counts timestamps falling within [now-window, now].
func CountSince(times []time.Time, now time.Time, window time.Duration) int {
	cutoff := now.Add(-window)
	var n int
	for _, ts := range times {
		if !ts.Before(cutoff) && !ts.After(now) {
			n++
		}
	}
	return n
}

// Percent returns numerator/denominator as a percentage, 0 when the
// denominator is 0.
func Percent(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator * 100
}
