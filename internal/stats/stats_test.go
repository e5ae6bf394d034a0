package stats

import (
	"math"
	"testing"
	"time"
)

func fp(v float64) *float64 { return &v }
func sp(v string) *string   { return &v }
func ip(v int64) *int64     { return &v }

func TestAverage(t *testing.T) {
	tests := []struct {
		name     string
		vals     []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{42}, 42},
		{"several", []float64{10, 20, 30}, 20},
		{"negative", []float64{-10, 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.vals); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Average(%v) = %v, want %v", tt.vals, got, tt.expected)
			}
		})
	}
}

func TestAverageNonNil(t *testing.T) {
	tests := []struct {
		name     string
		vals     []*float64
		expected float64
	}{
		{"empty", nil, 0},
		{"all nil", []*float64{nil, nil}, 0},
		{"nil excluded not zero", []*float64{fp(10), fp(20), nil}, 15},
		{"single", []*float64{fp(7.5)}, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageNonNil(tt.vals); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("AverageNonNil = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDistribution(t *testing.T) {
	got := Distribution([]*string{sp("A"), sp("A"), nil, sp("B")})
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %d: %v", len(got), got)
	}
	if got["A"] != 2 || got["B"] != 1 {
		t.Errorf("Distribution = %v, want map[A:2 B:1]", got)
	}

	if _, ok := got[""]; ok {
		t.Error("nil values must not be counted under an empty bucket")
	}

	empty := Distribution(nil)
	if len(empty) != 0 {
		t.Errorf("empty input should yield empty map, got %v", empty)
	}

	blank := Distribution([]*string{sp(""), nil})
	if len(blank) != 0 {
		t.Errorf("blank values excluded, got %v", blank)
	}
}

func TestCountSince(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	week := 7 * 24 * time.Hour

	times := []time.Time{
		now,                          // boundary: included
		now.Add(-week),               // boundary: included
		now.Add(-week - time.Second), // just outside
		now.Add(-time.Hour),
		now.Add(time.Hour), // future: excluded
	}

	if got := CountSince(times, now, week); got != 3 {
		t.Errorf("CountSince = %d, want 3", got)
	}
	if got := CountSince(nil, now, week); got != 0 {
		t.Errorf("CountSince(empty) = %d, want 0", got)
	}
}

func TestSums(t *testing.T) {
	if got := SumInt64([]*int64{ip(3), nil, ip(4)}); got != 7 {
		t.Errorf("SumInt64 = %d, want 7", got)
	}
	if got := SumInt64(nil); got != 0 {
		t.Errorf("SumInt64(empty) = %d, want 0", got)
	}
	if got := SumFloat64([]*float64{fp(1.5), nil, fp(2.5)}); got != 4 {
		t.Errorf("SumFloat64 = %v, want 4", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		num, den, expected float64
	}{
		{50, 200, 25},
		{0, 100, 0},
		{10, 0, 0}, // zero denominator stays 0, not NaN
	}
	for _, tt := range tests {
		if got := Percent(tt.num, tt.den); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Percent(%v, %v) = %v, want %v", tt.num, tt.den, got, tt.expected)
		}
	}
}
