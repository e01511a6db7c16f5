package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrTooFewValues is returned when a statistic's precondition on the
// number of observations is not met.
var ErrTooFewValues = errors.New("sample standard deviation requires at least two data points")

// Summary holds the descriptive statistics for one run's couplet counts.
type Summary struct {
	// Count is the number of measurements.
	Count int `json:"count"`

	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`

	// Median is the middle value, or the mean of the two middle values
	// for an even number of measurements.
	Median float64 `json:"median"`

	// Min and Max are the smallest and largest values.
	Min int `json:"min"`
	Max int `json:"max"`

	// StdDev is the sample standard deviation (n-1 denominator).
	StdDev float64 `json:"stdDev"`
}

// Summarize computes the full set of descriptive statistics for values.
// Returns ErrTooFewValues when values holds fewer than two elements:
// the sample standard deviation is undefined for a single observation,
// and the caller is expected to treat that as fatal.
func Summarize(values []int) (*Summary, error) {
	if len(values) < 2 {
		return nil, ErrTooFewValues
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	stdDev, err := SampleStdDev(values)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Count:  len(values),
		Mean:   Mean(values),
		Median: Median(values),
		Min:    min,
		Max:    max,
		StdDev: stdDev,
	}, nil
}

// Mean returns the arithmetic mean of values. Panics on an empty slice;
// callers guard against empty collections before computing statistics.
func Mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Median returns the middle value of values. For an even count it is the
// mean of the two middle values. The input is not modified.
func Median(values []int) float64 {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

// SampleStdDev returns the sample standard deviation of values, using
// Bessel's correction (n-1 denominator). Returns ErrTooFewValues when
// fewer than two values are given.
func SampleStdDev(values []int) (float64, error) {
	if len(values) < 2 {
		return 0, ErrTooFewValues
	}

	mean := Mean(values)
	sumSquares := 0.0
	for _, v := range values {
		d := float64(v) - mean
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(values)-1)), nil
}
