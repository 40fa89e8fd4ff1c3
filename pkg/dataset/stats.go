package dataset

import (
	"math"
	"sort"
)

// Stats bundles the two statistics reported per symbol.
type Stats struct {
	Median float64
	Std    float64
}

// Median returns the middle value of xs. For an even count it is the
// mean of the two middle values; an empty sample yields 0. xs is not
// modified.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)

	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

// Std returns the population standard deviation of xs: the divisor is
// len(xs), not len(xs)-1. An empty sample yields 0.
func Std(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)))
}

func statsOf(xs []float64) Stats {
	return Stats{Median: Median(xs), Std: Std(xs)}
}
