package benchmark

import (
	"math"
	"sort"
)

// Iglewicz and Hoaglin recommend 3.5 as the modified Z-score cutoff for
// labeling a sample an outlier.
const outlierThreshold = 3.5

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Stddev returns the sample standard deviation of xs. Fewer than two
// samples have no spread.
func Stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// Median returns the median of xs, or 0 for an empty slice.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Min returns the smallest value in xs. NaN values never win the
// comparison, so a slice with a NaN still yields a real minimum when one
// exists.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	min := xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
	}
	return min
}

// Max returns the largest value in xs.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// ModifiedZScores returns the modified Z-score of every sample,
// 0.6745*(x-median)/MAD, where MAD is the median absolute deviation.
// When the MAD is zero every score is zero.
func ModifiedZScores(xs []float64) []float64 {
	scores := make([]float64, len(xs))
	if len(xs) == 0 {
		return scores
	}

	median := Median(xs)
	deviations := make([]float64, len(xs))
	for i, x := range xs {
		deviations[i] = math.Abs(x - median)
	}
	mad := Median(deviations)
	if mad == 0 {
		return scores
	}

	for i, x := range xs {
		scores[i] = 0.6745 * (x - median) / mad
	}
	return scores
}

// HasOutliers reports whether any sample's modified Z-score exceeds the
// outlier threshold in either direction.
func HasOutliers(xs []float64) bool {
	for _, score := range ModifiedZScores(xs) {
		if math.Abs(score) > outlierThreshold {
			return true
		}
	}
	return false
}
