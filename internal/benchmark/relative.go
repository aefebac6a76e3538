package benchmark

import (
	"errors"
	"math"
)

// ErrNoResults is returned when a comparison is requested for an empty
// result set. Callers are expected to collect at least one result before
// comparing.
var ErrNoResults = errors.New("no benchmark results to compare")

// LessMeanTime orders two results by mean wall-clock time. The
// comparison is NaN-safe: a NaN mean compares as equal to everything, so
// sorting on it never panics and leaves such results in place.
func LessMeanTime(a, b *Result) bool {
	return a.Mean < b.Mean
}

// ComputeRelativeSpeed annotates every result with its speed ratio
// relative to the fastest result of the set, with first-order error
// propagation for the ratio's uncertainty (zero covariance between the
// two measurements).
//
// The output is aligned index-for-index with the input; ranking is left
// to the reporter. Exactly one element has IsFastest set: the fastest is
// picked by position, not by value equality, so commands that happen to
// tie on every statistic are still told apart.
func ComputeRelativeSpeed(results []Result) ([]RelativeSpeed, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	fastestIdx := 0
	for i := range results {
		if LessMeanTime(&results[i], &results[fastestIdx]) {
			fastestIdx = i
		}
	}
	fastest := &results[fastestIdx]

	annotated := make([]RelativeSpeed, len(results))
	for i := range results {
		result := &results[i]
		ratio := result.Mean / fastest.Mean
		percentChange := 100 * (result.Mean - fastest.Mean) / result.Mean

		// Propagated uncertainty of a quotient of independent
		// quantities. The fastest result is its own baseline, so
		// its ratio carries no uncertainty.
		ratioStddev := 0.0
		if i != fastestIdx {
			ratioStddev = ratio * math.Sqrt(
				math.Pow(result.Stddev/result.Mean, 2)+
					math.Pow(fastest.Stddev/fastest.Mean, 2))
		}

		annotated[i] = RelativeSpeed{
			Result:        result,
			Ratio:         ratio,
			RatioStddev:   ratioStddev,
			PercentChange: percentChange,
			IsFastest:     i == fastestIdx,
		}
	}

	return annotated, nil
}
