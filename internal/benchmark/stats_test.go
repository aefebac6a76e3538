package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
}

func TestStddev(t *testing.T) {
	// A single sample has no spread.
	assert.Equal(t, 0.0, Stddev([]float64{5}))

	// Sample stddev of {2,4,4,4,5,5,7,9} is ~2.138.
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.138, Stddev(xs), 0.001)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1.0, Max([]float64{1.0}))
	assert.Equal(t, -1.0, Max([]float64{-1.0}))
	assert.Equal(t, -1.0, Max([]float64{-2.0, -1.0}))
	assert.Equal(t, 1.0, Max([]float64{-1.0, 1.0}))
	assert.Equal(t, 1.0, Max([]float64{-1.0, 1.0, 0.0}))

	assert.Equal(t, -2.0, Min([]float64{-2.0, -1.0}))
	assert.Equal(t, -1.0, Min([]float64{-1.0, 1.0, 0.0}))
}

func TestModifiedZScores(t *testing.T) {
	// Constant samples: MAD is zero, scores are all zero.
	scores := ModifiedZScores([]float64{3, 3, 3})
	assert.Equal(t, []float64{0, 0, 0}, scores)

	xs := []float64{1.0, 1.1, 1.0, 0.9, 1.0, 50.0}
	scores = ModifiedZScores(xs)
	assert.Len(t, scores, len(xs))
	assert.Greater(t, scores[len(scores)-1], outlierThreshold)
}

func TestHasOutliers(t *testing.T) {
	assert.False(t, HasOutliers([]float64{1.0, 1.1, 0.9, 1.0}))
	assert.True(t, HasOutliers([]float64{1.0, 1.1, 1.0, 0.9, 1.0, 50.0}))
	assert.False(t, HasOutliers(nil))
}
