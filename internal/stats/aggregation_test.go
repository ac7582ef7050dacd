package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 5.0, Mean([]float64{5}))
}

func TestMax(t *testing.T) {
	assert.Zero(t, Max(nil))
	assert.Equal(t, 9.0, Max([]float64{3, 9, 1}))
	assert.Equal(t, -1.0, Max([]float64{-4, -1, -3}))
}

func TestPercentile(t *testing.T) {
	assert.Zero(t, Percentile(nil, 50))

	values := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, 1.0, Percentile(values, 0))
	assert.Equal(t, 3.0, Percentile(values, 50))
	assert.Equal(t, 5.0, Percentile(values, 100))

	// Linear interpolation between ranks
	assert.InDelta(t, 1.5, Percentile([]float64{1, 2}, 50), 1e-9)

	// Out-of-range p is clamped
	assert.Equal(t, 5.0, Percentile(values, 150))
	assert.Equal(t, 1.0, Percentile(values, -10))

	// Input order does not matter
	assert.Equal(t, 3.0, Percentile([]float64{5, 1, 4, 2, 3}, 50))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.InDelta(t, 2.5, Median([]float64{1, 2, 3, 4}), 1e-9)
}
