package correlation_test

import (
	"math"
	"testing"

	"github.com/corrstat/corrstat/correlation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDescribe_Fixture pins the summary of a small known series.
func TestDescribe_Fixture(t *testing.T) {
	summaries, err := correlation.Describe([][]float64{
		{1, 2, 3, 4, 5},
		{10, 10, 10},
	})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	s := summaries[0]
	assert.Equal(t, 5, s.N)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 3.0, s.Median, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-12, "sample (n-1) standard deviation")
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)

	constant := summaries[1]
	assert.InDelta(t, 10.0, constant.Mean, 1e-12)
	assert.InDelta(t, 0.0, constant.StdDev, 1e-12)
}

// TestDescribe_Validation covers empty batch and empty series.
func TestDescribe_Validation(t *testing.T) {
	_, err := correlation.Describe(nil)
	assert.ErrorIs(t, err, correlation.ErrTooFewSeries)

	_, err = correlation.Describe([][]float64{{1, 2}, {}})
	assert.ErrorIs(t, err, correlation.ErrTooFewSamples)
}
