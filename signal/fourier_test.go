package signal_test

import (
	"math"
	"testing"

	"github.com/corrstat/corrstat/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine returns n samples of amplitude·sin(2π·freq·t) sampled at dt.
func sine(n int, freq, amplitude, dt float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)*dt)
	}
	return out
}

// TestDominantFrequencies_PureSine verifies a 5 Hz sine sampled at 100 Hz
// over an integer number of cycles comes back as a single dominant bin at
// exactly 5 Hz with amplitude ≈ 1.
func TestDominantFrequencies_PureSine(t *testing.T) {
	const dt = 0.01
	series := sine(100, 5, 1, dt)

	fd, err := signal.DominantFrequencies(series, dt)
	require.NoError(t, err)

	assert.Len(t, fd.Frequencies, 100, "parallel arrays match input length")
	assert.Len(t, fd.Amplitudes, 100)

	require.Len(t, fd.Dominant, 1, "leakage-free sine occupies one bin")
	assert.InDelta(t, 5.0, fd.Dominant[0], 1e-9)
	assert.InDelta(t, 1.0, fd.Amplitudes[5], 1e-9, "unit sine reads back as amplitude 1")
}

// TestDominantFrequencies_OffsetIgnoresDC verifies a constant offset does
// not swamp dominance detection: DC is excluded.
func TestDominantFrequencies_OffsetIgnoresDC(t *testing.T) {
	const dt = 0.01
	series := sine(100, 5, 1, dt)
	for i := range series {
		series[i] += 50 // large baseline
	}

	fd, err := signal.DominantFrequencies(series, dt)
	require.NoError(t, err)
	require.Len(t, fd.Dominant, 1)
	assert.InDelta(t, 5.0, fd.Dominant[0], 1e-9)
}

// TestDominantFrequencies_TwoTones verifies both components of a two-tone
// signal clear the 10%-of-peak threshold.
func TestDominantFrequencies_TwoTones(t *testing.T) {
	const dt = 0.01
	a := sine(200, 4, 1, dt)
	b := sine(200, 12, 0.5, dt)
	series := make([]float64, len(a))
	for i := range series {
		series[i] = a[i] + b[i]
	}

	fd, err := signal.DominantFrequencies(series, dt)
	require.NoError(t, err)
	require.Len(t, fd.Dominant, 2)
	assert.InDelta(t, 4.0, fd.Dominant[0], 1e-9)
	assert.InDelta(t, 12.0, fd.Dominant[1], 1e-9)
}

// TestDominantFrequencies_Validation covers the guard rails.
func TestDominantFrequencies_Validation(t *testing.T) {
	_, err := signal.DominantFrequencies(nil, 0.01)
	assert.ErrorIs(t, err, signal.ErrEmptySignal)

	_, err = signal.DominantFrequencies([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, signal.ErrBadStep)

	_, err = signal.DominantFrequencies([]float64{1, 2, 3}, -0.5)
	assert.ErrorIs(t, err, signal.ErrBadStep)
}
