package signal_test

import (
	"math"
	"testing"

	"github.com/corrstat/corrstat/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWaveletTransform_Shape verifies one row per scale, one column per
// sample.
func TestWaveletTransform_Shape(t *testing.T) {
	sig := sine(64, 4, 1, 1.0/64)
	scales := []float64{1, 2, 4, 8}

	w, err := signal.WaveletTransform(sig, scales)
	require.NoError(t, err)
	assert.Equal(t, len(scales), w.Rows())
	assert.Equal(t, len(sig), w.Cols())
}

// TestWaveletTransform_Impulse pins the closed form: for a unit impulse
// at index k, W[s][t] = ψ((k−t)/s)/√s with ψ(x) = exp(-x²/2)·cos(5x).
func TestWaveletTransform_Impulse(t *testing.T) {
	sig := make([]float64, 9)
	sig[4] = 1
	scales := []float64{1, 2.5}

	w, err := signal.WaveletTransform(sig, scales)
	require.NoError(t, err)

	morlet := func(x float64) float64 { return math.Exp(-x*x/2) * math.Cos(5*x) }
	for si, s := range scales {
		for tIdx := 0; tIdx < len(sig); tIdx++ {
			want := morlet(float64(4-tIdx)/s) / math.Sqrt(s)
			got, errAt := w.At(si, tIdx)
			require.NoError(t, errAt)
			assert.InDelta(t, want, got, 1e-12, "scale %v, t %d", s, tIdx)
		}
	}
}

// TestWaveletTransform_Validation covers the guard rails.
func TestWaveletTransform_Validation(t *testing.T) {
	_, err := signal.WaveletTransform(nil, []float64{1})
	assert.ErrorIs(t, err, signal.ErrEmptySignal)

	_, err = signal.WaveletTransform([]float64{1, 2}, nil)
	assert.ErrorIs(t, err, signal.ErrNoScales)

	_, err = signal.WaveletTransform([]float64{1, 2}, []float64{2, 0})
	assert.ErrorIs(t, err, signal.ErrBadScale)

	_, err = signal.WaveletTransform([]float64{1, 2}, []float64{-3})
	assert.ErrorIs(t, err, signal.ErrBadScale)
}
