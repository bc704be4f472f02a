package signal

import (
	"math"

	"github.com/corrstat/corrstat/matrix"
)

// morletOmega is the central angular frequency of the Morlet mother
// wavelet ψ(x) = exp(-x²/2)·cos(ω₀·x).
const morletOmega = 5.0

// morlet evaluates the real Morlet mother wavelet at x.
func morlet(x float64) float64 {
	return math.Exp(-x*x/2) * math.Cos(morletOmega*x)
}

// WaveletTransform computes the continuous wavelet transform of a signal
// against the Morlet wavelet at each requested scale.
//
// Algorithm Outline:
//  1. For each scale s and each translation t:
//     W[s][t] = (1/√s) · Σ_u signal[u] · ψ((u−t)/s)
//  2. Rows of the returned matrix index scales, columns index time.
//
// This is direct convolution, O(n²) per scale, with exact boundary
// behavior (no padding).
//
// Errors:
//   - ErrEmptySignal — empty signal.
//   - ErrNoScales    — empty scale vector.
//   - ErrBadScale    — any scale ≤ 0 or NaN.
func WaveletTransform(signalData []float64, scales []float64) (*matrix.Dense, error) {
	n := len(signalData)
	if n == 0 {
		return nil, ErrEmptySignal
	}
	if len(scales) == 0 {
		return nil, ErrNoScales
	}
	for _, s := range scales {
		if s <= 0 || math.IsNaN(s) {
			return nil, ErrBadScale
		}
	}

	out, err := matrix.NewDense(len(scales), n)
	if err != nil {
		return nil, err
	}
	for si, scale := range scales {
		norm := 1 / math.Sqrt(scale)
		for t := 0; t < n; t++ {
			sum := 0.0
			for u := 0; u < n; u++ {
				sum += signalData[u] * morlet(float64(u-t)/scale)
			}
			if errSet := out.Set(si, t, norm*sum); errSet != nil {
				return nil, errSet
			}
		}
	}
	return out, nil
}
