package signal

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// dominanceRatio marks a bin as dominant when its amplitude exceeds this
// fraction of the half-spectrum peak.
const dominanceRatio = 0.1

// FrequencyDomain is the magnitude spectrum of a real time series.
//
// Frequencies and Amplitudes are parallel arrays of the same length as
// the input series (the full complex spectrum; bins past n/2 mirror the
// first half). Dominant lists the frequencies of the first-half bins
// whose amplitude exceeds 10% of the half-spectrum peak, DC excluded.
type FrequencyDomain struct {
	Frequencies []float64
	Amplitudes  []float64
	Dominant    []float64
}

// DominantFrequencies computes the discrete Fourier magnitude spectrum of
// series sampled at interval dt and flags dominant frequency bins.
//
// Algorithm Outline:
//  1. Full-length complex FFT of the series.
//  2. Frequencies[k] = k/(n·dt); Amplitudes[k] = |X_k|·2/n for interior
//     bins, |X_k|/n for DC and (even-n) Nyquist, so a unit-amplitude sine
//     reads back as amplitude ≈ 1 in its bin.
//  3. A first-half bin (k = 1..n/2) is dominant when its amplitude
//     exceeds dominanceRatio × the half-spectrum peak.
//
// Complexity: O(n log n).
//
// Errors:
//   - ErrEmptySignal — empty series.
//   - ErrBadStep     — dt ≤ 0.
func DominantFrequencies(series []float64, dt float64) (FrequencyDomain, error) {
	n := len(series)
	if n == 0 {
		return FrequencyDomain{}, ErrEmptySignal
	}
	if dt <= 0 || math.IsNaN(dt) {
		return FrequencyDomain{}, ErrBadStep
	}

	data := make([]complex128, n)
	for i, v := range series {
		data[i] = complex(v, 0)
	}
	fft := fourier.NewCmplxFFT(n)
	coeffs := fft.Coefficients(nil, data)

	fd := FrequencyDomain{
		Frequencies: make([]float64, n),
		Amplitudes:  make([]float64, n),
	}
	span := float64(n) * dt
	for k, c := range coeffs {
		fd.Frequencies[k] = float64(k) / span
		amp := cmplx.Abs(c) / float64(n)
		// Interior bins carry their energy twice (positive and negative
		// frequency); fold it so amplitudes read in signal units.
		if k != 0 && !(n%2 == 0 && k == n/2) {
			amp *= 2
		}
		fd.Amplitudes[k] = amp
	}

	// Dominance is judged on the physically meaningful half-spectrum.
	half := n / 2
	peak := 0.0
	for k := 1; k <= half; k++ {
		if fd.Amplitudes[k] > peak {
			peak = fd.Amplitudes[k]
		}
	}
	if peak > 0 {
		threshold := dominanceRatio * peak
		for k := 1; k <= half; k++ {
			if fd.Amplitudes[k] > threshold {
				fd.Dominant = append(fd.Dominant, fd.Frequencies[k])
			}
		}
	}
	return fd, nil
}
