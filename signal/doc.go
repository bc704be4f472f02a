// Package signal provides numerical transforms over uniformly sampled
// time series: spectral analysis, wavelet decomposition, ODE integration,
// polynomial interpolation and phase-space reconstruction.
//
// 🚀 What is signal?
//
//	A small toolkit for turning a raw measurement series into structure:
//		• DominantFrequencies — FFT magnitude spectrum + 10%-of-peak
//		  dominance detection
//		• WaveletTransform — Morlet continuous wavelet transform across
//		  caller-chosen scales
//		• SolveRK4 — classic fixed-step 4th-order Runge–Kutta integration
//		• LagrangeInterpolate — exact polynomial fit through known points
//		• PhaseSpace — Takens time-delay embedding
//
// ✨ Why choose signal?
//
//   - Edge-case honest – empty signals, non-positive steps/scales and
//     impossible embeddings are explicit sentinel errors
//   - Bounded instability – Lagrange interpolation refuses the point
//     counts where the direct formula is known to cancel catastrophically
//   - Deterministic – pure functions, fresh outputs, no hidden state
//
// ⚙️ Usage:
//
//	fd, err := signal.DominantFrequencies(series, 0.01) // 100 Hz sampling
//	if err != nil {
//		// ErrEmptySignal or ErrBadStep
//	}
//	fmt.Println(fd.Dominant) // frequencies above 10% of the spectral peak
//
// Performance:
//
//   - DominantFrequencies: O(n log n) via FFT
//   - WaveletTransform: O(n²) per scale — a deliberate tradeoff for the
//     short clinical series this module targets, not for long streams
//   - SolveRK4: O(steps); LagrangeInterpolate: O(k²); PhaseSpace: O(n·d)
package signal
