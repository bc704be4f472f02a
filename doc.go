// Package corrstat is an in-memory toolkit for statistical correlation
// analysis and numerical signal transforms over plain float64 sequences.
//
// 🚀 What is corrstat?
//
//	A stateless, side-effect-free numerical library that brings together:
//		• Correlation: Pearson, Spearman, Kendall's τ, partial & multiple
//		  correlation — each with a two-tailed significance test
//		• Linear algebra: dense matrices + Gauss–Jordan inversion with
//		  partial pivoting and explicit singularity detection
//		• Special functions: log-gamma, erf/normal CDF, regularized
//		  incomplete beta (continued fraction)
//		• Signal transforms: FFT dominant-frequency detection, Morlet
//		  wavelet transform, RK4 ODE integration, Lagrange interpolation,
//		  phase-space (time-delay) embedding
//
// ✨ Why choose corrstat?
//
//   - Deterministic – pure functions over immutable inputs, no hidden state
//   - Edge-case honest – singular matrices, zero variance and domain errors
//     are explicit, checked failure paths, never silent NaN/Inf
//   - Batch-friendly – parallel, cancellable pairwise correlation matrices
//   - Tie-correct – rank transforms use average-rank-for-ties, not
//     first-occurrence shortcuts
//
// Everything is organized under four subpackages:
//
//	correlation/ — Pearson/Spearman/Kendall/partial/multiple + batch matrices
//	matrix/      — dense float64 matrices, multiplication & pivoted inversion
//	signal/      — FFT, Morlet wavelet, RK4, Lagrange, phase-space embedding
//	specfunc/    — log-gamma, erf, normal CDF, regularized incomplete beta
//
// Quick taste:
//
//	res, err := correlation.Pearson(
//		[]float64{1, 2, 3, 4, 5},
//		[]float64{2, 4, 6, 8, 10},
//	)
//	// res.Coefficient ≈ 1.0, res.PValue ≈ 0, res.Significant == true
//
// Every result is freshly allocated and owned by the caller; independent
// calls are safe to run concurrently.
//
//	go get github.com/corrstat/corrstat
package corrstat
