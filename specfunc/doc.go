// Package specfunc provides the special functions that statistical
// significance tests are built on: log-gamma, the error function, the
// standard normal CDF and the regularized incomplete beta function.
//
// 🚀 What is specfunc?
//
//	The numerical foundation for Student-t and F tail probabilities:
//		• LogGamma — Lanczos approximation, ~1e-10 accuracy for x > 0
//		• Erf / NormalCDF — Abramowitz–Stegun rational form, ~1.5e-7
//		• RegIncompleteBeta — Lentz's continued fraction with a floored
//		  denominator, symmetry-flipped for conditioning
//
// ✨ Why hand-rolled?
//
//   - Explicit domains – x ≤ 0 is ErrDomain, never NaN
//   - Explicit convergence – the continued fraction reports whether it
//     met tolerance inside its iteration budget instead of guessing
//   - Deterministic – no table lookups, no state, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/corrstat/corrstat/specfunc"
//
//	v, converged, err := specfunc.RegIncompleteBeta(0.7, 5, 0.5)
//	if err != nil {
//		// a, b or x outside the domain
//	}
//	if !converged {
//		// best-effort value; caller decides whether to trust it
//	}
//
// Performance: every function is O(1) except RegIncompleteBeta, which is
// bounded by its 200-iteration continued-fraction budget.
package specfunc
