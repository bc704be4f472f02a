package specfunc

import "math"

// Abramowitz–Stegun 7.1.26 rational-approximation constants for erf.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

// Erf returns the error function erf(x) using the Abramowitz–Stegun
// 7.1.26 rational approximation, |error| ≤ 1.5e-7 over all reals.
// Odd symmetry erf(−x) = −erf(x) is applied explicitly.
func Erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}
	t := 1.0 / (1.0 + erfP*x)
	poly := ((((erfA5*t+erfA4)*t+erfA3)*t+erfA2)*t + erfA1) * t
	return sign * (1.0 - poly*math.Exp(-x*x))
}

// NormalCDF returns Φ(z), the standard normal cumulative distribution
// function, via Φ(z) = (1 + erf(z/√2)) / 2. Accuracy follows Erf (~1e-7).
func NormalCDF(z float64) float64 {
	return 0.5 * (1.0 + Erf(z/math.Sqrt2))
}
