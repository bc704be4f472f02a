package correlation

import "math"

// degenerateTol guards the partial-correlation denominator: when a control
// variable is (numerically) perfectly correlated with a primary, the
// denominator (1−r_xz²)(1−r_yz²) collapses to zero.
const degenerateTol = 1e-12

// Partial computes the first-order partial correlation between x and y
// controlling for z, with a Student-t test on n−3 degrees of freedom.
//
// Algorithm Outline:
//  1. Compute the three pairwise Pearson coefficients r_xy, r_xz, r_yz.
//  2. r_xy·z = (r_xy − r_xz·r_yz) / sqrt((1−r_xz²)(1−r_yz²)).
//  3. Significance as in Pearson with df = n−3.
//
// Errors:
//   - ErrLengthMismatch    — sequence lengths differ.
//   - ErrTooFewSamples     — n < 4 (df = n−3 must be positive).
//   - ErrZeroVariance      — any sequence is constant.
//   - ErrDegenerateControl — |r_xz| = 1 or |r_yz| = 1.
func Partial(x, y, z []float64) (Result, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return Result{}, ErrLengthMismatch
	}
	n := len(x)
	if n < 4 {
		return Result{}, ErrTooFewSamples
	}

	rxy, err := pearsonR(x, y)
	if err != nil {
		return Result{}, err
	}
	rxz, err := pearsonR(x, z)
	if err != nil {
		return Result{}, err
	}
	ryz, err := pearsonR(y, z)
	if err != nil {
		return Result{}, err
	}

	den := (1 - rxz*rxz) * (1 - ryz*ryz)
	if den < degenerateTol {
		return Result{}, ErrDegenerateControl
	}

	rp := clampCoefficient((rxy - rxz*ryz) / math.Sqrt(den))
	return tTestResult(rp, float64(n-3))
}
