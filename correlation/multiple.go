package correlation

import (
	"math"

	"github.com/corrstat/corrstat/matrix"
	"github.com/corrstat/corrstat/specfunc"
)

// Multiple computes the multiple correlation coefficient R between a
// dependent variable and a set of independents, with an F-test.
//
// Algorithm Outline:
//  1. Assemble pairwise Pearson coefficients: the vector Ryx between the
//     dependent and each regressor, and the p×p block Rxx between
//     regressors (unit diagonal).
//  2. Invert Rxx (partial-pivoted Gauss–Jordan). Collinearity among the
//     independents legitimately aborts here: matrix.ErrSingular is
//     propagated unchanged.
//  3. R² = Ryxᵀ · Rxx⁻¹ · Ryx (quadratic form), clamped to [0, 1].
//  4. F = (R²/p) / ((1−R²)/(n−p−1)); the p-value is the F tail
//     I_{d2/(d2+d1·F)}(d2/2, d1/2) with d1 = p, d2 = n−p−1.
//
// The reported Coefficient is R = sqrt(R²) ≥ 0. R² = 1 (within 1e-12)
// short-circuits to p = 0, significant.
//
// Errors:
//   - ErrNoRegressors     — no independent variables supplied.
//   - ErrLengthMismatch   — any independent's length differs from the dependent's.
//   - ErrTooFewSamples    — n < p+2 (the F denominator df must be positive).
//   - ErrZeroVariance     — any variable is constant.
//   - matrix.ErrSingular  — collinear independents (propagated unchanged).
func Multiple(dependent []float64, independents ...[]float64) (Result, error) {
	p := len(independents)
	if p == 0 {
		return Result{}, ErrNoRegressors
	}
	n := len(dependent)
	for _, ind := range independents {
		if len(ind) != n {
			return Result{}, ErrLengthMismatch
		}
	}
	if n < p+2 {
		return Result{}, ErrTooFewSamples
	}

	// Ryx: dependent vs each regressor.
	ryx := make([]float64, p)
	for i, ind := range independents {
		r, err := pearsonR(dependent, ind)
		if err != nil {
			return Result{}, err
		}
		ryx[i] = r
	}

	// Rxx: regressor correlation block, symmetric with unit diagonal.
	rxx, err := matrix.Identity(p)
	if err != nil {
		return Result{}, err
	}
	for i := 0; i < p-1; i++ {
		for j := i + 1; j < p; j++ {
			r, errR := pearsonR(independents[i], independents[j])
			if errR != nil {
				return Result{}, errR
			}
			if errSet := rxx.Set(i, j, r); errSet != nil {
				return Result{}, errSet
			}
			if errSet := rxx.Set(j, i, r); errSet != nil {
				return Result{}, errSet
			}
		}
	}

	inv, err := matrix.Inverse(rxx)
	if err != nil {
		// Collinearity surfaces here; the sentinel passes through for
		// errors.Is(err, matrix.ErrSingular) at the caller.
		return Result{}, err
	}

	weighted, err := matrix.MatVec(inv, ryx)
	if err != nil {
		return Result{}, err
	}
	r2 := 0.0
	for i := range ryx {
		r2 += ryx[i] * weighted[i]
	}
	if r2 < 0 {
		r2 = 0
	}
	if r2 > 1 {
		r2 = 1
	}
	coefficient := math.Sqrt(r2)

	if 1-r2 < perfectTol {
		return Result{Coefficient: coefficient, PValue: 0, Significant: true, Converged: true}, nil
	}

	d1 := float64(p)
	d2 := float64(n - p - 1)
	f := (r2 / d1) / ((1 - r2) / d2)

	pValue, converged, err := specfunc.RegIncompleteBeta(d2/(d2+d1*f), d2/2, d1/2)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Coefficient: coefficient,
		PValue:      pValue,
		Significant: pValue < SignificanceLevel,
		Converged:   converged,
	}, nil
}
