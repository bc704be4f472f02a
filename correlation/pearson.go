package correlation

import (
	"math"

	"github.com/corrstat/corrstat/specfunc"
)

// perfectTol decides when |r| counts as exactly 1: past this point the
// Student-t denominator 1-r² is numerically zero and the test statistic is
// undefined, so significance short-circuits to p = 0.
const perfectTol = 1e-12

// Pearson computes the product-moment correlation between x and y with a
// two-tailed Student-t significance test.
//
// Algorithm Outline:
//  1. r = Σ(xi−x̄)(yi−ȳ) / sqrt(Σ(xi−x̄)² · Σ(yi−ȳ)²).
//  2. t = r·sqrt((n−2)/(1−r²)) with df = n−2; the two-tailed p-value is
//     the Student-t tail I_{df/(df+t²)}(df/2, 1/2).
//  3. |r| = 1 (within 1e-12) short-circuits to p = 0, significant: a
//     perfect linear relationship is always significant and t would
//     divide by zero.
//
// Errors:
//   - ErrLengthMismatch — len(x) != len(y).
//   - ErrTooFewSamples  — n < 3.
//   - ErrZeroVariance   — either sequence is constant.
func Pearson(x, y []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, ErrLengthMismatch
	}
	if len(x) < 3 {
		return Result{}, ErrTooFewSamples
	}
	r, err := pearsonR(x, y)
	if err != nil {
		return Result{}, err
	}
	return tTestResult(r, float64(len(x)-2))
}

// pearsonR computes the raw product-moment coefficient, clamped to [-1, 1].
// Returns ErrZeroVariance when either sequence is constant.
func pearsonR(x, y []float64) (float64, error) {
	n := len(x)
	meanX, meanY := mean(x), mean(y)

	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, ErrZeroVariance
	}
	return clampCoefficient(sxy / math.Sqrt(sxx*syy)), nil
}

// tTestResult turns a coefficient and degrees of freedom into a Result via
// the two-tailed Student-t test. df must be positive (callers enforce the
// sample-size guards that guarantee it).
func tTestResult(r, df float64) (Result, error) {
	if 1-r*r < perfectTol {
		return Result{
			Coefficient: clampCoefficient(r),
			PValue:      0,
			Significant: true,
			Converged:   true,
		}, nil
	}

	t := r * math.Sqrt(df/(1-r*r))
	p, converged, err := specfunc.RegIncompleteBeta(df/(df+t*t), df/2, 0.5)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Coefficient: r,
		PValue:      p,
		Significant: p < SignificanceLevel,
		Converged:   converged,
	}, nil
}

// mean returns the arithmetic mean of v. Callers guarantee len(v) > 0.
func mean(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// clampCoefficient pins rounding noise back into [-1, 1].
func clampCoefficient(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}
	return r
}
