package correlation

import (
	"math"

	"github.com/corrstat/corrstat/specfunc"
)

// Kendall computes Kendall's τ (tau-a) with a normal-approximation
// significance test.
//
// Algorithm Outline:
//  1. Count concordant (C) and discordant (D) pairs over all n(n−1)/2
//     unordered pairs; ties on either coordinate count as neither.
//  2. τ = (C − D) / (n(n−1)/2).
//  3. Var(τ) = (4n+10) / (9n(n−1)); z = τ/sqrt(Var);
//     p = 2·(1 − Φ(|z|)) two-tailed.
//
// Complexity: O(n²) pair counting.
//
// Errors:
//   - ErrLengthMismatch — len(x) != len(y).
//   - ErrTooFewSamples  — n < 3.
func Kendall(x, y []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, ErrLengthMismatch
	}
	n := len(x)
	if n < 3 {
		return Result{}, ErrTooFewSamples
	}

	var concordant, discordant int
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			dx := x[j] - x[i]
			dy := y[j] - y[i]
			prod := dx * dy
			switch {
			case prod > 0:
				concordant++
			case prod < 0:
				discordant++
			}
		}
	}

	pairs := float64(n*(n-1)) / 2
	tau := clampCoefficient(float64(concordant-discordant) / pairs)

	variance := float64(4*n+10) / float64(9*n*(n-1))
	z := tau / math.Sqrt(variance)
	p := 2 * (1 - specfunc.NormalCDF(math.Abs(z)))
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return Result{
		Coefficient: tau,
		PValue:      p,
		Significant: p < SignificanceLevel,
		Converged:   true,
	}, nil
}
