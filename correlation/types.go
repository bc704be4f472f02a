// Package correlation: result and option types.
package correlation

import "runtime"

// SignificanceLevel is the fixed two-tailed threshold below which a
// p-value marks a coefficient as significant.
const SignificanceLevel = 0.05

// Result is the outcome of a single correlation test.
//
// Coefficient is always in [-1, 1] (multiple correlation reports R ≥ 0),
// PValue in [0, 1], and Significant is PValue < SignificanceLevel.
// Converged reports whether the continued-fraction evaluation behind the
// p-value met its tolerance inside the iteration budget; it is true for
// every code path that does not touch the continued fraction. A false
// value means the p-value is a best-effort estimate — the caller decides
// whether to trust it.
type Result struct {
	Coefficient float64
	PValue      float64
	Significant bool
	Converged   bool
}

// Method selects the coefficient computed by PairwiseMatrix.
type Method int

const (
	// MethodPearson computes product-moment correlation (linear association).
	MethodPearson Method = iota

	// MethodSpearman computes rank correlation (monotonic association).
	MethodSpearman

	// MethodKendall computes pair-concordance correlation (robust to outliers).
	MethodKendall
)

// MatrixOptions configures batch pairwise-matrix computation.
//
// Fields:
//   - Method  — coefficient to compute per pair (default MethodPearson).
//   - Workers — maximum concurrent pairwise computations; values ≤ 0 fall
//     back to runtime.NumCPU(). Each worker writes only its own disjoint
//     cells, so no locking is involved.
type MatrixOptions struct {
	Method  Method
	Workers int
}

// DefaultMatrixOptions returns the canonical batch configuration:
// Pearson coefficients, one worker per logical CPU.
func DefaultMatrixOptions() MatrixOptions {
	return MatrixOptions{Method: MethodPearson, Workers: runtime.NumCPU()}
}
