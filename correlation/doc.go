// Package correlation computes association measures between real-valued
// sequences — Pearson, Spearman, Kendall's τ, partial and multiple
// correlation — each paired with a two-tailed significance test.
//
// 🚀 What is correlation?
//
//	The statistical heart of the library:
//		• Pearson — linear association + Student-t significance
//		• Spearman — Pearson over average-rank-for-ties transforms
//		• Kendall — pair concordance with the normal approximation
//		• Partial — first-order correlation controlling for a third variable
//		• Multiple — R² via the inverted regressor correlation block + F-test
//		• PairwiseMatrix — parallel, cancellable batch matrices
//		• Describe — per-variable descriptive summaries for batch reports
//
// ✨ Why choose correlation?
//
//   - Tie-correct – rank transforms assign tied runs the mean of their
//     occupied positions, never the first-occurrence shortcut
//   - Edge-case honest – zero variance, short samples and collinear
//     regressors are explicit sentinel errors; |r| = 1 short-circuits to
//     p = 0 instead of dividing by zero
//   - Quality-flagged – every Result reports whether its p-value's
//     continued-fraction evaluation converged
//
// ⚙️ Usage:
//
//	res, err := correlation.Pearson(systolic, heartRate)
//	if err != nil {
//		// ErrLengthMismatch, ErrTooFewSamples or ErrZeroVariance
//	}
//	if res.Significant {
//		// p < 0.05
//	}
//
// Performance: Pearson/Spearman/Partial are O(n) after an O(n log n) rank
// sort; Kendall is O(n²) pair counting; Multiple is O(p²·n + p³) for p
// regressors. See PairwiseMatrix for batch parallelism.
package correlation
