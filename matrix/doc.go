// SPDX-License-Identifier: MIT

// Package matrix provides dense linear-algebra primitives for array-based
// statistical computations: a row-major float64 Matrix, multiplication,
// transpose, matrix-vector products and inversion.
//
// 🚀 What is matrix?
//
//	The linear-algebra substrate under the correlation engine:
//		• Dense — flat, row-major float64 storage, cache friendly
//		• Mul / Transpose / MatVec — strict fail-fast shape validation
//		• Inverse — Gauss–Jordan elimination on the augmented [M | I]
//		  system with partial pivoting and explicit singularity detection
//
// ✨ Why choose matrix?
//
//   - Checked singularity – a pivot below the scale-relative tolerance is
//     ErrSingular, never a division that propagates Inf/NaN
//   - Immutable inputs – every operation allocates a fresh result
//   - Sentinel errors – all failures match via errors.Is
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
//	inv, err := matrix.Inverse(m)
//	if errors.Is(err, matrix.ErrSingular) {
//		// collinear / rank-deficient input
//	}
//
// Performance:
//
//   - Inverse: O(n³) time, O(n²) memory (augmented system)
//   - Mul: O(n·m·k); MatVec: O(n·m)
package matrix
