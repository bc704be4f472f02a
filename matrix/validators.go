// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure). Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}
	return nil
}

// ValidateMulCompatible checks that a·b is defined (a.Cols == b.Rows).
// Assumes a and b are not nil. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateVecLen checks that vector x has exactly n elements.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}
	return nil
}
