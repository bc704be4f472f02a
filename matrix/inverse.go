// SPDX-License-Identifier: MIT
// Package matrix: Gauss–Jordan inversion kernel with partial pivoting.

package matrix

import "math"

// pivotTol is the relative singularity tolerance: a column's best pivot is
// compared against pivotTol × maxAbs(M). Matrices whose elimination drives
// every candidate pivot below this threshold are declared singular instead
// of being divided through and poisoned with Inf/NaN.
const pivotTol = 1e-12

// Inverse computes A⁻¹ by Gauss–Jordan elimination with partial pivoting.
// The input must be non-nil and square; it is never mutated.
//
// Algorithm Outline:
//  1. Build the augmented n×2n system [A | I].
//  2. For each column: select the row with the largest absolute value in
//     that column at or below the diagonal (partial pivoting) and swap it
//     into place.
//  3. If the selected pivot's magnitude is below pivotTol relative to the
//     matrix scale (maxAbs of A; absolute pivotTol when A is all zeros),
//     the matrix is singular — fail BEFORE dividing.
//  4. Normalize the pivot row and eliminate the column from every other
//     row, reducing the left half to I.
//  5. The right half of the reduced system is A⁻¹.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//
// Returns:
//   - Matrix: fresh Dense(n×n) containing A⁻¹.
//   - error : validation or singularity failures wrapped with opInverse.
//
// Errors:
//   - ErrNilMatrix (ValidateNotNil).
//   - ErrNonSquare (ValidateSquare).
//   - ErrSingular  (pivot below tolerance at any elimination step).
//
// Determinism:
//   - Pivot selection takes the FIRST row attaining the maximum absolute
//     value, so identical inputs always produce identical results.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented system.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()

	// Build the augmented [A | I] system in one flat allocation per row.
	aug := make([][]float64, n)
	scale := 0.0
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			aug[i][j] = v
			if abs := math.Abs(v); abs > scale {
				scale = abs
			}
		}
		aug[i][n+i] = 1.0
	}

	// Relative tolerance; an all-zero matrix falls back to the absolute floor.
	tol := pivotTol * scale
	if scale == 0 {
		tol = pivotTol
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: pick the row with the largest |value| in this column.
		pivotRow := col
		pivotAbs := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if abs := math.Abs(aug[r][col]); abs > pivotAbs {
				pivotAbs = abs
				pivotRow = r
			}
		}
		if pivotAbs < tol {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if pivotRow != col {
			aug[col], aug[pivotRow] = aug[pivotRow], aug[col]
		}

		// Normalize the pivot row.
		pivot := aug[col][col]
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pivot
		}

		// Eliminate the column from every other row (Gauss–Jordan).
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}

	// The right half of the reduced system is A⁻¹.
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], aug[i][n:])
	}
	return out, nil
}
