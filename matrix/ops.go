// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over any Matrix implementation.
// All kernels perform strict fail-fast validation, allocate fresh Dense
// results and never mutate their operands.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so errors.Is keeps matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a·b into a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a, b), ValidateMulCompatible(a, b).
//   - Stage 2: Fast-path if both operands are *Dense — flat i→k→j loops;
//     otherwise fall back to At/Set in fixed i→j→k order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity: O(a.Rows · a.Cols · b.Cols), Space O(a.Rows · b.Cols).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		// Flat i→k→j order keeps the inner loop on contiguous memory.
		for i := 0; i < ad.r; i++ {
			for k := 0; k < ad.c; k++ {
				aik := ad.data[i*ad.c+k]
				if aik == 0 {
					continue
				}
				for j := 0; j < bd.c; j++ {
					out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
				}
			}
		}
		return out, nil
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := 0.0
			for k := 0; k < a.Cols(); k++ {
				av, errA := a.At(i, k)
				if errA != nil {
					return nil, matrixErrorf(opMul, errA)
				}
				bv, errB := b.At(k, j)
				if errB != nil {
					return nil, matrixErrorf(opMul, errB)
				}
				sum += av * bv
			}
			out.data[i*out.c+j] = sum
		}
	}
	return out, nil
}

// Transpose returns mᵀ as a fresh Dense.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if md, ok := m.(*Dense); ok {
		for i := 0; i < md.r; i++ {
			for j := 0; j < md.c; j++ {
				out.data[j*out.c+i] = md.data[i*md.c+j]
			}
		}
		return out, nil
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, errAt := m.At(i, j)
			if errAt != nil {
				return nil, matrixErrorf(opTranspose, errAt)
			}
			out.data[j*out.c+i] = v
		}
	}
	return out, nil
}

// MatVec computes the matrix-vector product m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols).
//
// Complexity: O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	out := make([]float64, m.Rows())
	if md, ok := m.(*Dense); ok {
		for i := 0; i < md.r; i++ {
			sum := 0.0
			base := i * md.c
			for j := 0; j < md.c; j++ {
				sum += md.data[base+j] * x[j]
			}
			out[i] = sum
		}
		return out, nil
	}
	for i := 0; i < m.Rows(); i++ {
		sum := 0.0
		for j := 0; j < m.Cols(); j++ {
			v, errAt := m.At(i, j)
			if errAt != nil {
				return nil, matrixErrorf(opMatVec, errAt)
			}
			sum += v * x[j]
		}
		out[i] = sum
	}
	return out, nil
}
