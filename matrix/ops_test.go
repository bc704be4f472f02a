// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/corrstat/corrstat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMul_Known verifies a hand-checked 2×3 · 3×2 product.
func TestMul_Known(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	require.NoError(t, err)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	want := [][]float64{{58, 64}, {139, 154}}
	for i := range want {
		for j := range want[i] {
			v, errAt := p.At(i, j)
			require.NoError(t, errAt)
			assert.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

// TestMul_DimensionMismatch verifies a.Cols != b.Rows is rejected.
func TestMul_DimensionMismatch(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_NilOperand verifies nil operands fail with ErrNilMatrix.
func TestMul_NilOperand(t *testing.T) {
	a, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose verifies shape swap and element placement.
func TestTranspose(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())

	v, err := tr.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

// TestMatVec verifies a known product and the length guard.
func TestMatVec(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(m, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
