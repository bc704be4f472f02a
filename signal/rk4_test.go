package signal_test

import (
	"math"
	"testing"

	"github.com/corrstat/corrstat/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveRK4_Exponential verifies y' = y from y(0)=1 reaches e at t=1
// within 1e-4 using h = 0.01 (RK4's global O(h⁴) error is far tighter).
func TestSolveRK4_Exponential(t *testing.T) {
	ts, ys, err := signal.SolveRK4(func(_, y float64) float64 { return y }, 1, 0, 1, 0.01)
	require.NoError(t, err)

	require.Len(t, ts, 101, "ceil((1-0)/0.01)+1 samples")
	require.Len(t, ys, 101)
	assert.InDelta(t, 1.0, ts[100], 1e-12, "final time lands on tn")
	assert.InDelta(t, math.E, ys[100], 1e-4)
}

// TestSolveRK4_PolynomialExact verifies RK4 integrates y' = 2t exactly
// (the method is exact for polynomial solutions up to degree 4).
func TestSolveRK4_PolynomialExact(t *testing.T) {
	_, ys, err := signal.SolveRK4(func(tt, _ float64) float64 { return 2 * tt }, 0, 0, 1, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ys[len(ys)-1], 1e-12, "∫2t dt over [0,1] is exactly 1")
}

// TestSolveRK4_PartialLastStep verifies step counting when h does not
// divide the interval: ceil((1-0)/0.3) = 4 steps.
func TestSolveRK4_PartialLastStep(t *testing.T) {
	ts, ys, err := signal.SolveRK4(func(_, y float64) float64 { return y }, 1, 0, 1, 0.3)
	require.NoError(t, err)
	assert.Len(t, ts, 5)
	assert.Len(t, ys, 5)
	assert.InDelta(t, 1.2, ts[4], 1e-12, "fixed-step trajectory runs to steps·h")
}

// TestSolveRK4_Validation covers the guard rails.
func TestSolveRK4_Validation(t *testing.T) {
	f := func(_, y float64) float64 { return y }

	_, _, err := signal.SolveRK4(f, 1, 0, 1, 0)
	assert.ErrorIs(t, err, signal.ErrBadStep)

	_, _, err = signal.SolveRK4(f, 1, 0, 1, -0.1)
	assert.ErrorIs(t, err, signal.ErrBadStep)

	_, _, err = signal.SolveRK4(f, 1, 2, 2, 0.1)
	assert.ErrorIs(t, err, signal.ErrBadInterval)

	_, _, err = signal.SolveRK4(f, 1, 3, 1, 0.1)
	assert.ErrorIs(t, err, signal.ErrBadInterval)
}
