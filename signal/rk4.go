package signal

import "math"

// ODEFunc is the right-hand side y' = f(t, y) of a first-order ODE.
type ODEFunc func(t, y float64) float64

// SolveRK4 integrates y' = f(t, y) from (t0, y0) to tn with the classic
// fixed-step 4-stage Runge–Kutta method.
//
// Algorithm Outline:
//  1. steps = ceil((tn−t0)/h); the step size is held fixed at h.
//  2. Per step: k1 = f(t, y), k2 = f(t+h/2, y+h·k1/2),
//     k3 = f(t+h/2, y+h·k2/2), k4 = f(t+h, y+h·k3);
//     y ← y + h·(k1 + 2k2 + 2k3 + k4)/6.
//  3. Returns the full trajectory: steps+1 sample times and values,
//     starting at (t0, y0).
//
// Local truncation error is O(h⁵), global O(h⁴).
//
// Errors:
//   - ErrBadStep     — h ≤ 0 or NaN.
//   - ErrBadInterval — tn ≤ t0.
func SolveRK4(f ODEFunc, y0, t0, tn, h float64) (ts, ys []float64, err error) {
	if h <= 0 || math.IsNaN(h) {
		return nil, nil, ErrBadStep
	}
	if tn <= t0 || math.IsNaN(tn) || math.IsNaN(t0) {
		return nil, nil, ErrBadInterval
	}

	steps := int(math.Ceil((tn - t0) / h))
	ts = make([]float64, steps+1)
	ys = make([]float64, steps+1)
	ts[0], ys[0] = t0, y0

	t, y := t0, y0
	for i := 1; i <= steps; i++ {
		k1 := f(t, y)
		k2 := f(t+h/2, y+h*k1/2)
		k3 := f(t+h/2, y+h*k2/2)
		k4 := f(t+h, y+h*k3)

		y += h * (k1 + 2*k2 + 2*k3 + k4) / 6
		t = t0 + float64(i)*h

		ts[i], ys[i] = t, y
	}
	return ts, ys, nil
}
