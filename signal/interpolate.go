package signal

// MaxLagrangePoints bounds the direct Lagrange formula. Past roughly 8-10
// points the basis products cancel catastrophically and the interpolant
// is numerically meaningless, so the package refuses rather than return
// garbage. Callers with denser data should fit piecewise (splines) or use
// a barycentric formulation.
const MaxLagrangePoints = 12

// Point is a known (x, y) sample for interpolation.
type Point struct {
	X, Y float64
}

// LagrangeInterpolate evaluates the unique degree-(k−1) polynomial
// through the given points at x, using the direct (non-barycentric)
// Lagrange basis formula:
//
//	P(x) = Σ_i y_i · Π_{j≠i} (x − x_j)/(x_i − x_j)
//
// Complexity: O(k²) for k points.
//
// Errors:
//   - ErrTooFewPoints      — fewer than two points.
//   - ErrTooManyPoints     — more than MaxLagrangePoints.
//   - ErrDuplicateAbscissa — two points share an x-coordinate.
func LagrangeInterpolate(points []Point, x float64) (float64, error) {
	k := len(points)
	if k < 2 {
		return 0, ErrTooFewPoints
	}
	if k > MaxLagrangePoints {
		return 0, ErrTooManyPoints
	}
	for i := 0; i < k-1; i++ {
		for j := i + 1; j < k; j++ {
			if points[i].X == points[j].X {
				return 0, ErrDuplicateAbscissa
			}
		}
	}

	result := 0.0
	for i := 0; i < k; i++ {
		term := points[i].Y
		for j := 0; j < k; j++ {
			if j == i {
				continue
			}
			term *= (x - points[j].X) / (points[i].X - points[j].X)
		}
		result += term
	}
	return result, nil
}
