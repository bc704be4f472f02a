package signal_test

import (
	"fmt"
	"math"

	"github.com/corrstat/corrstat/signal"
)

// ExampleDominantFrequencies picks the driving tone out of a clean 5 Hz
// sine sampled at 100 Hz.
func ExampleDominantFrequencies() {
	const dt = 0.01
	series := make([]float64, 100)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * 5 * float64(i) * dt)
	}

	fd, _ := signal.DominantFrequencies(series, dt)
	fmt.Printf("dominant: %.1f Hz\n", fd.Dominant[0])
	// Output:
	// dominant: 5.0 Hz
}

// ExampleSolveRK4 integrates y' = y from y(0)=1 to t=1; the exact answer
// is e.
func ExampleSolveRK4() {
	_, ys, _ := signal.SolveRK4(
		func(_, y float64) float64 { return y },
		1, 0, 1, 0.01,
	)
	fmt.Printf("y(1) = %.4f\n", ys[len(ys)-1])
	// Output:
	// y(1) = 2.7183
}

// ExampleLagrangeInterpolate fills a gap in a parabolic sample.
func ExampleLagrangeInterpolate() {
	points := []signal.Point{{X: 1, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 9}}
	v, _ := signal.LagrangeInterpolate(points, 2.5)
	fmt.Printf("P(2.5) = %.2f\n", v)
	// Output:
	// P(2.5) = 6.25
}

// ExamplePhaseSpace embeds a short series with dimension 2 and delay 2.
func ExamplePhaseSpace() {
	vectors, _ := signal.PhaseSpace([]float64{1, 2, 3, 4, 5, 6}, 2, 2)
	fmt.Println(len(vectors), vectors[0], vectors[len(vectors)-1])
	// Output:
	// 4 [1 3] [4 6]
}
