package correlation_test

import (
	"context"
	"fmt"

	"github.com/corrstat/corrstat/correlation"
)

// ExamplePearson correlates two perfectly linearly related vitals series.
//
// Scenario:
//
//	x = [1, 2, 3, 4, 5]
//	y = [2, 4, 6, 8, 10]   (y = 2x, a perfect linear relationship)
//
// A perfect relationship short-circuits the t statistic: the p-value is
// reported as exactly 0 and the pair is always significant.
func ExamplePearson() {
	res, _ := correlation.Pearson(
		[]float64{1, 2, 3, 4, 5},
		[]float64{2, 4, 6, 8, 10},
	)
	fmt.Printf("r=%.2f p=%.2f significant=%v\n", res.Coefficient, res.PValue, res.Significant)
	// Output:
	// r=1.00 p=0.00 significant=true
}

// ExamplePairwiseMatrix builds a 3×3 Spearman matrix over three series
// using the default worker pool.
func ExamplePairwiseMatrix() {
	series := [][]float64{
		{1, 2, 3, 4, 5},
		{1, 8, 27, 64, 125}, // monotone in the first series
		{5, 4, 3, 2, 1},     // reversed
	}
	opts := correlation.DefaultMatrixOptions()
	opts.Method = correlation.MethodSpearman

	m, _ := correlation.PairwiseMatrix(context.Background(), series, opts)
	fmt.Print(m)
	// Output:
	// [1, 1, -1]
	// [1, 1, -1]
	// [-1, -1, 1]
}
