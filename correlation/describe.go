package correlation

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary holds the per-variable descriptive statistics batch callers
// report alongside a pairwise matrix.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes a Summary for each series.
//
// StdDev is the sample (n−1) standard deviation, matching the moments the
// correlation tests are built on.
//
// Errors:
//   - ErrTooFewSeries — empty input.
//   - wrapped ErrTooFewSamples — any empty series (index in the message).
func Describe(series [][]float64) ([]Summary, error) {
	if len(series) == 0 {
		return nil, ErrTooFewSeries
	}

	out := make([]Summary, len(series))
	for i, s := range series {
		if len(s) == 0 {
			return nil, fmt.Errorf("series %d: %w", i, ErrTooFewSamples)
		}
		d := stats.Float64Data(s)

		meanV, err := stats.Mean(d)
		if err != nil {
			return nil, fmt.Errorf("series %d: mean: %w", i, err)
		}
		medianV, err := stats.Median(d)
		if err != nil {
			return nil, fmt.Errorf("series %d: median: %w", i, err)
		}
		minV, err := stats.Min(d)
		if err != nil {
			return nil, fmt.Errorf("series %d: min: %w", i, err)
		}
		maxV, err := stats.Max(d)
		if err != nil {
			return nil, fmt.Errorf("series %d: max: %w", i, err)
		}
		// SampleStandardDeviation errors on n < 2; a single sample has no
		// spread, report 0.
		stdV := 0.0
		if len(s) > 1 {
			stdV, err = stats.StandardDeviationSample(d)
			if err != nil {
				return nil, fmt.Errorf("series %d: stdev: %w", i, err)
			}
		}

		out[i] = Summary{
			N:      len(s),
			Mean:   meanV,
			Median: medianV,
			StdDev: stdV,
			Min:    minV,
			Max:    maxV,
		}
	}
	return out, nil
}
