package correlation

import (
	"context"
	"runtime"

	"github.com/corrstat/corrstat/matrix"
	"golang.org/x/sync/errgroup"
)

// PairwiseMatrix computes the symmetric coefficient matrix over many
// series, fanning independent pairwise computations across a bounded
// worker pool.
//
// Concurrency model:
//   - Every upper-triangle cell (i, j), i < j, is an independent job on an
//     errgroup limited to opts.Workers goroutines.
//   - Each job writes only its own (i, j) and mirrored (j, i) cells —
//     per-cell ownership, no locking.
//   - Cancellation is cooperative BETWEEN pairwise jobs: a cancelled ctx
//     (or the first pairwise error) stops the remaining jobs; a single
//     coefficient's bounded cost is never interrupted mid-computation.
//   - Results are deterministic regardless of worker count: cell values
//     depend only on the input pair.
//
// The diagonal is fixed at 1.
//
// Errors:
//   - ErrTooFewSeries   — fewer than two series.
//   - ErrLengthMismatch — series of differing lengths (checked up front).
//   - ErrUnknownMethod  — unrecognized opts.Method.
//   - ctx.Err()         — when cancelled before completion.
//   - Any pairwise error (ErrTooFewSamples, ErrZeroVariance, ...) from the
//     first failing pair.
func PairwiseMatrix(ctx context.Context, series [][]float64, opts MatrixOptions) (*matrix.Dense, error) {
	k := len(series)
	if k < 2 {
		return nil, ErrTooFewSeries
	}
	for _, s := range series {
		if len(s) != len(series[0]) {
			return nil, ErrLengthMismatch
		}
	}
	if opts.Method != MethodPearson && opts.Method != MethodSpearman && opts.Method != MethodKendall {
		return nil, ErrUnknownMethod
	}

	out, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		if errSet := out.Set(i, i, 1); errSet != nil {
			return nil, errSet
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < k-1; i++ {
		for j := i + 1; j < k; j++ {
			i, j := i, j
			g.Go(func() error {
				// Cooperative cancellation point between pairwise jobs.
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				res, errPair := correlate(opts.Method, series[i], series[j])
				if errPair != nil {
					return errPair
				}
				// Disjoint cells per job; no synchronization needed.
				if errSet := out.Set(i, j, res.Coefficient); errSet != nil {
					return errSet
				}
				return out.Set(j, i, res.Coefficient)
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// correlate dispatches a single pairwise computation by method.
func correlate(m Method, x, y []float64) (Result, error) {
	switch m {
	case MethodPearson:
		return Pearson(x, y)
	case MethodSpearman:
		return Spearman(x, y)
	case MethodKendall:
		return Kendall(x, y)
	default:
		return Result{}, ErrUnknownMethod
	}
}
