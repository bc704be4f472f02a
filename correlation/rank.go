package correlation

import "sort"

// Spearman computes rank correlation: both sequences are transformed to
// average-rank-for-ties ranks and the Pearson test runs on the ranks.
// Captures monotonic (not necessarily linear) association.
//
// Tie handling is a correctness requirement, not a nicety: every run of
// equal values receives the mean of the rank positions it jointly
// occupies. A naive first-occurrence rank biases the coefficient.
//
// Errors: as Pearson (ErrLengthMismatch, ErrTooFewSamples,
// ErrZeroVariance — the latter when a sequence is entirely tied).
func Spearman(x, y []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, ErrLengthMismatch
	}
	if len(x) < 3 {
		return Result{}, ErrTooFewSamples
	}
	return Pearson(averageRanks(x), averageRanks(y))
}

// averageRanks returns 1-based ranks with tied runs sharing the mean of
// their occupied positions.
//
// Algorithm Outline:
//  1. Stable-sort index permutation by value.
//  2. Walk tied runs [i, j); assign each member the mean rank
//     (i+1 + j) / 2 of the positions the run occupies.
//
// Complexity: O(n log n) time, O(n) space.
func averageRanks(v []float64) []float64 {
	n := len(v)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && v[idx[j]] == v[idx[i]] {
			j++
		}
		// Positions i+1 .. j (1-based) are jointly occupied by the run.
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}
	return ranks
}
