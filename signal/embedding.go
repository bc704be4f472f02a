package signal

// PhaseSpace reconstructs a phase-space trajectory from a scalar series
// by time-delay embedding (Takens): vector i is
//
//	(series[i], series[i+delay], ..., series[i+(dimension-1)·delay])
//
// for i = 0 .. len(series) − (dimension−1)·delay − 1. The result has
// exactly len(series) − (dimension−1)·delay vectors, each of length
// dimension.
//
// Errors:
//   - ErrEmptySignal — empty series.
//   - ErrBadEmbedding — dimension < 1, delay < 1, or an embedding window
//     (dimension−1)·delay that leaves no complete vector.
func PhaseSpace(series []float64, dimension, delay int) ([][]float64, error) {
	if len(series) == 0 {
		return nil, ErrEmptySignal
	}
	if dimension < 1 || delay < 1 {
		return nil, ErrBadEmbedding
	}

	count := len(series) - (dimension-1)*delay
	if count <= 0 {
		return nil, ErrBadEmbedding
	}

	vectors := make([][]float64, count)
	for i := 0; i < count; i++ {
		v := make([]float64, dimension)
		for d := 0; d < dimension; d++ {
			v[d] = series[i+d*delay]
		}
		vectors[i] = v
	}
	return vectors, nil
}
