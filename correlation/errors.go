package correlation

import "errors"

var (
	// ErrLengthMismatch indicates input sequences of different lengths.
	ErrLengthMismatch = errors.New("correlation: input sequences must have equal length")

	// ErrTooFewSamples indicates a sample too short for the requested
	// degrees of freedom (n ≥ 3 for simple tests, n ≥ 4 for partial,
	// n ≥ p+2 for multiple correlation with p regressors).
	ErrTooFewSamples = errors.New("correlation: insufficient sample size for significance test")

	// ErrZeroVariance indicates a constant input sequence; a correlation
	// coefficient is undefined when a variance in the denominator is zero.
	ErrZeroVariance = errors.New("correlation: input sequence has zero variance")

	// ErrDegenerateControl indicates a control variable perfectly
	// correlated with one of the primaries, which zeroes the partial
	// correlation denominator.
	ErrDegenerateControl = errors.New("correlation: control variable perfectly correlated with input")

	// ErrNoRegressors indicates Multiple was called without independents.
	ErrNoRegressors = errors.New("correlation: at least one independent variable required")

	// ErrTooFewSeries indicates PairwiseMatrix needs at least two series.
	ErrTooFewSeries = errors.New("correlation: at least two series required")

	// ErrUnknownMethod indicates an unrecognized Method value.
	ErrUnknownMethod = errors.New("correlation: unknown correlation method")
)
