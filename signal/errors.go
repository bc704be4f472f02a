package signal

import "errors"

var (
	// ErrEmptySignal indicates an empty input series.
	ErrEmptySignal = errors.New("signal: input series must be non-empty")

	// ErrBadStep indicates a non-positive step size or sampling interval.
	ErrBadStep = errors.New("signal: step size must be positive")

	// ErrBadInterval indicates an integration interval with tn ≤ t0.
	ErrBadInterval = errors.New("signal: integration interval must satisfy tn > t0")

	// ErrBadScale indicates a non-positive wavelet scale.
	ErrBadScale = errors.New("signal: wavelet scale must be positive")

	// ErrNoScales indicates an empty scale vector.
	ErrNoScales = errors.New("signal: at least one wavelet scale required")

	// ErrBadEmbedding indicates embedding parameters that leave no room
	// for even one delay vector (dimension/delay < 1 or
	// len(series) ≤ (dimension-1)·delay).
	ErrBadEmbedding = errors.New("signal: embedding exceeds series length")

	// ErrTooFewPoints indicates fewer than two interpolation points.
	ErrTooFewPoints = errors.New("signal: interpolation requires at least two points")

	// ErrTooManyPoints indicates more interpolation points than the
	// direct Lagrange formula can evaluate without catastrophic
	// cancellation (see MaxLagrangePoints).
	ErrTooManyPoints = errors.New("signal: too many points for stable Lagrange interpolation")

	// ErrDuplicateAbscissa indicates two interpolation points sharing an
	// x-coordinate, which zeroes a basis denominator.
	ErrDuplicateAbscissa = errors.New("signal: duplicate x-coordinate in interpolation points")
)
