package logistic

import "errors"

// Domain errors for configuration validation.
var (
	// ErrGridBounds indicates a parameter grid with min >= max or too few steps.
	ErrGridBounds = errors.New("logistic: parameter grid bounds invalid")

	// ErrSeedBounds indicates a seed state outside [0, 1].
	ErrSeedBounds = errors.New("logistic: seed state outside [0, 1]")

	// ErrTransientBounds indicates a transient longer than the iteration count.
	ErrTransientBounds = errors.New("logistic: transient exceeds iteration count")

	// ErrWindowBounds indicates a sliding window not shorter than the trajectory.
	ErrWindowBounds = errors.New("logistic: window must be positive and shorter than trajectory")
)
