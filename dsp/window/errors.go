package window

import "errors"

var (
	// ErrEmpty is returned for an empty coefficient set.
	ErrEmpty = errors.New("window: no coefficients")
	// ErrZeroGain is returned when coefficients sum to zero.
	ErrZeroGain = errors.New("window: coherent gain is zero")
	// ErrLengthMismatch is returned when samples and coefficients differ
	// in length.
	ErrLengthMismatch = errors.New("window: length mismatch")
)
