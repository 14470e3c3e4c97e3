package sim

import "errors"

var (
	// ErrMissingParameter indicates a required construction parameter that
	// is absent or non-physical.
	ErrMissingParameter = errors.New("sim: missing required parameter")

	// ErrNotComputed indicates a result accessor called before the first
	// successful Compute.
	ErrNotComputed = errors.New("sim: no spectrum computed yet")

	// ErrRangeNotCovered indicates a requested window outside the one the
	// stored spectrum was computed over.
	ErrRangeNotCovered = errors.New("sim: requested range not covered by computed window")
)
