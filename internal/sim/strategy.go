package sim

// Strategy is how a Compute obtains its engine handle.
type Strategy int

const (
	// FreshHandle builds a new handle via Backend.Solve.
	FreshHandle Strategy = iota

	// ReuseHandle re-solves on the existing handle via Handle.Resolve.
	ReuseHandle
)

// window is a wavelength interval in nm.
type window struct {
	min, max float64
}

// chooseStrategy decides between re-solving on the held handle and building
// a fresh one. Reuse is only sound when a handle exists and the window is
// unchanged, since the handle's grid and line selection are window-bound.
func chooseStrategy(prev, next window, hasHandle bool) Strategy {
	if hasHandle && prev == next {
		return ReuseHandle
	}
	return FreshHandle
}
