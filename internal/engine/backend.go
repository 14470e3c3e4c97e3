package engine

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrReleased indicates a handle used after its resources were released.
	ErrReleased = errors.New("engine: handle already released")

	// ErrBadGrid indicates a request with an unusable wavenumber grid.
	ErrBadGrid = errors.New("engine: bad wavenumber grid")
)

// Conditions are the physical conditions of a solve. They can change
// between re-solves on the same handle.
type Conditions struct {
	PressureBar  float64
	TemperatureK float64
	MoleFraction float64
	PathLengthCm float64
}

// Request describes a full solve, including the window-dependent setup
// (grid and line selection) that is expensive to rebuild.
type Request struct {
	WavenumberMin  float64 // cm⁻¹
	WavenumberMax  float64 // cm⁻¹
	WavenumberStep float64 // cm⁻¹
	Molecule       string
	Isotopes       string // comma-separated ids, e.g. "1,2"
	Database       string // "hitran" or "hitemp"
	Conditions     Conditions
}

// Handle is a solved spectrum. It retains the grid and selected lines so
// that Resolve under new physical conditions skips the window-dependent
// setup. Handles are not safe for concurrent use.
type Handle interface {
	// Transmittance returns the solved grid, ascending in wavenumber,
	// with the transmittance array element-aligned.
	Transmittance() (wavenumber, transmittance []float64)

	// Resolve re-solves on the existing grid under new conditions.
	Resolve(ctx context.Context, c Conditions) error

	// Release frees any device resources held by the handle. Further
	// Resolve calls fail with ErrReleased.
	Release() error
}

// Backend solves transmission spectra.
type Backend interface {
	Name() string
	Available() bool
	Solve(ctx context.Context, req Request) (Handle, error)
}

// Select returns the backend for a run. The GPU backend is chosen only
// when requested and present on the machine; otherwise the CPU backend is
// used. The device id is threaded through construction rather than read
// from package state.
func Select(useGPU bool, deviceID int) Backend {
	if useGPU {
		gpu := NewGPUBackend(deviceID)
		if gpu.Available() {
			return gpu
		}
	}
	return NewCPUBackend()
}

func (r Request) validate() error {
	if r.WavenumberMin >= r.WavenumberMax {
		return fmt.Errorf("%w: [%g, %g] cm⁻¹", ErrBadGrid, r.WavenumberMin, r.WavenumberMax)
	}
	if r.WavenumberStep <= 0 {
		return fmt.Errorf("%w: step %g cm⁻¹", ErrBadGrid, r.WavenumberStep)
	}
	return nil
}
