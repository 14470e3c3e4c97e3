// Package engine computes equilibrium transmission spectra on a wavenumber
// grid from the bundled line catalog.
//
// A Solve builds the window-dependent setup (grid allocation and line
// selection) and returns a Handle. Re-solving the same window under new
// physical conditions goes through Handle.Resolve, which reuses that setup;
// a changed window requires a fresh Solve.
//
// Two backends exist:
//
//   - CPU: host line-by-line solve, parallelized over grid chunks
//   - CUDA: kernel dispatch with device-resident line buffers
//
// Build with CUDA support:
//
//	go build -tags cuda ./...
//
// Without the cuda tag the GPU backend reports unavailable and falls back
// to the CPU path.
package engine
