package engine

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/dkruger/transpec/internal/lines"
)

const (
	boltzmannJPerK = 1.380649e-23
	refTemperature = 296.0     // K, catalog reference
	c2             = 1.4387769 // second radiation constant, cm·K

	// Lines further than this from the grid are skipped; Lorentzian
	// wings beyond it contribute negligibly at atmospheric widths.
	wingCutoff = 25.0 // cm⁻¹

	parallelThreshold = 4096 // grid points
)

// CPUBackend solves spectra line by line on the host.
type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{workers: runtime.NumCPU()}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }

func (c *CPUBackend) Solve(ctx context.Context, req Request) (Handle, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	selected, err := lines.Select(req.Molecule, req.Database, req.Isotopes)
	if err != nil {
		return nil, err
	}

	n := int(math.Floor((req.WavenumberMax-req.WavenumberMin)/req.WavenumberStep)) + 1
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = req.WavenumberMin + float64(i)*req.WavenumberStep
	}

	h := &cpuHandle{
		backend: c,
		grid:    grid,
		lines:   selected,
	}
	if err := h.solve(ctx, req.Conditions); err != nil {
		return nil, err
	}
	return h, nil
}

// cpuHandle keeps the ascending wavenumber grid and the selected lines so a
// Resolve under new conditions reuses the window-dependent setup.
type cpuHandle struct {
	backend       *CPUBackend
	grid          []float64 // ascending
	lines         []lines.Line
	transmittance []float64 // aligned with grid
	released      bool
}

func (h *cpuHandle) Transmittance() ([]float64, []float64) {
	return h.grid, h.transmittance
}

func (h *cpuHandle) Resolve(ctx context.Context, c Conditions) error {
	if h.released {
		return ErrReleased
	}
	return h.solve(ctx, c)
}

func (h *cpuHandle) Release() error {
	h.released = true
	h.transmittance = nil
	return nil
}

func (h *cpuHandle) solve(ctx context.Context, c Conditions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Absorber column density in molecules/cm³: ideal gas at (p, T),
	// scaled by the mixing ratio. 1 bar = 1e5 Pa; 1e-6 m⁻³ -> cm⁻³.
	numberDensity := c.PressureBar * 1e5 / (boltzmannJPerK * c.TemperatureK) * 1e-6
	absorbers := c.MoleFraction * numberDensity

	tau := make([]float64, len(h.grid))

	if len(h.grid) >= parallelThreshold && h.backend != nil && h.backend.workers > 1 {
		h.accumulateParallel(tau, c, absorbers)
	} else {
		h.accumulate(tau, 0, len(tau), c, absorbers)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	tr := make([]float64, len(tau))
	for i, t := range tau {
		tr[i] = math.Exp(-t * c.PathLengthCm)
	}
	h.transmittance = tr
	return nil
}

// accumulate adds the absorption coefficient [cm⁻¹] of every line over
// grid[from:to] into tau.
func (h *cpuHandle) accumulate(tau []float64, from, to int, c Conditions, absorbers float64) {
	tRatio := refTemperature / c.TemperatureK

	for _, ln := range h.lines {
		if ln.Center < h.grid[0]-wingCutoff || ln.Center > h.grid[len(h.grid)-1]+wingCutoff {
			continue
		}

		// Pressure-broadened half width with its temperature scaling.
		gamma := ln.AirWidth * c.PressureBar * math.Pow(tRatio, ln.TempExp)
		if gamma <= 0 {
			continue
		}

		// Line strength at T: linear-molecule partition scaling and
		// the Boltzmann factor of the lower state.
		strength := ln.Intensity * tRatio *
			math.Exp(-c2*ln.LowerEnergy*(1/c.TemperatureK-1/refTemperature))

		peak := strength * absorbers * gamma / math.Pi
		g2 := gamma * gamma

		for i := from; i < to; i++ {
			d := h.grid[i] - ln.Center
			tau[i] += peak / (d*d + g2)
		}
	}
}

func (h *cpuHandle) accumulateParallel(tau []float64, c Conditions, absorbers float64) {
	workers := h.backend.workers
	chunk := (len(tau) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		from := w * chunk
		if from >= len(tau) {
			break
		}
		to := from + chunk
		if to > len(tau) {
			to = len(tau)
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			h.accumulate(tau, from, to, c, absorbers)
		}(from, to)
	}
	wg.Wait()
}
