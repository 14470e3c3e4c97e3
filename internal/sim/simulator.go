// Package sim wraps the line-by-line engine behind a caller-facing
// wavelength/Pa API and memoizes results: a compute with an unchanged
// parameter set is a no-op, and a parameter-only change re-solves on the
// existing engine handle instead of rebuilding it.
//
// A Simulator is exclusively owned by one logical caller; it is not safe
// for concurrent use.
package sim

import (
	"context"
	"fmt"

	"github.com/dkruger/transpec/internal/engine"
	"github.com/dkruger/transpec/internal/lines"
	"github.com/dkruger/transpec/internal/spectrum"
	"github.com/dkruger/transpec/internal/units"
)

// Defaults for the optional construction fields.
const (
	DefaultIsotopes       = "1"
	DefaultDatabase       = lines.Hitran
	DefaultWavelengthStep = 0.01 // nm
)

// Params configures a Simulator. Molecule, VMR, Pressure, Temperature and
// Length are required; zero-valued optional fields get the package
// defaults.
type Params struct {
	Molecule    string
	VMR         float64 // volume mixing ratio
	Pressure    float64 // Pa
	Temperature float64 // K
	Length      float64 // absorption path, m

	Isotopes       string  // comma-separated ids, default "1"
	Database       string  // "hitran" or "hitemp", default "hitran"
	WavelengthStep float64 // nm, default 0.01

	UseGPU             bool
	GPUDeviceID        int
	KeepDeviceResident bool // GPU: defer device release across computes
}

func (p *Params) setDefaults() {
	if p.Isotopes == "" {
		p.Isotopes = DefaultIsotopes
	}
	if p.Database == "" {
		p.Database = DefaultDatabase
	}
	if p.WavelengthStep == 0 {
		p.WavelengthStep = DefaultWavelengthStep
	}
}

func (p Params) validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"molecule", p.Molecule != ""},
		{"vmr", p.VMR > 0},
		{"pressure", p.Pressure > 0},
		{"temperature", p.Temperature > 0},
		{"length", p.Length > 0},
	}
	for _, r := range required {
		if !r.ok {
			return fmt.Errorf("%w: %s", ErrMissingParameter, r.name)
		}
	}
	return nil
}

// shadow is the parameter tuple recorded at the last successful
// computation. Compared element-wise with exact numeric equality.
type shadow struct {
	vmr, pressure, temperature, length float64
	wlMin, wlMax                       float64
}

// Simulator computes transmission spectra for one molecule under mutable
// physical conditions.
type Simulator struct {
	params  Params
	backend engine.Backend

	// Live physical fields, mutable between computes.
	vmr, pressure, temperature, length float64

	computed bool
	win      window
	result   *spectrum.Spectrum
	last     shadow
	handle   engine.Handle
}

// New builds a Simulator after validating the parameter set. The engine
// backend is chosen from Params.UseGPU and Params.GPUDeviceID.
func New(p Params) (*Simulator, error) {
	return NewWithBackend(p, nil)
}

// NewWithBackend is New with an explicit engine backend. A nil backend
// selects one from the parameters.
func NewWithBackend(p Params, backend engine.Backend) (*Simulator, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	p.setDefaults()

	if backend == nil {
		backend = engine.Select(p.UseGPU, p.GPUDeviceID)
	}

	return &Simulator{
		params:      p,
		backend:     backend,
		vmr:         p.VMR,
		pressure:    p.Pressure,
		temperature: p.Temperature,
		length:      p.Length,
	}, nil
}

func (s *Simulator) Molecule() string        { return s.params.Molecule }
func (s *Simulator) Isotopes() string        { return s.params.Isotopes }
func (s *Simulator) Database() string        { return s.params.Database }
func (s *Simulator) WavelengthStep() float64 { return s.params.WavelengthStep }
func (s *Simulator) BackendName() string     { return s.backend.Name() }

func (s *Simulator) VMR() float64         { return s.vmr }
func (s *Simulator) Pressure() float64    { return s.pressure }
func (s *Simulator) Temperature() float64 { return s.temperature }
func (s *Simulator) Length() float64      { return s.length }

// The physical conditions may be changed between computes; the next
// Compute detects the difference against the shadow tuple.
func (s *Simulator) SetVMR(v float64)         { s.vmr = v }
func (s *Simulator) SetPressure(p float64)    { s.pressure = p }
func (s *Simulator) SetTemperature(t float64) { s.temperature = t }
func (s *Simulator) SetLength(l float64)      { s.length = l }

// Compute calculates the transmission spectrum over [wlMin, wlMax] nm.
//
// When the (vmr, pressure, temperature, length, wlMin, wlMax) tuple exactly
// matches the one recorded at the last successful computation, the stored
// result is kept and no engine call is made. Otherwise the solve strategy
// is chosen by chooseStrategy: an unchanged window re-solves on the
// existing handle, a changed window builds a fresh one.
func (s *Simulator) Compute(ctx context.Context, wlMin, wlMax float64) error {
	if wlMin > wlMax {
		return fmt.Errorf("%w: [%g, %g]", spectrum.ErrInvalidRange, wlMin, wlMax)
	}

	next := shadow{
		vmr:         s.vmr,
		pressure:    s.pressure,
		temperature: s.temperature,
		length:      s.length,
		wlMin:       wlMin,
		wlMax:       wlMax,
	}
	if s.computed && next == s.last {
		return nil
	}

	// The engine works in wavenumber/bar/cm; the window bounds swap
	// because wavenumber inverts the wavelength ordering.
	wnMin, err := units.WavelengthToWavenumber(wlMax)
	if err != nil {
		return err
	}
	wnMax, err := units.WavelengthToWavenumber(wlMin)
	if err != nil {
		return err
	}
	centralWl := (wlMin + wlMax) / 2
	wnStep, err := units.DeltaWavelengthToDeltaWavenumber(s.params.WavelengthStep, centralWl)
	if err != nil {
		return err
	}

	cond := engine.Conditions{
		PressureBar:  units.PaToBar(s.pressure),
		TemperatureK: s.temperature,
		MoleFraction: s.vmr,
		PathLengthCm: s.length * 100,
	}

	newWin := window{min: wlMin, max: wlMax}
	handle := s.handle

	switch chooseStrategy(s.win, newWin, s.handle != nil) {
	case ReuseHandle:
		if err := s.handle.Resolve(ctx, cond); err != nil {
			// The handle state is suspect after a failed re-solve;
			// release it so the next compute starts fresh. The
			// stored result and shadow stay untouched.
			s.releaseHandle()
			return err
		}
	case FreshHandle:
		s.releaseHandle()
		handle, err = s.backend.Solve(ctx, engine.Request{
			WavenumberMin:  wnMin,
			WavenumberMax:  wnMax,
			WavenumberStep: wnStep,
			Molecule:       s.params.Molecule,
			Isotopes:       s.params.Isotopes,
			Database:       s.params.Database,
			Conditions:     cond,
		})
		if err != nil {
			return err
		}
	}

	wn, tr := handle.Transmittance()
	result, err := spectrum.FromEngineResult(wn, tr)
	if err != nil {
		return err
	}

	// Shadow, window and result are replaced as one unit; a reader never
	// sees a shadow that does not match the stored result.
	s.result = result
	s.last = next
	s.win = newWin
	s.handle = handle
	s.computed = true

	if s.params.UseGPU && !s.params.KeepDeviceResident {
		s.releaseHandle()
	}
	return nil
}

// Spectrum returns the full stored spectrum over the last-computed window.
func (s *Simulator) Spectrum() (wavelength, transmission []float64, err error) {
	if !s.computed {
		return nil, nil, ErrNotComputed
	}
	return s.result.Wavelength, s.result.Transmission, nil
}

// SpectrumRange returns the stored spectrum restricted to [wlMin, wlMax].
// The requested window must be fully contained in the computed one.
func (s *Simulator) SpectrumRange(wlMin, wlMax float64) ([]float64, []float64, error) {
	if !s.computed {
		return nil, nil, ErrNotComputed
	}
	if wlMin < s.win.min || wlMax > s.win.max {
		return nil, nil, fmt.Errorf("%w: requested [%g, %g], computed [%g, %g]",
			ErrRangeNotCovered, wlMin, wlMax, s.win.min, s.win.max)
	}
	return s.result.Range(wlMin, wlMax)
}

// Window returns the last-computed wavelength window.
func (s *Simulator) Window() (wlMin, wlMax float64, ok bool) {
	return s.win.min, s.win.max, s.computed
}

// ReleaseDevice frees any engine resources held between computes. The
// stored result survives; only the re-solve fast path is lost.
func (s *Simulator) ReleaseDevice() error {
	if s.handle == nil {
		return nil
	}
	err := s.handle.Release()
	s.handle = nil
	return err
}

func (s *Simulator) releaseHandle() {
	if s.handle != nil {
		s.handle.Release()
		s.handle = nil
	}
}

// Title is the default plot title for the current conditions.
func (s *Simulator) Title() string {
	return fmt.Sprintf("Transmittance spectrum for %s at %g K, %g Pa, %g m and %g VMR",
		s.params.Molecule, s.temperature, s.pressure, s.length, s.vmr)
}
