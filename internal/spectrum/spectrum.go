// Package spectrum holds computed transmission spectra and window extraction.
package spectrum

import (
	"errors"
	"fmt"

	"github.com/dkruger/transpec/internal/units"
)

// ErrInvalidRange indicates a window whose minimum exceeds its maximum.
var ErrInvalidRange = errors.New("spectrum: range minimum exceeds maximum")

// Spectrum is a transmission spectrum sampled on an ascending wavelength
// grid. Wavelength and Transmission always have equal length.
type Spectrum struct {
	Wavelength   []float64 // nm, ascending
	Transmission []float64
}

// Len returns the number of samples.
func (s *Spectrum) Len() int { return len(s.Wavelength) }

// FromEngineResult converts an engine result (ascending wavenumber, aligned
// transmittance) into an ascending-wavelength spectrum. Ascending wavenumber
// means descending wavelength, so both arrays are reversed in lockstep to
// preserve element alignment.
func FromEngineResult(wavenumber, transmittance []float64) (*Spectrum, error) {
	if len(wavenumber) != len(transmittance) {
		return nil, fmt.Errorf("spectrum: length mismatch: %d wavenumbers, %d transmittances",
			len(wavenumber), len(transmittance))
	}

	wl, err := units.WavelengthsFromWavenumbers(wavenumber)
	if err != nil {
		return nil, err
	}

	n := len(wl)
	s := &Spectrum{
		Wavelength:   make([]float64, n),
		Transmission: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.Wavelength[i] = wl[n-1-i]
		s.Transmission[i] = transmittance[n-1-i]
	}
	return s, nil
}

// Range returns the element-aligned subsequence whose wavelengths fall in
// the inclusive [wlMin, wlMax] window. When no sample falls in range it
// returns empty (non-nil) slices, not an error.
func Range(wlMin, wlMax float64, wavelength, transmission []float64) ([]float64, []float64, error) {
	if wlMin > wlMax {
		return nil, nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, wlMin, wlMax)
	}

	outWl := make([]float64, 0)
	outTr := make([]float64, 0)
	for i, wl := range wavelength {
		if wl >= wlMin && wl <= wlMax {
			outWl = append(outWl, wl)
			outTr = append(outTr, transmission[i])
		}
	}
	return outWl, outTr, nil
}

// Range extracts a window from the spectrum. See the package-level Range.
func (s *Spectrum) Range(wlMin, wlMax float64) ([]float64, []float64, error) {
	return Range(wlMin, wlMax, s.Wavelength, s.Transmission)
}
