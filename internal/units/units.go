// Package units converts between the caller-facing wavelength/Pa domain
// and the wavenumber/bar domain the line-by-line engine operates in.
package units

import (
	"errors"
	"fmt"
)

const (
	// 1 cm = 1e7 nm, so wavenumber [cm⁻¹] = 1e7 / wavelength [nm].
	nmPerCm = 1e7

	barPerPa = 1e-5
)

// ErrInvalidParameter indicates a non-physical conversion input.
var ErrInvalidParameter = errors.New("units: parameter out of physical range")

// WavelengthToWavenumber converts a wavelength in nm to a wavenumber in cm⁻¹.
func WavelengthToWavenumber(wavelength float64) (float64, error) {
	if wavelength <= 0 {
		return 0, fmt.Errorf("%w: wavelength %g nm", ErrInvalidParameter, wavelength)
	}
	return nmPerCm / wavelength, nil
}

// WavenumberToWavelength converts a wavenumber in cm⁻¹ to a wavelength in nm.
func WavenumberToWavelength(wavenumber float64) (float64, error) {
	if wavenumber <= 0 {
		return 0, fmt.Errorf("%w: wavenumber %g cm⁻¹", ErrInvalidParameter, wavenumber)
	}
	return nmPerCm / wavenumber, nil
}

// DeltaWavelengthToDeltaWavenumber converts a wavelength step in nm to the
// equivalent wavenumber step in cm⁻¹ at the given central wavelength, using
// the local derivative |dν/dλ| = 1e7/λ² rather than a constant factor.
func DeltaWavelengthToDeltaWavenumber(deltaWavelength, centralWavelength float64) (float64, error) {
	if centralWavelength <= 0 {
		return 0, fmt.Errorf("%w: central wavelength %g nm", ErrInvalidParameter, centralWavelength)
	}
	return nmPerCm * deltaWavelength / (centralWavelength * centralWavelength), nil
}

// PaToBar converts a pressure in Pa to bar.
func PaToBar(pressure float64) float64 {
	return pressure * barPerPa
}

// WavelengthsFromWavenumbers maps a wavenumber slice to wavelengths,
// preserving element order.
func WavelengthsFromWavenumbers(wavenumbers []float64) ([]float64, error) {
	out := make([]float64, len(wavenumbers))
	for i, wn := range wavenumbers {
		wl, err := WavenumberToWavelength(wn)
		if err != nil {
			return nil, err
		}
		out[i] = wl
	}
	return out, nil
}
