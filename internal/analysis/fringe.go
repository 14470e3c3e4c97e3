// Package analysis inspects computed spectra for periodic structure, e.g.
// etalon fringes from window reflections in the absorption cell.
package analysis

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrTooShort indicates a spectrum with too few samples to analyze.
var ErrTooShort = errors.New("analysis: spectrum too short")

const minSamples = 16

// PowerSpectrum returns the magnitude spectrum of the mean-removed signal,
// bins [0..Nyquist), zero-padded to a power of two.
func PowerSpectrum(signal []float64) ([]float64, error) {
	if len(signal) < minSamples {
		return nil, fmt.Errorf("%w: %d samples", ErrTooShort, len(signal))
	}

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(len(signal))

	n := nextPow2(len(signal))
	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v-mean, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	ps := make([]float64, n/2)
	for i := range ps {
		re := real(out[i])
		im := imag(out[i])
		ps[i] = re*re + im*im
	}
	return ps, nil
}

// Fringe is a dominant periodic component of a spectrum.
type Fringe struct {
	PeriodNm float64 // wavelength period of the modulation
	Power    float64 // squared magnitude at the dominant bin
}

// DominantFringe locates the strongest non-DC periodic component of the
// transmission signal. The wavelength grid is assumed uniform; the period
// is derived from its mean spacing.
func DominantFringe(wavelength, transmission []float64) (Fringe, error) {
	if len(wavelength) != len(transmission) {
		return Fringe{}, fmt.Errorf("analysis: misaligned input: %d vs %d",
			len(wavelength), len(transmission))
	}
	if len(wavelength) < minSamples {
		return Fringe{}, fmt.Errorf("%w: %d samples", ErrTooShort, len(wavelength))
	}

	ps, err := PowerSpectrum(transmission)
	if err != nil {
		return Fringe{}, err
	}

	maxBin := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[maxBin] {
			maxBin = k
		}
	}

	spacing := (wavelength[len(wavelength)-1] - wavelength[0]) / float64(len(wavelength)-1)
	padded := 2 * len(ps)

	return Fringe{
		PeriodNm: float64(padded) * spacing / float64(maxBin),
		Power:    ps[maxBin],
	}, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
