package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestPowerSpectrumFlatSignal(t *testing.T) {
	signal := make([]float64, 64)
	for i := range signal {
		signal[i] = 0.75
	}

	ps, err := PowerSpectrum(signal)
	if err != nil {
		t.Fatal(err)
	}
	for k, p := range ps {
		if p > 1e-18 {
			t.Errorf("flat signal should have no power, bin %d = %g", k, p)
		}
	}
}

func TestPowerSpectrumTooShort(t *testing.T) {
	if _, err := PowerSpectrum(make([]float64, 4)); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestDominantFringe(t *testing.T) {
	// 5 nm sinusoidal fringe on a 0.05 nm grid.
	const (
		n       = 500
		spacing = 0.05
		period  = 5.0
	)
	wl := make([]float64, n)
	tr := make([]float64, n)
	for i := range wl {
		wl[i] = 4200 + float64(i)*spacing
		tr[i] = 0.9 - 0.05*math.Sin(2*math.Pi*wl[i]/period)
	}

	fringe, err := DominantFringe(wl, tr)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(fringe.PeriodNm-period) > 0.6 {
		t.Errorf("expected period near %g nm, got %g nm", period, fringe.PeriodNm)
	}
	if fringe.Power <= 0 {
		t.Error("expected non-zero power at the fringe bin")
	}
}

func TestDominantFringeMisaligned(t *testing.T) {
	if _, err := DominantFringe(make([]float64, 20), make([]float64, 19)); err == nil {
		t.Error("expected error for misaligned input")
	}
}
