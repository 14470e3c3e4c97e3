package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestRange(t *testing.T) {
	wavelength := []float64{390, 450, 500, 510}
	transmission := []float64{1, 2, 3, 4}

	wl, tr, err := Range(400, 500, wavelength, transmission)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantWl := []float64{450, 500}
	wantTr := []float64{2, 3}
	if len(wl) != len(wantWl) || len(tr) != len(wantTr) {
		t.Fatalf("expected 2 samples, got %d/%d", len(wl), len(tr))
	}
	for i := range wantWl {
		if wl[i] != wantWl[i] || tr[i] != wantTr[i] {
			t.Errorf("sample %d: got (%g, %g), want (%g, %g)", i, wl[i], tr[i], wantWl[i], wantTr[i])
		}
	}
}

func TestRangeInclusiveEndpoints(t *testing.T) {
	wl, tr, err := Range(450, 510, []float64{390, 450, 500, 510}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(wl) != 3 || wl[0] != 450 || wl[2] != 510 || tr[2] != 4 {
		t.Errorf("endpoints should be inclusive, got %v %v", wl, tr)
	}
}

func TestRangeInvalid(t *testing.T) {
	_, _, err := Range(500, 400, []float64{390, 450}, []float64{1, 2})
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRangeEmptyResult(t *testing.T) {
	wl, tr, err := Range(600, 700, []float64{390, 450, 500}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("empty window should not error: %v", err)
	}
	if wl == nil || tr == nil {
		t.Fatal("expected empty slices, got nil")
	}
	if len(wl) != 0 || len(tr) != 0 {
		t.Errorf("expected empty result, got %v %v", wl, tr)
	}
}

func TestFromEngineResult(t *testing.T) {
	// Ascending wavenumbers 2500, 5000, 10000 cm⁻¹ are descending
	// wavelengths 4000, 2000, 1000 nm; the reversal yields the ascending
	// wavelength grid with transmittance still aligned.
	s, err := FromEngineResult([]float64{2500, 5000, 10000}, []float64{0.9, 0.5, 0.1})
	if err != nil {
		t.Fatal(err)
	}

	wantWl := []float64{1000, 2000, 4000}
	wantTr := []float64{0.1, 0.5, 0.9}
	for i := range wantWl {
		if math.Abs(s.Wavelength[i]-wantWl[i]) > 1e-9 {
			t.Errorf("wavelength %d: got %g, want %g", i, s.Wavelength[i], wantWl[i])
		}
		if s.Transmission[i] != wantTr[i] {
			t.Errorf("transmission %d: got %g, want %g", i, s.Transmission[i], wantTr[i])
		}
	}

	for i := 1; i < s.Len(); i++ {
		if s.Wavelength[i] <= s.Wavelength[i-1] {
			t.Fatal("wavelengths not strictly ascending")
		}
	}
}

func TestFromEngineResultMismatch(t *testing.T) {
	if _, err := FromEngineResult([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected length mismatch error")
	}
}
