package units

import (
	"errors"
	"math"
	"testing"
)

func TestWavelengthWavenumberRoundTrip(t *testing.T) {
	wavelengths := []float64{1.0, 193.4, 400.0, 632.8, 1550.0, 4257.3, 1e6}

	for _, wl := range wavelengths {
		wn, err := WavelengthToWavenumber(wl)
		if err != nil {
			t.Fatalf("WavelengthToWavenumber(%g): %v", wl, err)
		}
		back, err := WavenumberToWavelength(wn)
		if err != nil {
			t.Fatalf("WavenumberToWavelength(%g): %v", wn, err)
		}
		if math.Abs(back-wl)/wl > 1e-9 {
			t.Errorf("round trip %g nm -> %g cm⁻¹ -> %g nm", wl, wn, back)
		}
	}
}

func TestWavelengthToWavenumberKnownValue(t *testing.T) {
	// 1000 nm = 1 µm = 10000 cm⁻¹.
	wn, err := WavelengthToWavenumber(1000.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(wn-10000.0) > 1e-9 {
		t.Errorf("expected 10000 cm⁻¹, got %g", wn)
	}
}

func TestOrderingInversion(t *testing.T) {
	pairs := [][2]float64{
		{400, 700},
		{1549.9, 1550.1},
		{1, 2},
	}

	for _, p := range pairs {
		a, err := WavelengthToWavenumber(p[0])
		if err != nil {
			t.Fatal(err)
		}
		b, err := WavelengthToWavenumber(p[1])
		if err != nil {
			t.Fatal(err)
		}
		if a <= b {
			t.Errorf("expected wn(%g) > wn(%g), got %g <= %g", p[0], p[1], a, b)
		}
	}
}

func TestDeltaWavelengthToDeltaWavenumber(t *testing.T) {
	// At 1000 nm, |dν/dλ| = 1e7/1e6 = 10 cm⁻¹ per nm.
	dwn, err := DeltaWavelengthToDeltaWavenumber(0.01, 1000.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(dwn-0.1) > 1e-12 {
		t.Errorf("expected 0.1 cm⁻¹, got %g", dwn)
	}
}

func TestInvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		call func() (float64, error)
	}{
		{"zero wavelength", func() (float64, error) { return WavelengthToWavenumber(0) }},
		{"negative wavelength", func() (float64, error) { return WavelengthToWavenumber(-500) }},
		{"zero wavenumber", func() (float64, error) { return WavenumberToWavelength(0) }},
		{"zero central wavelength", func() (float64, error) { return DeltaWavelengthToDeltaWavenumber(0.01, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestPaToBar(t *testing.T) {
	if got := PaToBar(101325); math.Abs(got-1.01325) > 1e-12 {
		t.Errorf("expected 1.01325 bar, got %g", got)
	}
}

func TestWavelengthsFromWavenumbers(t *testing.T) {
	wls, err := WavelengthsFromWavenumbers([]float64{10000, 5000, 2500})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1000, 2000, 4000}
	for i := range want {
		if math.Abs(wls[i]-want[i]) > 1e-9 {
			t.Errorf("index %d: expected %g, got %g", i, want[i], wls[i])
		}
	}

	if _, err := WavelengthsFromWavenumbers([]float64{10000, 0}); err == nil {
		t.Error("expected error for zero wavenumber")
	}
}
