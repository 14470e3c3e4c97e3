package lines

import (
	"errors"
	"testing"
)

func TestSelect(t *testing.T) {
	selected, err := Select("CO2", Hitran, "1")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(selected) == 0 {
		t.Fatal("expected lines for CO2")
	}
	for _, ln := range selected {
		if ln.Isotope != 1 {
			t.Errorf("expected only isotope 1, got %d", ln.Isotope)
		}
		if ln.Center <= 0 || ln.Intensity <= 0 || ln.AirWidth <= 0 {
			t.Errorf("non-physical line parameters: %+v", ln)
		}
	}
}

func TestSelectMultipleIsotopes(t *testing.T) {
	one, err := Select("CO2", Hitran, "1")
	if err != nil {
		t.Fatal(err)
	}
	both, err := Select("CO2", Hitran, "1,2")
	if err != nil {
		t.Fatal(err)
	}
	if len(both) <= len(one) {
		t.Errorf("expected isotope 2 to add lines: %d vs %d", len(both), len(one))
	}
}

func TestSelectHitempAddsHotLines(t *testing.T) {
	hitran, err := Select("CO", Hitran, "1")
	if err != nil {
		t.Fatal(err)
	}
	hitemp, err := Select("CO", Hitemp, "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(hitemp) <= len(hitran) {
		t.Errorf("hitemp should carry extra hot-band lines: %d vs %d", len(hitemp), len(hitran))
	}
}

func TestSelectErrors(t *testing.T) {
	tests := []struct {
		name     string
		molecule string
		database string
		isotopes string
		want     error
	}{
		{"unknown molecule", "XYZ", Hitran, "1", ErrUnknownMolecule},
		{"unknown database", "CO2", "geisa", "1", ErrUnknownDatabase},
		{"bad isotopes", "CO2", Hitran, "a,b", ErrBadIsotopes},
		{"empty isotopes", "CO2", Hitran, "", ErrBadIsotopes},
		{"hitemp missing molecule", "O3", Hitemp, "1", ErrUnknownMolecule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(tt.molecule, tt.database, tt.isotopes)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMolecules(t *testing.T) {
	if names := Molecules(Hitran); len(names) == 0 {
		t.Error("expected molecules for hitran")
	}
	if names := Molecules("geisa"); names != nil {
		t.Error("expected nil for unknown database")
	}
}
