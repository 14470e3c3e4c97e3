// Package lines is the built-in molecular line database. Each entry carries
// the line parameters needed for an equilibrium Lorentzian solve: center
// wavenumber, 296 K intensity, air-broadening half width, its temperature
// exponent, and the lower-state energy.
package lines

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownMolecule indicates a molecule absent from the catalog.
	ErrUnknownMolecule = errors.New("lines: unknown molecule")

	// ErrUnknownDatabase indicates a database name other than hitran/hitemp.
	ErrUnknownDatabase = errors.New("lines: unknown database")

	// ErrBadIsotopes indicates an unparseable isotope list.
	ErrBadIsotopes = errors.New("lines: bad isotope list")
)

// Line is a single absorption line.
type Line struct {
	Center      float64 // cm⁻¹
	Intensity   float64 // cm⁻¹/(molecule·cm⁻²) at 296 K
	AirWidth    float64 // HWHM, cm⁻¹/atm at 296 K
	TempExp     float64 // temperature exponent of the air width
	LowerEnergy float64 // cm⁻¹
	Isotope     int
}

// Databases supported by the catalog.
const (
	Hitran = "hitran"
	Hitemp = "hitemp"
)

// Select returns the lines for a molecule from the named database, filtered
// to the comma-separated isotope ids (e.g. "1,2").
func Select(molecule, database, isotopes string) ([]Line, error) {
	byMolecule, ok := catalog[database]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabase, database)
	}

	all, ok := byMolecule[molecule]
	if !ok {
		return nil, fmt.Errorf("%w: %q in database %q", ErrUnknownMolecule, molecule, database)
	}

	wanted, err := parseIsotopes(isotopes)
	if err != nil {
		return nil, err
	}

	selected := make([]Line, 0, len(all))
	for _, ln := range all {
		if wanted[ln.Isotope] {
			selected = append(selected, ln)
		}
	}
	return selected, nil
}

// Molecules lists the molecules available in a database, or nil for an
// unknown database.
func Molecules(database string) []string {
	byMolecule, ok := catalog[database]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byMolecule))
	for name := range byMolecule {
		names = append(names, name)
	}
	return names
}

func parseIsotopes(isotopes string) (map[int]bool, error) {
	wanted := make(map[int]bool)
	for _, field := range strings.Split(isotopes, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil || id < 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadIsotopes, isotopes)
		}
		wanted[id] = true
	}
	if len(wanted) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadIsotopes, isotopes)
	}
	return wanted, nil
}
