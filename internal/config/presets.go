package config

// Presets are ready-made scenarios over the strong bands of the bundled
// catalog: ambient-air columns at typical mixing ratios.
var Presets = map[string]*Config{
	"co2-ir": {
		Molecule: "CO2", VMR: 4.2e-4, Pressure: 101325, Temperature: 296, Length: 10,
		Isotopes: "1", Database: "hitran", WavelengthStep: 0.01,
		Window: WindowConfig{WlMin: 4200, WlMax: 4320},
	},
	"co2-hot": {
		Molecule: "CO2", VMR: 0.1, Pressure: 101325, Temperature: 1200, Length: 0.5,
		Isotopes: "1", Database: "hitemp", WavelengthStep: 0.01,
		Window: WindowConfig{WlMin: 4200, WlMax: 4320},
	},
	"h2o-nir": {
		Molecule: "H2O", VMR: 0.01, Pressure: 101325, Temperature: 296, Length: 10,
		Isotopes: "1", Database: "hitran", WavelengthStep: 0.01,
		Window: WindowConfig{WlMin: 2620, WlMax: 2730},
	},
	"ch4-swir": {
		Molecule: "CH4", VMR: 1.9e-6, Pressure: 101325, Temperature: 296, Length: 100,
		Isotopes: "1", Database: "hitran", WavelengthStep: 0.01,
		Window: WindowConfig{WlMin: 3240, WlMax: 3390},
	},
	"co-mir": {
		Molecule: "CO", VMR: 1e-4, Pressure: 101325, Temperature: 296, Length: 1,
		Isotopes: "1", Database: "hitran", WavelengthStep: 0.01,
		Window: WindowConfig{WlMin: 4600, WlMax: 4740},
	},
	"n2o-mir": {
		Molecule: "N2O", VMR: 3.3e-7, Pressure: 101325, Temperature: 296, Length: 1000,
		Isotopes: "1", Database: "hitran", WavelengthStep: 0.01,
		Window: WindowConfig{WlMin: 4440, WlMax: 4560},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
