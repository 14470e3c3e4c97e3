package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkruger/transpec/internal/sim"
)

const (
	DefaultPressure       = 101325.0 // Pa
	DefaultTemperature    = 296.0    // K
	DefaultLength         = 10.0     // m
	DefaultWavelengthStep = 0.01     // nm
)

type Config struct {
	Molecule       string  `yaml:"molecule"`
	VMR            float64 `yaml:"vmr"`
	Pressure       float64 `yaml:"pressure"`
	Temperature    float64 `yaml:"temperature"`
	Length         float64 `yaml:"length"`
	Isotopes       string  `yaml:"isotopes"`
	Database       string  `yaml:"database"`
	WavelengthStep float64 `yaml:"wavelength_step"`

	Window WindowConfig `yaml:"window"`
	GPU    GPUConfig    `yaml:"gpu"`
}

type WindowConfig struct {
	WlMin float64 `yaml:"wl_min"`
	WlMax float64 `yaml:"wl_max"`
}

type GPUConfig struct {
	Enabled      bool `yaml:"enabled"`
	DeviceID     int  `yaml:"device_id"`
	KeepResident bool `yaml:"keep_resident"`
}

func DefaultConfig() *Config {
	return &Config{
		Molecule:       "CO2",
		VMR:            4.2e-4,
		Pressure:       DefaultPressure,
		Temperature:    DefaultTemperature,
		Length:         DefaultLength,
		Isotopes:       "1",
		Database:       "hitran",
		WavelengthStep: DefaultWavelengthStep,
		Window:         WindowConfig{WlMin: 4200, WlMax: 4320},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params maps the config onto simulator parameters.
func (c *Config) Params() sim.Params {
	return sim.Params{
		Molecule:           c.Molecule,
		VMR:                c.VMR,
		Pressure:           c.Pressure,
		Temperature:        c.Temperature,
		Length:             c.Length,
		Isotopes:           c.Isotopes,
		Database:           c.Database,
		WavelengthStep:     c.WavelengthStep,
		UseGPU:             c.GPU.Enabled,
		GPUDeviceID:        c.GPU.DeviceID,
		KeepDeviceResident: c.GPU.KeepResident,
	}
}
