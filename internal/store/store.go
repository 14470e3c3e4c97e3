// Package store persists computed runs: one directory per run holding
// metadata.json and spectrum.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dkruger/transpec/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string    `json:"id"`
	Molecule       string    `json:"molecule"`
	Timestamp      time.Time `json:"timestamp"`
	VMR            float64   `json:"vmr"`
	Pressure       float64   `json:"pressure"`
	Temperature    float64   `json:"temperature"`
	Length         float64   `json:"length"`
	Isotopes       string    `json:"isotopes"`
	Database       string    `json:"database"`
	WavelengthStep float64   `json:"wavelength_step"`
	WlMin          float64   `json:"wl_min"`
	WlMax          float64   `json:"wl_max"`
	Engine         string    `json:"engine"`
	Points         int       `json:"points"`
}

// Save writes the simulator's current result as a new run and returns its
// id. It fails if the simulator has not computed yet.
func (s *Store) Save(simulator *sim.Simulator) (string, error) {
	wavelength, transmission, err := simulator.Spectrum()
	if err != nil {
		return "", err
	}
	wlMin, wlMax, _ := simulator.Window()

	runID := fmt.Sprintf("%s_%d", simulator.Molecule(), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Molecule:       simulator.Molecule(),
		Timestamp:      time.Now(),
		VMR:            simulator.VMR(),
		Pressure:       simulator.Pressure(),
		Temperature:    simulator.Temperature(),
		Length:         simulator.Length(),
		Isotopes:       simulator.Isotopes(),
		Database:       simulator.Database(),
		WavelengthStep: simulator.WavelengthStep(),
		WlMin:          wlMin,
		WlMax:          wlMax,
		Engine:         simulator.BackendName(),
		Points:         len(wavelength),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeSpectrumCSV(filepath.Join(runDir, "spectrum.csv"), wavelength, transmission); err != nil {
		return "", err
	}

	return runID, nil
}

func writeSpectrumCSV(path string, wavelength, transmission []float64) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"wavelength_nm", "transmittance"}); err != nil {
		return err
	}
	for i := range wavelength {
		row := []string{
			strconv.FormatFloat(wavelength[i], 'f', 6, 64),
			strconv.FormatFloat(transmission[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSpectrum reads a run's spectrum back as aligned wavelength and
// transmittance slices.
func (s *Store) LoadSpectrum(runID string) ([]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "spectrum.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}

	wavelength := make([]float64, 0, len(records))
	transmission := make([]float64, 0, len(records))

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		wl, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		tr, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		wavelength = append(wavelength, wl)
		transmission = append(transmission, tr)
	}

	return wavelength, transmission, nil
}
