package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkruger/transpec/internal/analysis"
	"github.com/dkruger/transpec/internal/config"
	"github.com/dkruger/transpec/internal/patch"
	"github.com/dkruger/transpec/internal/plot"
	"github.com/dkruger/transpec/internal/sim"
	"github.com/dkruger/transpec/internal/store"
	"github.com/dkruger/transpec/internal/tui"
)

var (
	dataDir string

	molecule   string
	vmr        float64
	pressure   float64
	temp       float64
	length     float64
	isotopes   string
	database   string
	wlStep     float64
	wlMin      float64
	wlMax      float64
	useGPU     bool
	gpuDevice  int
	keepGPU    bool
	configFile string
	preset     string

	yscale  string
	outFile string

	sweepTMin  float64
	sweepTMax  float64
	sweepSteps int

	patchSrc  string
	patchVenv string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transpec",
		Short: "molecular transmission spectrum simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".transpec", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute a transmission spectrum and store the result",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&yscale, "yscale", "linear", "y scale (linear|log)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run spectrum to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run spectrum to an SVG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().StringVar(&yscale, "yscale", "linear", "y scale (linear|log)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "fringe analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "temperature sweep reusing the engine handle",
		RunE:  runSweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepTMin, "t-min", 250, "sweep start temperature [K]")
	sweepCmd.Flags().Float64Var(&sweepTMax, "t-max", 400, "sweep end temperature [K]")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 7, "number of sweep points")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive spectrum explorer",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "name\tmolecule\twindow [nm]\tdatabase")
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%g-%g\t%s\n",
					name, cfg.Molecule, cfg.Window.WlMin, cfg.Window.WlMax, cfg.Database)
			}
			return w.Flush()
		},
	}

	patchCmd := &cobra.Command{
		Use:   "patch",
		Short: "copy patched files into the installed radis/vaex packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			site := patch.SitePackages(patchVenv)
			if err := patch.Apply(patchSrc, site, func(format string, args ...any) {
				fmt.Printf(format, args...)
			}); err != nil {
				return err
			}
			fmt.Println("patch applied successfully")
			return nil
		},
	}
	patchCmd.Flags().StringVar(&patchSrc, "src", "radis-patch", "directory holding the patched files")
	patchCmd.Flags().StringVar(&patchVenv, "venv", ".venv", "virtual environment directory")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd,
		analyzeCmd, sweepCmd, liveCmd, presetsCmd, patchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&molecule, "molecule", "CO2", "molecule name")
	cmd.Flags().Float64Var(&vmr, "vmr", 4.2e-4, "volume mixing ratio")
	cmd.Flags().Float64Var(&pressure, "pressure", config.DefaultPressure, "pressure [Pa]")
	cmd.Flags().Float64Var(&temp, "temperature", config.DefaultTemperature, "temperature [K]")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "path length [m]")
	cmd.Flags().StringVar(&isotopes, "isotopes", "1", "isotope ids, e.g. 1,2")
	cmd.Flags().StringVar(&database, "database", "hitran", "line database (hitran|hitemp)")
	cmd.Flags().Float64Var(&wlStep, "wl-step", config.DefaultWavelengthStep, "wavelength step [nm]")
	cmd.Flags().Float64Var(&wlMin, "wl-min", 4200, "window minimum [nm]")
	cmd.Flags().Float64Var(&wlMax, "wl-max", 4320, "window maximum [nm]")
	cmd.Flags().BoolVar(&useGPU, "gpu", false, "use the GPU backend")
	cmd.Flags().IntVar(&gpuDevice, "gpu-device", 0, "GPU device id")
	cmd.Flags().BoolVar(&keepGPU, "keep-gpu", false, "keep GPU resources resident between computes")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig merges preset, config file and CLI flags. Flags changed on
// the command line win over the file, which wins over the preset.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
	}

	if cmd.Flags().Changed("molecule") || (preset == "" && configFile == "") {
		cfg.Molecule = molecule
	}
	if cmd.Flags().Changed("vmr") || (preset == "" && configFile == "") {
		cfg.VMR = vmr
	}
	if cmd.Flags().Changed("pressure") {
		cfg.Pressure = pressure
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Temperature = temp
	}
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("isotopes") {
		cfg.Isotopes = isotopes
	}
	if cmd.Flags().Changed("database") {
		cfg.Database = database
	}
	if cmd.Flags().Changed("wl-step") {
		cfg.WavelengthStep = wlStep
	}
	if cmd.Flags().Changed("wl-min") || (preset == "" && configFile == "") {
		cfg.Window.WlMin = wlMin
	}
	if cmd.Flags().Changed("wl-max") || (preset == "" && configFile == "") {
		cfg.Window.WlMax = wlMax
	}
	if cmd.Flags().Changed("gpu") {
		cfg.GPU.Enabled = useGPU
	}
	if cmd.Flags().Changed("gpu-device") {
		cfg.GPU.DeviceID = gpuDevice
	}
	if cmd.Flags().Changed("keep-gpu") {
		cfg.GPU.KeepResident = keepGPU
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	simulator, err := sim.New(cfg.Params())
	if err != nil {
		return err
	}

	fmt.Printf("computing %s spectrum over [%g, %g] nm on %s...\n",
		cfg.Molecule, cfg.Window.WlMin, cfg.Window.WlMax, simulator.BackendName())
	start := time.Now()

	if err := simulator.Compute(context.Background(), cfg.Window.WlMin, cfg.Window.WlMax); err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(simulator)
	if err != nil {
		return err
	}

	wavelength, _, _ := simulator.Spectrum()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d\n", len(wavelength))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tmolecule\twindow [nm]\tT [K]\tP [Pa]\tpoints\tengine")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g-%g\t%g\t%g\t%d\t%s\n",
			run.ID, run.Molecule, run.WlMin, run.WlMax, run.Temperature, run.Pressure, run.Points, run.Engine)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	wavelength, transmission, err := st.LoadSpectrum(args[0])
	if err != nil {
		return err
	}

	fmt.Println(plot.Terminal(wavelength, transmission, plot.Options{
		Title:  runTitle(meta),
		YScale: yscale,
	}))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	wavelength, transmission, err := st.LoadSpectrum(args[0])
	if err != nil {
		return err
	}

	fmt.Println("wavelength_nm,transmittance")
	for i := range wavelength {
		fmt.Printf("%.6f,%g\n", wavelength[i], transmission[i])
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	wavelength, transmission, err := st.LoadSpectrum(runID)
	if err != nil {
		return err
	}

	svg := plot.SVG(wavelength, transmission, plot.Options{
		Title:  runTitle(meta),
		YScale: yscale,
	})
	if svg == "" {
		return fmt.Errorf("run %s has too few points to chart", runID)
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	wavelength, transmission, err := st.LoadSpectrum(args[0])
	if err != nil {
		return err
	}

	ps, err := analysis.PowerSpectrum(transmission)
	if err != nil {
		return err
	}

	fmt.Println(plot.Terminal(nil, ps[1:], plot.Options{
		Title:  "power spectrum (transmittance)",
		XLabel: "bin",
		YLabel: "power",
	}))

	fringe, err := analysis.DominantFringe(wavelength, transmission)
	if err != nil {
		return err
	}
	fmt.Printf("\ndominant modulation: period %.3f nm (power %.3g)\n", fringe.PeriodNm, fringe.Power)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if sweepSteps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d", sweepSteps)
	}

	params := cfg.Params()
	// Keep the engine handle alive across the sweep; the window never
	// changes, so every point after the first re-solves in place.
	params.KeepDeviceResident = true

	simulator, err := sim.New(params)
	if err != nil {
		return err
	}
	defer simulator.ReleaseDevice()

	fmt.Printf("sweeping %s from %g K to %g K on %s\n",
		cfg.Molecule, sweepTMin, sweepTMax, simulator.BackendName())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "T [K]\tmean transmittance\tmin\ttime")

	for i := 0; i < sweepSteps; i++ {
		t := sweepTMin + float64(i)*(sweepTMax-sweepTMin)/float64(sweepSteps-1)
		simulator.SetTemperature(t)

		start := time.Now()
		if err := simulator.Compute(context.Background(), cfg.Window.WlMin, cfg.Window.WlMax); err != nil {
			return err
		}
		elapsed := time.Since(start)

		_, transmission, err := simulator.Spectrum()
		if err != nil {
			return err
		}

		mean, min := 0.0, 1.0
		for _, v := range transmission {
			mean += v
			if v < min {
				min = v
			}
		}
		mean /= float64(len(transmission))

		fmt.Fprintf(w, "%.1f\t%.6f\t%.6f\t%v\n", t, mean, min, elapsed.Round(time.Microsecond))
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	params := cfg.Params()
	params.KeepDeviceResident = true

	simulator, err := sim.New(params)
	if err != nil {
		return err
	}

	return tui.Run(simulator, cfg.Window.WlMin, cfg.Window.WlMax)
}

func runTitle(meta *store.RunMetadata) string {
	return fmt.Sprintf("Transmittance spectrum for %s at %g K, %g Pa, %g m and %g VMR",
		meta.Molecule, meta.Temperature, meta.Pressure, meta.Length, meta.VMR)
}
