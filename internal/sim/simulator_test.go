package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/dkruger/transpec/internal/engine"
	"github.com/dkruger/transpec/internal/spectrum"
)

// fakeBackend counts engine calls and returns a fixed three-point spectrum.
type fakeBackend struct {
	solves   int
	solveErr error
}

type fakeHandle struct {
	backend  *fakeBackend
	resolves int
	released bool
	err      error
}

func (f *fakeBackend) Name() string    { return "fake" }
func (f *fakeBackend) Available() bool { return true }

func (f *fakeBackend) Solve(ctx context.Context, req engine.Request) (engine.Handle, error) {
	f.solves++
	if f.solveErr != nil {
		return nil, f.solveErr
	}
	return &fakeHandle{backend: f}, nil
}

func (h *fakeHandle) Transmittance() ([]float64, []float64) {
	// Ascending wavenumbers covering roughly 400-700 nm.
	return []float64{15000, 20000, 25000}, []float64{0.8, 0.5, 0.2}
}

func (h *fakeHandle) Resolve(ctx context.Context, c engine.Conditions) error {
	h.resolves++
	return h.err
}

func (h *fakeHandle) Release() error {
	h.released = true
	return nil
}

func testParams() Params {
	return Params{
		Molecule:    "CO2",
		VMR:         4.2e-4,
		Pressure:    101325,
		Temperature: 296,
		Length:      10,
	}
}

func newTestSimulator(t *testing.T, backend engine.Backend) *Simulator {
	t.Helper()
	s, err := NewWithBackend(testParams(), backend)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"missing molecule", func(p *Params) { p.Molecule = "" }},
		{"missing vmr", func(p *Params) { p.VMR = 0 }},
		{"missing pressure", func(p *Params) { p.Pressure = 0 }},
		{"missing temperature", func(p *Params) { p.Temperature = 0 }},
		{"missing length", func(p *Params) { p.Length = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			if _, err := New(p); !errors.Is(err, ErrMissingParameter) {
				t.Errorf("expected ErrMissingParameter, got %v", err)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	s := newTestSimulator(t, &fakeBackend{})
	if s.params.Isotopes != "1" || s.params.Database != "hitran" || s.params.WavelengthStep != 0.01 {
		t.Errorf("defaults not applied: %+v", s.params)
	}
}

func TestMemoization(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSimulator(t, backend)
	ctx := context.Background()

	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatalf("second compute failed: %v", err)
	}

	if backend.solves != 1 {
		t.Errorf("identical parameter set must hit the engine at most once, got %d solves", backend.solves)
	}
}

func TestParameterChangeReusesHandle(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSimulator(t, backend)
	ctx := context.Background()

	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatal(err)
	}
	handle := s.handle.(*fakeHandle)

	s.SetTemperature(320)
	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatal(err)
	}

	if backend.solves != 1 {
		t.Errorf("parameter-only change must not rebuild the handle, got %d solves", backend.solves)
	}
	if handle.resolves != 1 {
		t.Errorf("expected one re-solve on the existing handle, got %d", handle.resolves)
	}
}

func TestWindowChangeForcesFreshHandle(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSimulator(t, backend)
	ctx := context.Background()

	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatal(err)
	}
	old := s.handle.(*fakeHandle)

	if err := s.Compute(ctx, 410, 700); err != nil {
		t.Fatal(err)
	}

	if backend.solves != 2 {
		t.Errorf("window change must rebuild the handle, got %d solves", backend.solves)
	}
	if old.resolves != 0 {
		t.Error("stale handle must not be re-solved")
	}
	if !old.released {
		t.Error("stale handle must be released")
	}
}

func TestChooseStrategy(t *testing.T) {
	a := window{400, 700}
	b := window{410, 700}

	tests := []struct {
		name      string
		prev, nxt window
		hasHandle bool
		want      Strategy
	}{
		{"same window with handle", a, a, true, ReuseHandle},
		{"same window without handle", a, a, false, FreshHandle},
		{"changed window", a, b, true, FreshHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseStrategy(tt.prev, tt.nxt, tt.hasHandle); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotComputed(t *testing.T) {
	s := newTestSimulator(t, &fakeBackend{})

	if _, _, err := s.Spectrum(); !errors.Is(err, ErrNotComputed) {
		t.Errorf("expected ErrNotComputed, got %v", err)
	}
	if _, _, err := s.SpectrumRange(400, 500); !errors.Is(err, ErrNotComputed) {
		t.Errorf("expected ErrNotComputed, got %v", err)
	}
}

func TestRangeCoverage(t *testing.T) {
	s := newTestSimulator(t, &fakeBackend{})
	if err := s.Compute(context.Background(), 400, 700); err != nil {
		t.Fatal(err)
	}

	if _, _, err := s.SpectrumRange(300, 500); !errors.Is(err, ErrRangeNotCovered) {
		t.Errorf("expected ErrRangeNotCovered, got %v", err)
	}
	if _, _, err := s.SpectrumRange(400, 800); !errors.Is(err, ErrRangeNotCovered) {
		t.Errorf("expected ErrRangeNotCovered, got %v", err)
	}
	if _, _, err := s.SpectrumRange(450, 500); err != nil {
		t.Errorf("contained window must succeed: %v", err)
	}
}

func TestSpectrumAscending(t *testing.T) {
	s := newTestSimulator(t, &fakeBackend{})
	if err := s.Compute(context.Background(), 400, 700); err != nil {
		t.Fatal(err)
	}

	wl, tr, err := s.Spectrum()
	if err != nil {
		t.Fatal(err)
	}
	if len(wl) != len(tr) {
		t.Fatalf("misaligned result: %d vs %d", len(wl), len(tr))
	}
	for i := 1; i < len(wl); i++ {
		if wl[i] <= wl[i-1] {
			t.Fatal("wavelengths not ascending")
		}
	}
	// 25000 cm⁻¹ (400 nm, transmittance 0.2) must land first after the
	// lockstep reversal.
	if tr[0] != 0.2 || tr[len(tr)-1] != 0.8 {
		t.Errorf("reversal broke element alignment: %v", tr)
	}
}

func TestInvertedComputeWindow(t *testing.T) {
	s := newTestSimulator(t, &fakeBackend{})
	err := s.Compute(context.Background(), 700, 400)
	if !errors.Is(err, spectrum.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSolveFailureLeavesStateConsistent(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSimulator(t, backend)
	ctx := context.Background()

	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatal(err)
	}

	backend.solveErr = errors.New("database fetch failed")
	if err := s.Compute(ctx, 500, 800); err == nil {
		t.Fatal("expected solve error")
	}

	// The old result and window must still be readable together.
	wlMin, wlMax, ok := s.Window()
	if !ok || wlMin != 400 || wlMax != 700 {
		t.Errorf("window should still be [400, 700], got [%g, %g] ok=%v", wlMin, wlMax, ok)
	}
	if _, _, err := s.SpectrumRange(450, 500); err != nil {
		t.Errorf("stored result should survive a failed compute: %v", err)
	}
}

func TestResolveFailureReleasesHandle(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSimulator(t, backend)
	ctx := context.Background()

	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatal(err)
	}
	handle := s.handle.(*fakeHandle)
	handle.err = errors.New("device lost")

	s.SetPressure(90000)
	if err := s.Compute(ctx, 400, 700); err == nil {
		t.Fatal("expected resolve error")
	}
	if !handle.released {
		t.Error("failed handle must be released")
	}
	if s.handle != nil {
		t.Error("simulator must drop the failed handle")
	}
}

func TestGPUReleaseAfterCompute(t *testing.T) {
	p := testParams()
	p.UseGPU = true
	backend := &fakeBackend{}
	s, err := NewWithBackend(p, backend)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Compute(context.Background(), 400, 700); err != nil {
		t.Fatal(err)
	}
	if s.handle != nil {
		t.Error("device resources must be released after compute by default")
	}

	// Result survives the release.
	if _, _, err := s.Spectrum(); err != nil {
		t.Errorf("result should survive device release: %v", err)
	}
}

func TestGPUKeepDeviceResident(t *testing.T) {
	p := testParams()
	p.UseGPU = true
	p.KeepDeviceResident = true
	backend := &fakeBackend{}
	s, err := NewWithBackend(p, backend)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatal(err)
	}
	handle := s.handle.(*fakeHandle)

	s.SetTemperature(350)
	if err := s.Compute(ctx, 400, 700); err != nil {
		t.Fatal(err)
	}
	if backend.solves != 1 || handle.resolves != 1 {
		t.Errorf("resident handle should be reused: %d solves, %d resolves", backend.solves, handle.resolves)
	}

	if err := s.ReleaseDevice(); err != nil {
		t.Fatal(err)
	}
	if !handle.released {
		t.Error("explicit release must free the handle")
	}
}
