//go:build cuda

package engine

/*
#cgo CFLAGS: -I/opt/cuda/include
#cgo LDFLAGS: -L/opt/cuda/lib64 -L${SRCDIR} -lcudart -lkernels -lstdc++
#include <stdlib.h>

extern int lbl_device_count();
extern const char* lbl_device_name_get(int device_id);
extern void* lbl_gpu_init(int device_id, double wn_min, double wn_step, int n,
                          double* centers, double* intensities, double* widths,
                          double* temp_exps, double* lower_energies, int n_lines);
extern void lbl_gpu_solve(void* plan, double pressure_bar, double temperature_k,
                          double mole_fraction, double path_length_cm, double* transmittance);
extern void lbl_gpu_free(void* plan);
*/
import "C"

import (
	"context"
	"math"
	"unsafe"

	"github.com/dkruger/transpec/internal/lines"
)

// GPUBackend dispatches the line-by-line solve to a CUDA kernel. The
// device id is fixed at construction.
type GPUBackend struct {
	deviceID   int
	available  bool
	deviceName string
}

func NewGPUBackend(deviceID int) *GPUBackend {
	count := int(C.lbl_device_count())
	available := deviceID >= 0 && deviceID < count
	name := ""
	if available {
		name = C.GoString(C.lbl_device_name_get(C.int(deviceID)))
	}
	return &GPUBackend{
		deviceID:   deviceID,
		available:  available,
		deviceName: name,
	}
}

func (g *GPUBackend) Name() string {
	if g.available {
		return "cuda (" + g.deviceName + ")"
	}
	return "cuda (not available)"
}

func (g *GPUBackend) Available() bool { return g.available }

func (g *GPUBackend) Solve(ctx context.Context, req Request) (Handle, error) {
	if !g.available {
		return NewCPUBackend().Solve(ctx, req)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selected, err := lines.Select(req.Molecule, req.Database, req.Isotopes)
	if err != nil {
		return nil, err
	}

	n := int(math.Floor((req.WavenumberMax-req.WavenumberMin)/req.WavenumberStep)) + 1
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = req.WavenumberMin + float64(i)*req.WavenumberStep
	}

	nl := len(selected)
	centers := make([]float64, nl)
	intensities := make([]float64, nl)
	widths := make([]float64, nl)
	tempExps := make([]float64, nl)
	lowerEnergies := make([]float64, nl)
	for i, ln := range selected {
		centers[i] = ln.Center
		intensities[i] = ln.Intensity
		widths[i] = ln.AirWidth
		tempExps[i] = ln.TempExp
		lowerEnergies[i] = ln.LowerEnergy
	}

	plan := C.lbl_gpu_init(
		C.int(g.deviceID),
		C.double(req.WavenumberMin), C.double(req.WavenumberStep), C.int(n),
		(*C.double)(unsafe.Pointer(&centers[0])),
		(*C.double)(unsafe.Pointer(&intensities[0])),
		(*C.double)(unsafe.Pointer(&widths[0])),
		(*C.double)(unsafe.Pointer(&tempExps[0])),
		(*C.double)(unsafe.Pointer(&lowerEnergies[0])),
		C.int(nl),
	)

	h := &gpuHandle{plan: plan, grid: grid}
	if err := h.Resolve(ctx, req.Conditions); err != nil {
		h.Release()
		return nil, err
	}
	return h, nil
}

// gpuHandle keeps the device-resident plan (grid and line buffers) between
// solves. Release frees device memory; skipping it leaks the device.
type gpuHandle struct {
	plan          unsafe.Pointer
	grid          []float64 // ascending
	transmittance []float64
	released      bool
}

func (h *gpuHandle) Transmittance() ([]float64, []float64) {
	return h.grid, h.transmittance
}

func (h *gpuHandle) Resolve(ctx context.Context, c Conditions) error {
	if h.released {
		return ErrReleased
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out := make([]float64, len(h.grid))
	C.lbl_gpu_solve(
		h.plan,
		C.double(c.PressureBar), C.double(c.TemperatureK),
		C.double(c.MoleFraction), C.double(c.PathLengthCm),
		(*C.double)(unsafe.Pointer(&out[0])),
	)
	h.transmittance = out
	return nil
}

func (h *gpuHandle) Release() error {
	if h.released {
		return nil
	}
	C.lbl_gpu_free(h.plan)
	h.plan = nil
	h.released = true
	h.transmittance = nil
	return nil
}
