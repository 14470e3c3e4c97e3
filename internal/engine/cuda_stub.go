//go:build !cuda

package engine

import "context"

// GPUBackend without CUDA support. Never available; Solve falls back to
// the CPU backend.
type GPUBackend struct {
	deviceID int
}

func NewGPUBackend(deviceID int) *GPUBackend {
	return &GPUBackend{deviceID: deviceID}
}

func (g *GPUBackend) Name() string    { return "cuda (not available)" }
func (g *GPUBackend) Available() bool { return false }

func (g *GPUBackend) Solve(ctx context.Context, req Request) (Handle, error) {
	return NewCPUBackend().Solve(ctx, req)
}
