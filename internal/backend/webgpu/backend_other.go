//go:build !windows

package webgpu

import "github.com/born-ml/stress/internal/tensor"

// Verify that the stub still satisfies tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// Backend is unavailable on this platform; New always fails.
type Backend struct{}

// New reports ErrUnavailable: the go-webgpu binding is only wired on Windows.
func New() (*Backend, error) {
	return nil, ErrUnavailable
}

// IsAvailable always returns false on this platform.
func IsAvailable() bool {
	return false
}

// Release is a no-op.
func (b *Backend) Release() {}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// Place always fails with ErrUnavailable.
func (b *Backend) Place(*tensor.RawTensor) (tensor.Resident, error) {
	return nil, ErrUnavailable
}

// MemoryStats returns zero statistics.
func (b *Backend) MemoryStats() MemoryStats {
	return MemoryStats{}
}
