// Package cpu implements the CPU backend: placement into host memory.
package cpu

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/born-ml/stress/internal/tensor"
)

// CPUBackend places tensors in host memory.
// A placed tensor shares the source buffer, the way a same-device move does
// in most tensor libraries; the allocation happens when the source is built.
type CPUBackend struct {
	device tensor.Device

	placements atomic.Int64
	bytes      atomic.Int64
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Place returns a host-resident clone of src.
func (cpu *CPUBackend) Place(src *tensor.RawTensor) (tensor.Resident, error) {
	if src == nil {
		return nil, errors.New("cpu: place: source tensor is nil")
	}
	if src.Device() != tensor.CPU {
		return nil, fmt.Errorf("cpu: place: source tensor is on %s, want CPU", src.Device())
	}

	cpu.placements.Add(1)
	cpu.bytes.Add(int64(src.ByteSize()))
	return src.Clone(), nil
}

// Stats reports the number of placements and bytes placed since creation.
func (cpu *CPUBackend) Stats() (placements, bytes int64) {
	return cpu.placements.Load(), cpu.bytes.Load()
}
