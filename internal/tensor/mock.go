package tensor

import (
	"errors"
	"sync/atomic"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// ErrMockPlacement is returned by MockBackend when FailAt triggers.
var ErrMockPlacement = errors.New("mock: placement failed")

// MockBackend is an in-process backend for testing.
// It shares the source buffer like the CPU backend and can inject failures.
type MockBackend struct {
	// DeviceKind is reported by Device and by placed tensors.
	DeviceKind Device

	// FailAt makes the n-th Place call (1-based) return ErrMockPlacement.
	// Zero disables failure injection.
	FailAt int64

	// Corrupt makes placed tensors read back a non-zero first byte.
	Corrupt bool

	calls    atomic.Int64
	released atomic.Int64
}

// NewMockBackend creates a new MockBackend on the CPU device.
func NewMockBackend() *MockBackend {
	return &MockBackend{DeviceKind: CPU}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return m.DeviceKind
}

// Place shares src and records the call.
func (m *MockBackend) Place(src *RawTensor) (Resident, error) {
	n := m.calls.Add(1)
	if m.FailAt > 0 && n == m.FailAt {
		return nil, ErrMockPlacement
	}
	return &mockResident{RawTensor: src.Clone(), owner: m}, nil
}

// Calls returns the number of Place calls so far.
func (m *MockBackend) Calls() int64 {
	return m.calls.Load()
}

// Released returns how many placed tensors have been released.
func (m *MockBackend) Released() int64 {
	return m.released.Load()
}

type mockResident struct {
	*RawTensor
	owner *MockBackend
	done  atomic.Bool
}

func (r *mockResident) Device() Device {
	return r.owner.DeviceKind
}

func (r *mockResident) Bytes() ([]byte, error) {
	data, err := r.RawTensor.Bytes()
	if err != nil {
		return nil, err
	}
	if r.owner.Corrupt && len(data) > 0 {
		data[0] = 0xFF
	}
	return data, nil
}

func (r *mockResident) Release() {
	if r.done.CompareAndSwap(false, true) {
		r.RawTensor.Release()
		r.owner.released.Add(1)
	}
}
