package tensor

// Backend places host tensors onto a device.
//
// Implementations:
//   - CPU: host memory, shares the source buffer
//   - WebGPU: default GPU adapter via go-webgpu
//   - Mock: in-process backend with failure injection for tests
//
// Place must be safe for concurrent use.
type Backend interface {
	// Place copies or shares src onto the backend's device.
	// The caller owns the returned Resident and must Release it.
	Place(src *RawTensor) (Resident, error)

	// Metadata
	Name() string
	Device() Device
}

// Resident is a tensor that has been placed on a device.
type Resident interface {
	Shape() Shape
	DType() DataType
	Device() Device

	// Bytes reads the tensor contents back to host memory.
	Bytes() ([]byte, error)

	// Release frees device memory held by the tensor.
	Release()
}

// Verify that RawTensor can act as a host-resident tensor.
var _ Resident = (*RawTensor)(nil)
