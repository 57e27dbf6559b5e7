//go:build windows

package webgpu

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/born-ml/stress/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
)

// Verify that the placement types satisfy the tensor interfaces.
var (
	_ tensor.Backend  = (*Backend)(nil)
	_ tensor.Resident = (*GPUTensor)(nil)
)

const stagingUsage = wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst

// GPUTensor is a tensor resident in GPU memory.
type GPUTensor struct {
	buffer     *wgpu.Buffer
	shape      tensor.Shape
	dtype      tensor.DataType
	byteSize   int    // Logical data size
	bufferSize uint64 // Allocated size (aligned to 4 bytes for WebGPU)
	backend    *Backend
	released   atomic.Bool
}

// Shape returns the tensor's shape.
func (t *GPUTensor) Shape() tensor.Shape {
	return t.shape
}

// DType returns the tensor's data type.
func (t *GPUTensor) DType() tensor.DataType {
	return t.dtype
}

// Device returns tensor.WebGPU.
func (t *GPUTensor) Device() tensor.Device {
	return tensor.WebGPU
}

// Bytes copies the tensor contents from GPU to host memory.
// This is an expensive operation: it goes through a staging buffer.
func (t *GPUTensor) Bytes() ([]byte, error) {
	if t.released.Load() {
		return nil, errors.New("webgpu: read of released tensor")
	}
	data, err := t.backend.readBuffer(t.buffer, t.bufferSize)
	if err != nil {
		return nil, err
	}
	return data[:t.byteSize], nil
}

// Release frees the GPU buffer. Safe to call more than once.
func (t *GPUTensor) Release() {
	if !t.released.CompareAndSwap(false, true) {
		return
	}
	t.buffer.Release()
	t.backend.trackBufferRelease(t.bufferSize)
}

// Place uploads a host tensor into a new GPU storage buffer.
func (b *Backend) Place(src *tensor.RawTensor) (placed tensor.Resident, err error) {
	if src == nil {
		return nil, errors.New("webgpu: place: source tensor is nil")
	}

	defer func() {
		if r := recover(); r != nil {
			placed = nil
			err = fmt.Errorf("webgpu: place %v: %v", src.Shape(), r)
		}
	}()

	size := alignSize(src.ByteSize())
	data := make([]byte, size)
	copy(data, src.Data())

	buffer, err := b.createBuffer(data, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	b.trackBufferAllocation(size)

	return &GPUTensor{
		buffer:     buffer,
		shape:      src.Shape().Clone(),
		dtype:      src.DType(),
		byteSize:   src.ByteSize(),
		bufferSize: size,
		backend:    b,
	}, nil
}

// createBuffer creates a GPU buffer initialized with data via MappedAtCreation.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.device == nil {
		return nil, fmt.Errorf("%w: backend released", ErrUnavailable)
	}

	size := uint64(len(data))
	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(mappedPtr), size), data)
	buffer.Unmap()

	return buffer, nil
}

// readBuffer reads data back from a GPU buffer using a pooled staging buffer,
// since storage buffers can't be mapped directly.
func (b *Backend) readBuffer(src *wgpu.Buffer, size uint64) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.device == nil {
		return nil, fmt.Errorf("%w: backend released", ErrUnavailable)
	}

	staging := b.bufferPool.Acquire(size, stagingUsage)
	defer b.bufferPool.Release(staging, size, stagingUsage)

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("webgpu: failed to map staging buffer: %w", err)
	}
	defer staging.Unmap()

	mappedPtr := staging.GetMappedRange(0, size)
	result := make([]byte, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(result, unsafe.Slice((*byte)(mappedPtr), size))

	return result, nil
}
