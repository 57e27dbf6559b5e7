// Package webgpu implements the WebGPU backend: placement into GPU memory on
// the default adapter. Uses go-webgpu (github.com/go-webgpu/webgpu) for
// zero-CGO WebGPU bindings.
package webgpu

import "errors"

// ErrUnavailable is returned when no WebGPU adapter can be used.
var ErrUnavailable = errors.New("webgpu: not available")

// MemoryStats represents GPU memory usage statistics.
type MemoryStats struct {
	// Bytes currently held by placed tensors
	TotalAllocatedBytes uint64
	// Peak memory usage in bytes
	PeakMemoryBytes uint64
	// Number of currently active buffers
	ActiveBuffers int64
	// Staging buffer pool statistics
	PoolAllocated uint64
	PoolReleased  uint64
	PoolHits      uint64
	PoolMisses    uint64
	PooledBuffers int
}

// alignSize rounds a byte size up to COPY_BUFFER_ALIGNMENT (4 bytes),
// with a 4-byte minimum.
func alignSize(byteSize int) uint64 {
	size := uint64(byteSize) //nolint:gosec // G115: tensor byte sizes are non-negative
	if size < 4 {
		size = 4
	}
	return (size + 3) &^ 3
}
