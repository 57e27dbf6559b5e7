//go:build windows

package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// sizeClass groups pooled buffers by size.
type sizeClass int

const (
	classSmall  sizeClass = iota // < 4KB
	classMedium                  // 4KB - 1MB
	classLarge                   // > 1MB
	numClasses
)

const (
	smallThreshold  = 4 * 1024
	mediumThreshold = 1024 * 1024
	maxPoolSize     = 32 // Max idle buffers per class
)

type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
	usage  wgpu.BufferUsage
}

// BufferPool recycles staging buffers used to read placed tensors back.
// A stress run reads the same tensor size over and over, so after the first
// readback every Acquire is a pool hit.
type BufferPool struct {
	device *wgpu.Device

	idle [numClasses][]*pooledBuffer
	mu   sync.Mutex

	// Statistics
	totalAllocated uint64
	totalReleased  uint64
	poolHits       uint64
	poolMisses     uint64
}

// NewBufferPool creates a new buffer pool for the given device.
func NewBufferPool(device *wgpu.Device) *BufferPool {
	return &BufferPool{device: device}
}

// Acquire returns an idle buffer of at least size bytes with the given usage,
// or creates a new one.
func (p *BufferPool) Acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	class := classify(size)
	for i, pb := range p.idle[class] {
		if pb.size >= size && pb.usage&usage == usage {
			p.idle[class] = append(p.idle[class][:i], p.idle[class][i+1:]...)
			p.poolHits++
			return pb.buffer
		}
	}

	p.poolMisses++
	p.totalAllocated++
	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	})
}

// Release returns a buffer to the pool. Buffers beyond the per-class limit
// are destroyed immediately.
func (p *BufferPool) Release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.totalReleased++

	class := classify(size)
	if len(p.idle[class]) >= maxPoolSize {
		buffer.Release()
		return
	}
	p.idle[class] = append(p.idle[class], &pooledBuffer{buffer: buffer, size: size, usage: usage})
}

// Clear destroys all idle buffers.
func (p *BufferPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for class := range p.idle {
		for _, pb := range p.idle[class] {
			pb.buffer.Release()
		}
		p.idle[class] = nil
	}
}

// Stats returns statistics about buffer pool usage.
func (p *BufferPool) Stats() (allocated, released, hits, misses uint64, pooledCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for class := range p.idle {
		pooledCount += len(p.idle[class])
	}
	return p.totalAllocated, p.totalReleased, p.poolHits, p.poolMisses, pooledCount
}

func classify(size uint64) sizeClass {
	switch {
	case size < smallThreshold:
		return classSmall
	case size < mediumThreshold:
		return classMedium
	default:
		return classLarge
	}
}
