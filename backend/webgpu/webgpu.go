// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the GPU placement backend built on WebGPU.
//
// GPU access is implemented for Windows. On other platforms New returns
// ErrUnavailable and IsAvailable reports false.
//
// Example:
//
//	import (
//	    "github.com/born-ml/stress/backend/cpu"
//	    "github.com/born-ml/stress/backend/webgpu"
//	    "github.com/born-ml/stress/tensor"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    x, _ := tensor.Zeros[float32](tensor.Shape{1024}, cpu.New())
//	    placed, err := x.PlaceOn(gpu)
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/stress/internal/backend/webgpu"
	"github.com/born-ml/stress/tensor"
)

// Backend places tensors in GPU storage buffers.
type Backend = internalwebgpu.Backend

// MemoryStats reports GPU buffer accounting.
type MemoryStats = internalwebgpu.MemoryStats

// ErrUnavailable is returned when no WebGPU adapter can be opened.
var ErrUnavailable = internalwebgpu.ErrUnavailable

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New opens the default high-performance adapter. Call Release when done.
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable reports whether a WebGPU adapter can be opened.
//
// Example:
//
//	var backend tensor.Backend = cpu.New()
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    backend = gpu
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
