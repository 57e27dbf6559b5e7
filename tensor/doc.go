// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the typed tensors placed by the stress harness.
//
// # Overview
//
// A tensor is a host buffer of one of four element types with a shape.
// Placing it on a Backend yields a Resident copy on that backend's device:
//
//	import (
//	    "github.com/born-ml/stress/backend/cpu"
//	    "github.com/born-ml/stress/tensor"
//	)
//
//	func main() {
//	    host := cpu.New()
//	    x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, host)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    placed, err := x.PlaceOn(host)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer placed.Release()
//	}
//
// # Supported Data Types
//
//   - int32, int64 (signed integers)
//   - float32, float64 (floating-point)
//
// # Memory Management
//
// Host buffers are reference-counted. Clone shares the buffer; the storage is
// freed when the last reference is released.
package tensor
