// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/stress/internal/tensor"

// Backend places host tensors on a device.
//
// Implementations:
//   - backend/cpu: host memory, shares the source buffer
//   - backend/webgpu: GPU storage buffer via WebGPU (Windows)
//
// Example:
//
//	import (
//	    "github.com/born-ml/stress/backend/cpu"
//	    "github.com/born-ml/stress/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.Zeros[int32](tensor.Shape{100}, backend)
//	placed, err := x.PlaceOn(backend)
type Backend = tensor.Backend

// Resident is a tensor living on a backend's device.
// Release frees its storage; Bytes reads it back to the host.
type Resident = tensor.Resident
