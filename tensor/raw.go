// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/stress/internal/tensor"
)

// RawTensor is the untyped host tensor behind Tensor[T, B].
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Raw byte access via Data() and Bytes()
//   - Buffer sharing via Clone() and reference counting
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Int32, tensor.CPU)
//	clone := raw.Clone() // shares the buffer
//	values := tensor.Values[int32](raw)
type RawTensor = tensor.RawTensor

// NewRaw allocates a zeroed raw tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Values returns the elements of r as a typed slice sharing r's buffer.
// It panics if T does not match r.DType().
func Values[T DType](r *RawTensor) []T {
	return tensor.Values[T](r)
}
