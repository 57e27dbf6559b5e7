// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/stress/internal/tensor"
)

// DType is a constraint for tensor element types: int32, int64, float32, float64.
type DType = tensor.DType

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// ParseDataType converts a name such as "int32" or "f64" into a DataType.
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// Device represents where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a 2x3 matrix.
type Shape = tensor.Shape

// Tensor is a typed host tensor bound to a backend.
//
// T is the element type; B is the backend that created it.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Zeros creates a zero-filled tensor.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Zeros[int64](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Zeros[T, B](shape, b)
}

// FromSlice creates a tensor holding a copy of data.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}
