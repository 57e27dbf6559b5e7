// Package tensor provides the core tensor types used by the stress harness:
// shapes, element types, devices, host tensors and the placement interface
// implemented by compute backends.
package tensor

import (
	"fmt"
	"strings"
)

// DType is a constraint for element types a stress buffer can hold.
// It uses Go generics so the load generator is typed at compile time.
type DType interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Int32 DataType = iota
	Int64
	Float32
	Float64
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ParseDataType converts a name such as "int32" or "f32" into a DataType.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int32", "i32", "int":
		return Int32, nil
	case "int64", "i64", "long":
		return Int64, nil
	case "float32", "f32", "float":
		return Float32, nil
	case "float64", "f64", "double":
		return Float64, nil
	default:
		return 0, fmt.Errorf("unsupported data type %q", name)
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic(fmt.Sprintf("unsupported element type %T", dummy))
	}
}

// DataTypeOf returns the runtime DataType for the element type T.
func DataTypeOf[T DType]() DataType {
	return inferDataType[T]()
}
