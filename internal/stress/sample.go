// Package stress implements the tensor placement load generator.
//
// A run materializes one tensor per index from a shared host buffer, places
// it on a device, records the resulting shape and releases it again. Runs are
// sequential or fanned out over a fixed worker count; either way the returned
// ResultSet is ordered by index.
package stress

import (
	"fmt"
	"sort"

	"github.com/born-ml/stress/internal/tensor"
)

// Sample is one (index, shape) observation from a single placement.
type Sample struct {
	Index int
	Shape tensor.Shape
}

// String formats the sample as "index [shape]".
func (s Sample) String() string {
	return fmt.Sprintf("%d %v", s.Index, s.Shape)
}

// ResultSet holds the samples of a run ordered by ascending index.
type ResultSet []Sample

// Sort orders the samples by index.
func (rs ResultSet) Sort() {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Index < rs[j].Index })
}

// Sorted reports whether the samples are in ascending index order.
func (rs ResultSet) Sorted() bool {
	return sort.SliceIsSorted(rs, func(i, j int) bool { return rs[i].Index < rs[j].Index })
}

// Equal reports whether both result sets hold the same samples in the same order.
func (rs ResultSet) Equal(other ResultSet) bool {
	if len(rs) != len(other) {
		return false
	}
	for i := range rs {
		if rs[i].Index != other[i].Index || !rs[i].Shape.Equal(other[i].Shape) {
			return false
		}
	}
	return true
}
