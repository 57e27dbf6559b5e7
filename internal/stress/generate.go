package stress

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/born-ml/stress/internal/backend/cpu"
	"github.com/born-ml/stress/internal/parallel"
	"github.com/born-ml/stress/internal/tensor"
)

// ErrCorrupt is returned when a placed tensor reads back different bytes than
// its source.
var ErrCorrupt = errors.New("stress: placed tensor does not match source")

// Generate runs the load generator over a zero-filled buffer of length
// elements of the given dtype and returns length-1 samples.
// A length of 1 or less yields an empty ResultSet.
func Generate(ctx context.Context, length int, dtype tensor.DataType, dev tensor.Backend, opts Options) (ResultSet, error) {
	if length <= 1 {
		return ResultSet{}, nil
	}

	switch dtype {
	case tensor.Int32:
		return Run(ctx, make([]int32, length), dev, opts)
	case tensor.Int64:
		return Run(ctx, make([]int64, length), dev, opts)
	case tensor.Float32:
		return Run(ctx, make([]float32, length), dev, opts)
	case tensor.Float64:
		return Run(ctx, make([]float64, length), dev, opts)
	default:
		return nil, fmt.Errorf("stress: unsupported dtype %s", dtype)
	}
}

// Run places one tensor built from buf for every index in [1, len(buf)).
// buf is only read. The first failure aborts the run and no partial result
// is returned.
func Run[T tensor.DType](ctx context.Context, buf []T, dev tensor.Backend, opts Options) (ResultSet, error) {
	if dev == nil {
		return nil, errors.New("stress: no backend")
	}
	length := len(buf)
	if length <= 1 {
		return ResultSet{}, nil
	}

	host := cpu.New()
	shape := tensor.Shape{length}

	// Each index owns slot index-1, so workers never share a slot.
	results := make(ResultSet, length-1)

	err := parallel.For(ctx, 1, length, func(_ context.Context, i int) error {
		s, err := sample(i, buf, shape, host, dev, opts.Verify)
		if err != nil {
			return err
		}
		results[i-1] = s
		opts.observe(s)
		return nil
	}, opts.parallelConfig())
	if err != nil {
		return nil, err
	}

	results.Sort()
	return results, nil
}

// sample builds, places and measures a single tensor.
func sample[T tensor.DType](i int, buf []T, shape tensor.Shape, host *cpu.CPUBackend, dev tensor.Backend, verify bool) (Sample, error) {
	t, err := tensor.FromSlice(buf, shape, host)
	if err != nil {
		return Sample{}, fmt.Errorf("sample %d: %w", i, err)
	}
	defer t.Release()

	placed, err := t.PlaceOn(dev)
	if err != nil {
		return Sample{}, fmt.Errorf("sample %d: %w", i, err)
	}
	defer placed.Release()

	if verify {
		got, err := placed.Bytes()
		if err != nil {
			return Sample{}, fmt.Errorf("sample %d: read back: %w", i, err)
		}
		if !bytes.Equal(got, t.Raw().Data()[:t.Raw().ByteSize()]) {
			return Sample{}, fmt.Errorf("sample %d: %w", i, ErrCorrupt)
		}
	}

	return Sample{Index: i, Shape: placed.Shape().Clone()}, nil
}
