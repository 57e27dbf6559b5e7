// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stress provides the public API of the tensor placement stress test.
//
// A run builds one tensor per index in [1, length) from a zero-filled host
// buffer, places it on a backend, records its shape and releases it. The
// result is ordered by index whether the run was sequential or parallel.
//
// Example:
//
//	import (
//	    "github.com/born-ml/stress/backend/cpu"
//	    "github.com/born-ml/stress/stress"
//	    "github.com/born-ml/stress/tensor"
//	)
//
//	func main() {
//	    rs, err := stress.Generate(ctx, 10000, tensor.Int32, cpu.New(),
//	        stress.Options{Mode: stress.Parallel})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(rs[0]) // 1 [10000]
//	}
package stress

import (
	"context"
	"log/slog"

	"github.com/born-ml/stress/internal/stress"
	"github.com/born-ml/stress/tensor"
)

// Sample is one (index, shape) observation.
type Sample = stress.Sample

// ResultSet holds the samples of a run ordered by index.
type ResultSet = stress.ResultSet

// Mode selects sequential or parallel execution.
type Mode = stress.Mode

// Execution modes.
const (
	Sequential Mode = stress.Sequential
	Parallel   Mode = stress.Parallel
)

// Options configure a run.
type Options = stress.Options

// Observer receives every sample as it is produced.
type Observer = stress.Observer

// Report summarizes a completed run.
type Report = stress.Report

// ErrCorrupt is returned by verifying runs when a placed tensor reads back
// different bytes than its source.
var ErrCorrupt = stress.ErrCorrupt

// ParseMode converts "sequential" or "parallel" into a Mode.
func ParseMode(name string) (Mode, error) {
	return stress.ParseMode(name)
}

// LogObserver returns an Observer that logs one record per sample.
func LogObserver(logger *slog.Logger) Observer {
	return stress.LogObserver(logger)
}

// Generate runs over a zero-filled buffer of length elements of dtype.
// A length of 1 or less yields an empty ResultSet.
func Generate(ctx context.Context, length int, dtype tensor.DataType, dev tensor.Backend, opts Options) (ResultSet, error) {
	return stress.Generate(ctx, length, dtype, dev, opts)
}

// Run runs over a caller-supplied buffer, which is only read.
func Run[T tensor.DType](ctx context.Context, buf []T, dev tensor.Backend, opts Options) (ResultSet, error) {
	return stress.Run(ctx, buf, dev, opts)
}

// Measure runs Generate and reports its duration and throughput.
func Measure(ctx context.Context, length int, dtype tensor.DataType, dev tensor.Backend, opts Options) (ResultSet, Report, error) {
	return stress.Measure(ctx, length, dtype, dev, opts)
}
