package stress

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/born-ml/stress/internal/tensor"
)

// Report summarizes a completed run.
type Report struct {
	Backend string
	Device  tensor.Device
	DType   tensor.DataType
	Mode    Mode
	Workers int
	Length  int
	Samples int
	Elapsed time.Duration
}

// Throughput returns placements per second.
func (r Report) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Samples) / r.Elapsed.Seconds()
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", r.Backend),
		slog.String("device", r.Device.String()),
		slog.String("dtype", r.DType.String()),
		slog.String("mode", r.Mode.String()),
		slog.Int("workers", r.Workers),
		slog.Int("len", r.Length),
		slog.Int("samples", r.Samples),
		slog.Duration("elapsed", r.Elapsed),
		slog.Float64("per_sec", r.Throughput()),
	)
}

// Measure runs Generate and reports how long it took.
func Measure(ctx context.Context, length int, dtype tensor.DataType, dev tensor.Backend, opts Options) (ResultSet, Report, error) {
	if dev == nil {
		return nil, Report{}, errors.New("stress: no backend")
	}

	report := Report{
		Backend: dev.Name(),
		Device:  dev.Device(),
		DType:   dtype,
		Mode:    opts.Mode,
		Workers: opts.workers(),
		Length:  length,
	}

	start := time.Now()
	results, err := Generate(ctx, length, dtype, dev, opts)
	report.Elapsed = time.Since(start)
	if err != nil {
		return nil, report, err
	}

	report.Samples = len(results)
	return results, report, nil
}
