package stress

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/born-ml/stress/internal/parallel"
)

// Mode selects how the index range is executed.
type Mode int

// Execution modes.
const (
	Sequential Mode = iota
	Parallel
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// ParseMode converts "sequential" or "parallel" into a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sequential", "seq":
		return Sequential, nil
	case "parallel", "par", "threaded":
		return Parallel, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", name)
	}
}

// Observer receives every sample as it is produced.
// In parallel mode it is called concurrently from worker goroutines.
type Observer func(Sample)

// LogObserver returns an Observer that writes one log record per sample.
func LogObserver(logger *slog.Logger) Observer {
	return func(s Sample) {
		logger.LogAttrs(context.Background(), slog.LevelInfo, "sample",
			slog.Int("index", s.Index),
			slog.String("shape", s.Shape.String()),
		)
	}
}

// Options configure a run.
type Options struct {
	// Mode selects sequential or parallel execution.
	Mode Mode

	// Workers is the parallel worker count; zero means runtime.NumCPU().
	Workers int

	// Observer is called once per sample; nil disables the trace.
	Observer Observer

	// Verify reads every placed tensor back and compares it with the source.
	Verify bool
}

// workers returns the effective worker count for the mode.
func (o Options) workers() int {
	if o.Mode == Sequential {
		return 1
	}
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) parallelConfig() parallel.Config {
	if o.Mode == Sequential {
		return parallel.Sequential()
	}
	return parallel.Config{
		Enabled:      true,
		NumWorkers:   o.workers(),
		MinChunkSize: 1,
	}
}

func (o Options) observe(s Sample) {
	if o.Observer != nil {
		o.Observer(s)
	}
}
