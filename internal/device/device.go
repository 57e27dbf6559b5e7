// Package device maps the harness's two placement targets onto backends.
package device

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/born-ml/stress/internal/backend/cpu"
	"github.com/born-ml/stress/internal/backend/webgpu"
	"github.com/born-ml/stress/internal/tensor"
)

// ErrUnknownKind is returned for device names other than cpu and gpu.
var ErrUnknownKind = errors.New("device: unknown kind")

// Kind is a placement target: host memory or GPU index 0.
type Kind int

// Supported kinds.
const (
	CPU Kind = iota
	GPU
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case CPU:
		return "cpu"
	case GPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// ParseKind converts "cpu" or "gpu" into a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cpu":
		return CPU, nil
	case "gpu", "webgpu", "cuda":
		return GPU, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// openGPU builds the GPU backend; tests swap it out.
var openGPU = func() (tensor.Backend, func(), error) {
	gpu, err := webgpu.New()
	if err != nil {
		return nil, nil, err
	}
	return gpu, gpu.Release, nil
}

// Open returns a backend for kind and a function releasing it.
// With fallbackCPU set, an unavailable GPU is replaced by the CPU backend and
// a warning is logged; otherwise the GPU error is returned.
func Open(kind Kind, fallbackCPU bool, logger *slog.Logger) (tensor.Backend, func(), error) {
	switch kind {
	case CPU:
		return cpu.New(), func() {}, nil
	case GPU:
		backend, release, err := openGPU()
		if err == nil {
			return backend, release, nil
		}
		if !fallbackCPU {
			return nil, nil, fmt.Errorf("open gpu: %w", err)
		}
		if logger != nil {
			logger.Warn("gpu unavailable, falling back to cpu", "error", err)
		}
		return cpu.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// Info describes one placement target for the devices listing.
type Info struct {
	Kind      Kind
	Backend   string
	Available bool
}

// Probe reports which placement targets can be opened on this machine.
func Probe() []Info {
	return []Info{
		{Kind: CPU, Backend: cpu.New().Name(), Available: true},
		{Kind: GPU, Backend: "WebGPU", Available: webgpu.IsAvailable()},
	}
}
