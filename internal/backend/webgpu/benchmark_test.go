//go:build windows

package webgpu

import (
	"math"
	"testing"

	"github.com/born-ml/stress/internal/backend/cpu"
	"github.com/born-ml/stress/internal/tensor"
)

// =============================================================================
// Helper Functions
// =============================================================================

// createFloat32Tensor creates a host tensor filled with a simple pattern.
func createFloat32Tensor(size int) *tensor.RawTensor {
	raw, err := tensor.NewRaw(tensor.Shape{size}, tensor.Float32, tensor.CPU)
	if err != nil {
		panic(err)
	}
	data := raw.Data()
	for i := 0; i < len(data); i += 4 {
		bits := math.Float32bits(float32(i % 1000))
		data[i+0] = byte(bits)
		data[i+1] = byte(bits >> 8)
		data[i+2] = byte(bits >> 16)
		data[i+3] = byte(bits >> 24)
	}
	return raw
}

// =============================================================================
// Placement Benchmarks
// =============================================================================

func benchmarkPlace(b *testing.B, backendType string, size int, readBack bool) {
	var backend tensor.Backend

	if backendType == "cpu" {
		backend = cpu.New()
	} else {
		if !IsAvailable() {
			b.Skip("WebGPU not available")
		}
		gpuBackend, err := New()
		if err != nil {
			b.Fatalf("failed to create WebGPU backend: %v", err)
		}
		defer gpuBackend.Release()
		backend = gpuBackend
	}

	src := createFloat32Tensor(size)
	defer src.Release()

	b.SetBytes(int64(src.ByteSize()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		placed, err := backend.Place(src)
		if err != nil {
			b.Fatal(err)
		}
		if readBack {
			if _, err := placed.Bytes(); err != nil {
				b.Fatal(err)
			}
		}
		placed.Release()
	}
}

func BenchmarkCPU_Place_1K(b *testing.B)   { benchmarkPlace(b, "cpu", 1024, false) }
func BenchmarkCPU_Place_10K(b *testing.B)  { benchmarkPlace(b, "cpu", 10*1024, false) }
func BenchmarkCPU_Place_1M(b *testing.B)   { benchmarkPlace(b, "cpu", 1024*1024, false) }
func BenchmarkCPU_Verify_10K(b *testing.B) { benchmarkPlace(b, "cpu", 10*1024, true) }

func BenchmarkWebGPU_Place_1K(b *testing.B)   { benchmarkPlace(b, "webgpu", 1024, false) }
func BenchmarkWebGPU_Place_10K(b *testing.B)  { benchmarkPlace(b, "webgpu", 10*1024, false) }
func BenchmarkWebGPU_Place_1M(b *testing.B)   { benchmarkPlace(b, "webgpu", 1024*1024, false) }
func BenchmarkWebGPU_Verify_10K(b *testing.B) { benchmarkPlace(b, "webgpu", 10*1024, true) }
