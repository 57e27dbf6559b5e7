//go:build windows

package webgpu

import (
	"testing"

	"github.com/born-ml/stress/internal/tensor"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	t.Cleanup(backend.Release)
	return backend
}

func TestIsAvailable(t *testing.T) {
	available := IsAvailable()
	t.Logf("WebGPU available: %v", available)
	// Note: This test doesn't fail if WebGPU is unavailable
}

func TestNew(t *testing.T) {
	backend := newTestBackend(t)

	if backend.Name() == "" {
		t.Error("Backend name should not be empty")
	}
	if backend.Device() != tensor.WebGPU {
		t.Errorf("Expected device WebGPU, got %v", backend.Device())
	}
}

func TestPlaceReadsBackZeros(t *testing.T) {
	backend := newTestBackend(t)

	src, err := tensor.NewRaw(tensor.Shape{1000}, tensor.Int32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	placed, err := backend.Place(src)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	defer placed.Release()

	if !placed.Shape().Equal(tensor.Shape{1000}) {
		t.Errorf("Expected shape [1000], got %v", placed.Shape())
	}

	data, err := placed.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(data) != 4000 {
		t.Fatalf("Expected 4000 bytes, got %d", len(data))
	}
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestMemoryStatsTrackPlacement(t *testing.T) {
	backend := newTestBackend(t)

	src, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, tensor.CPU)
	placed, err := backend.Place(src)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	stats := backend.MemoryStats()
	if stats.ActiveBuffers != 1 || stats.TotalAllocatedBytes != 12 {
		t.Errorf("after place: active=%d bytes=%d, want 1 and 12", stats.ActiveBuffers, stats.TotalAllocatedBytes)
	}

	// Two readbacks of the same size reuse one staging buffer.
	for i := 0; i < 2; i++ {
		if _, err := placed.Bytes(); err != nil {
			t.Fatalf("Bytes failed: %v", err)
		}
	}

	placed.Release()
	placed.Release()

	stats = backend.MemoryStats()
	if stats.ActiveBuffers != 0 || stats.TotalAllocatedBytes != 0 {
		t.Errorf("after release: active=%d bytes=%d, want 0 and 0", stats.ActiveBuffers, stats.TotalAllocatedBytes)
	}
	if stats.PeakMemoryBytes != 12 {
		t.Errorf("peak = %d, want 12", stats.PeakMemoryBytes)
	}
	if stats.PoolHits != 1 || stats.PoolMisses != 1 {
		t.Errorf("pool hits=%d misses=%d, want 1 and 1", stats.PoolHits, stats.PoolMisses)
	}
}
