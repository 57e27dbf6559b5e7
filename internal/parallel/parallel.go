// Package parallel provides the fork-join fan-out used by the stress harness.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1,
	}
}

// Sequential returns a config that runs every index on the calling goroutine
// in increasing order.
func Sequential() Config {
	return Config{Enabled: false}
}

// For executes f(ctx, i) for i in [lo, hi).
//
// With parallelism enabled the range is split into at most NumWorkers
// contiguous chunks, each run by its own goroutine; execution order across
// chunks is unspecified. The first error cancels the context passed to the
// remaining calls and is returned once all workers have stopped. Otherwise
// indices run in increasing order on the calling goroutine.
func For(ctx context.Context, lo, hi int, f func(ctx context.Context, i int) error, cfg Config) error {
	n := hi - lo
	if n <= 0 {
		return nil
	}

	workers := cfg.NumWorkers
	if workers < 1 {
		workers = 1
	}
	minChunk := max(cfg.MinChunkSize, 1)

	if !cfg.Enabled || workers == 1 || n < 2*minChunk {
		return forSequential(ctx, lo, hi, f)
	}

	chunkSize := max((n+workers-1)/workers, minChunk)

	g, gctx := errgroup.WithContext(ctx)
	for start := lo; start < hi; start += chunkSize {
		end := min(start+chunkSize, hi)
		g.Go(func() error {
			return forSequential(gctx, start, end, f)
		})
	}
	return g.Wait()
}

func forSequential(ctx context.Context, lo, hi int, f func(ctx context.Context, i int) error) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// Chunks returns how many contiguous chunks For splits [lo, hi) into.
// A sequential run counts as one chunk.
func Chunks(lo, hi int, cfg Config) int {
	n := hi - lo
	if n <= 0 {
		return 0
	}
	workers := max(cfg.NumWorkers, 1)
	minChunk := max(cfg.MinChunkSize, 1)
	if !cfg.Enabled || workers == 1 || n < 2*minChunk {
		return 1
	}
	chunkSize := max((n+workers-1)/workers, minChunk)
	return (n + chunkSize - 1) / chunkSize
}
