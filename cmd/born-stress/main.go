// Package main provides the born-stress CLI, a tensor placement stress test
// for CPU and GPU.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/born-ml/stress/internal/backend/webgpu"
	"github.com/born-ml/stress/internal/config"
	"github.com/born-ml/stress/internal/device"
	"github.com/born-ml/stress/internal/logging"
	"github.com/born-ml/stress/internal/stress"
	"github.com/born-ml/stress/internal/tensor"
)

const version = "v0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// command is one run subcommand.
type command struct {
	name   string
	kind   device.Kind
	mode   stress.Mode
	banner string
	help   string
}

var commands = []command{
	{"cpu", device.CPU, stress.Sequential, "Running CPU stress test.", "stress test on the CPU"},
	{"tcpu", device.CPU, stress.Parallel, "Running CPU stress test with workers.", "stress test on the CPU using a worker pool"},
	{"gpu", device.GPU, stress.Sequential, "Running GPU stress test.", "stress test on the GPU"},
	{"tgpu", device.GPU, stress.Parallel, "Running GPU stress test with workers.", "stress test on the GPU using a worker pool"},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Environ(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args, environ []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, "No command specified.")
		return exitOK
	}

	switch args[0] {
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "born-stress %s\n", version)
		return exitOK
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	case "devices":
		listDevices(stdout)
		return exitOK
	}

	cmd, ok := lookup(args[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return exitUsage
	}

	cfg, err := parseConfig(cmd, args[1:], environ, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	fmt.Fprintln(stdout, cmd.banner)

	if err := execute(ctx, cmd, cfg, logger); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if cfg.ExitOnError {
			return exitError
		}
	}
	return exitOK
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// parseConfig layers defaults, the optional -config file, the environment and
// explicitly set flags, in that order.
func parseConfig(cmd command, args, environ []string, stderr io.Writer) (config.Config, error) {
	var (
		flags      = config.Defaults()
		configPath string
	)

	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", "path to a JSON config file")
	fs.IntVar(&flags.Length, "len", flags.Length, "buffer length; the run places len-1 tensors")
	fs.IntVar(&flags.Workers, "workers", flags.Workers, "parallel workers (0 = number of CPUs)")
	fs.StringVar(&flags.DType, "dtype", flags.DType, "element type: int32, int64, float32, float64")
	fs.BoolVar(&flags.Verify, "verify", flags.Verify, "read every placed tensor back and compare it with the source")
	fs.BoolVar(&flags.Quiet, "quiet", flags.Quiet, "do not log one line per sample")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "log format: text or json")
	fs.BoolVar(&flags.FallbackCPU, "fallback-cpu", flags.FallbackCPU, "use the CPU when no GPU is available")
	fs.BoolVar(&flags.ExitOnError, "exit-on-error", flags.ExitOnError, "exit with status 1 when the run fails")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: born-stress %s [flags]\n\n%s.\n\nFlags:\n", cmd.name, cmd.help)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	if fs.NArg() > 0 {
		return config.Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Defaults()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadJSON(configPath, cfg); err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.EnvOverlay(cfg, environ)
	if err != nil {
		return config.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "len":
			cfg.Length = flags.Length
		case "workers":
			cfg.Workers = flags.Workers
		case "dtype":
			cfg.DType = flags.DType
		case "verify":
			cfg.Verify = flags.Verify
		case "quiet":
			cfg.Quiet = flags.Quiet
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "log-format":
			cfg.LogFormat = flags.LogFormat
		case "fallback-cpu":
			cfg.FallbackCPU = flags.FallbackCPU
		case "exit-on-error":
			cfg.ExitOnError = flags.ExitOnError
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func execute(ctx context.Context, cmd command, cfg config.Config, logger *slog.Logger) error {
	backend, release, err := device.Open(cmd.kind, cfg.FallbackCPU, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.name, err)
	}
	defer release()

	opts := stress.Options{
		Mode:    cmd.mode,
		Workers: cfg.Workers,
		Verify:  cfg.Verify,
	}
	if !cfg.Quiet {
		opts.Observer = stress.LogObserver(logger)
	}

	logger.Debug("starting run",
		"command", cmd.name,
		"backend", backend.Name(),
		"len", cfg.Length,
		"dtype", cfg.DataType().String(),
	)

	_, report, err := stress.Measure(ctx, cfg.Length, cfg.DataType(), backend, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.name, err)
	}

	logger.Info("run finished", "report", report)
	logMemoryStats(logger, backend)
	return nil
}

// logMemoryStats reports GPU memory accounting for backends that track it.
func logMemoryStats(logger *slog.Logger, backend tensor.Backend) {
	gpu, ok := backend.(interface{ MemoryStats() webgpu.MemoryStats })
	if !ok {
		return
	}
	stats := gpu.MemoryStats()
	logger.Debug("gpu memory",
		"peak_bytes", stats.PeakMemoryBytes,
		"active_buffers", stats.ActiveBuffers,
		"pool_hits", stats.PoolHits,
		"pool_misses", stats.PoolMisses,
	)
}

func listDevices(w io.Writer) {
	for _, info := range device.Probe() {
		status := "available"
		if !info.Available {
			status = "unavailable"
		}
		fmt.Fprintf(w, "%-4s %-7s %s\n", info.Kind, info.Backend, status)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "born-stress %s - tensor placement stress test for CPU and GPU\n\n", version)
	fmt.Fprintln(w, "Usage: born-stress <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.help)
	}
	fmt.Fprintln(w, "  devices  list placement targets")
	fmt.Fprintln(w, "  version  show version")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Run 'born-stress <command> -h' for flags. Defaults: -len %d.\n", config.DefaultLength)
}
