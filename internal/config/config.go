// Package config holds the run configuration of the stress CLI.
//
// Sources are layered: Defaults, then an optional JSON file, then
// BORN_STRESS_* environment variables, then command-line flags.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/stress/internal/logging"
	"github.com/born-ml/stress/internal/tensor"
)

// DefaultLength is the buffer length used when none is given.
const DefaultLength = 10000

// EnvPrefix prefixes every environment variable read by EnvOverlay.
const EnvPrefix = "BORN_STRESS_"

// Config is the full run configuration.
type Config struct {
	Length      int    `json:"len"`
	Workers     int    `json:"workers"`
	DType       string `json:"dtype"`
	Verify      bool   `json:"verify"`
	Quiet       bool   `json:"quiet"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
	FallbackCPU bool   `json:"fallback_cpu"`
	ExitOnError bool   `json:"exit_on_error"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Length:      DefaultLength,
		Workers:     0,
		DType:       "int32",
		LogLevel:    "info",
		LogFormat:   "text",
		ExitOnError: true,
	}
}

// LoadJSON decodes a JSON file on top of base. Unknown fields are rejected.
func LoadJSON(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}

	cfg := base
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return base, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// EnvOverlay applies BORN_STRESS_* variables from environ (KEY=VALUE pairs)
// on top of base. Unknown keys are ignored; malformed values are errors.
func EnvOverlay(base Config, environ []string) (Config, error) {
	cfg := base
	var errs []error

	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		val = strings.TrimSpace(val)

		switch strings.TrimPrefix(key, EnvPrefix) {
		case "LEN":
			errs = append(errs, parseInt(key, val, &cfg.Length))
		case "WORKERS":
			errs = append(errs, parseInt(key, val, &cfg.Workers))
		case "DTYPE":
			cfg.DType = val
		case "VERIFY":
			errs = append(errs, parseBool(key, val, &cfg.Verify))
		case "QUIET":
			errs = append(errs, parseBool(key, val, &cfg.Quiet))
		case "LOG_LEVEL":
			cfg.LogLevel = val
		case "LOG_FORMAT":
			cfg.LogFormat = val
		case "FALLBACK_CPU":
			errs = append(errs, parseBool(key, val, &cfg.FallbackCPU))
		case "EXIT_ON_ERROR":
			errs = append(errs, parseBool(key, val, &cfg.ExitOnError))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the harness cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Length < 0 {
		errs = append(errs, fmt.Errorf("len must be >= 0, got %d", c.Length))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if _, err := tensor.ParseDataType(c.DType); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// DataType returns the parsed element type. Call Validate first.
func (c Config) DataType() tensor.DataType {
	dt, err := tensor.ParseDataType(c.DType)
	if err != nil {
		return tensor.Int32
	}
	return dt
}

func parseInt(key, val string, dst *int) error {
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("%s: invalid integer %q", key, val)
	}
	*dst = n
	return nil
}

func parseBool(key, val string, dst *bool) error {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("%s: invalid boolean %q", key, val)
	}
	*dst = b
	return nil
}
