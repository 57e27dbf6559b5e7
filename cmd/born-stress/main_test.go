package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/stress/internal/backend/webgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, env []string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, env, &out, &errOut)
	return code, out.String(), errOut.String()
}

func countLines(s, substr string) int {
	n := 0
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		if strings.Contains(sc.Text(), substr) {
			n++
		}
	}
	return n
}

func TestNoCommand(t *testing.T) {
	code, out, _ := runCLI(t, nil)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "No command specified.\n", out)
}

func TestUnknownCommand(t *testing.T) {
	code, out, errOut := runCLI(t, nil, "fpga")
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `unknown command "fpga"`)
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, nil, "version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, version)

	code, out, _ = runCLI(t, nil, "help")
	assert.Equal(t, exitOK, code)
	for _, c := range commands {
		assert.Contains(t, out, c.name)
	}
}

func TestDevices(t *testing.T) {
	code, out, _ := runCLI(t, nil, "devices")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "cpu")
	assert.Contains(t, out, "gpu")
}

func TestCPU(t *testing.T) {
	code, out, errOut := runCLI(t, nil, "cpu", "-len", "50")
	require.Equal(t, exitOK, code, errOut)

	assert.Equal(t, "Running CPU stress test.\n", out)
	assert.Equal(t, 49, countLines(errOut, "msg=sample"))
	assert.Contains(t, errOut, "index=1 shape=[50]")
	assert.Contains(t, errOut, "index=49 shape=[50]")
	assert.Contains(t, errOut, "msg=\"run finished\"")
}

func TestCPUQuiet(t *testing.T) {
	code, out, errOut := runCLI(t, nil, "cpu", "-len", "50", "-quiet")
	require.Equal(t, exitOK, code, errOut)

	assert.Equal(t, "Running CPU stress test.\n", out)
	assert.Zero(t, countLines(errOut, "msg=sample"))
	assert.Contains(t, errOut, "report.samples=49")
}

func TestThreadedCPUJSON(t *testing.T) {
	code, out, errOut := runCLI(t, nil, "tcpu", "-len", "100", "-workers", "4", "-log-format", "json", "-dtype", "float64")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "Running CPU stress test with workers.\n", out)

	seen := make(map[int]bool)
	sc := bufio.NewScanner(strings.NewReader(errOut))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		if rec["msg"] != "sample" {
			continue
		}
		idx := int(rec["index"].(float64))
		assert.False(t, seen[idx], "index %d logged twice", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, 99)
}

func TestZeroAndOneLength(t *testing.T) {
	for _, n := range []string{"0", "1"} {
		code, out, errOut := runCLI(t, nil, "tcpu", "-len", n)
		require.Equal(t, exitOK, code, errOut)
		assert.Equal(t, "Running CPU stress test with workers.\n", out)
		assert.Zero(t, countLines(errOut, "msg=sample"))
	}
}

func TestEnvOverlay(t *testing.T) {
	env := []string{"BORN_STRESS_LEN=20", "BORN_STRESS_QUIET=true"}

	code, _, errOut := runCLI(t, env, "cpu")
	require.Equal(t, exitOK, code, errOut)
	assert.Zero(t, countLines(errOut, "msg=sample"))
	assert.Contains(t, errOut, "report.samples=19")

	code, _, errOut = runCLI(t, env, "cpu", "-len", "10")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, errOut, "report.samples=9", "flags override the environment")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"len": 30, "quiet": true, "verify": true}`), 0o600))

	code, _, errOut := runCLI(t, []string{"BORN_STRESS_LEN=40"}, "cpu", "-config", path)
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, errOut, "report.samples=39", "environment overrides the file")
	assert.Zero(t, countLines(errOut, "msg=sample"))
}

func TestBadInput(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":   {"cpu", "-speed", "9"},
		"negative len":   {"cpu", "-len", "-5"},
		"bad dtype":      {"cpu", "-dtype", "bool"},
		"extra argument": {"cpu", "extra"},
		"missing config": {"cpu", "-config", "/nonexistent/stress.json"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			code, out, errOut := runCLI(t, nil, args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, out)
			assert.NotEmpty(t, errOut)
		})
	}

	code, _, _ := runCLI(t, []string{"BORN_STRESS_LEN=many"}, "cpu")
	assert.Equal(t, exitUsage, code)
}

func TestFlagHelp(t *testing.T) {
	code, out, errOut := runCLI(t, nil, "tgpu", "-h")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "-len")
}

func TestGPUUnavailable(t *testing.T) {
	if webgpu.IsAvailable() {
		t.Skip("WebGPU is available on this machine")
	}

	code, out, errOut := runCLI(t, nil, "gpu", "-len", "10")
	assert.Equal(t, exitError, code)
	assert.Equal(t, "Running GPU stress test.\n", out)
	assert.Contains(t, errOut, "error: gpu: open gpu:")

	code, _, errOut = runCLI(t, nil, "tgpu", "-len", "10", "-exit-on-error=false")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "error: tgpu:")
}

func TestGPUFallbackCPU(t *testing.T) {
	if webgpu.IsAvailable() {
		t.Skip("WebGPU is available on this machine")
	}

	code, out, errOut := runCLI(t, nil, "tgpu", "-len", "10", "-fallback-cpu", "-quiet")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "Running GPU stress test with workers.\n", out)
	assert.Contains(t, errOut, "falling back to cpu")
	assert.Contains(t, errOut, "report.backend=CPU")
}
