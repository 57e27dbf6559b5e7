// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package stress_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/born-ml/stress/backend/cpu"
	"github.com/born-ml/stress/stress"
	"github.com/born-ml/stress/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	rs, report, err := stress.Measure(context.Background(), 64, tensor.Int64, cpu.New(), stress.Options{Mode: stress.Parallel, Workers: 4})
	require.NoError(t, err)

	assert.Len(t, rs, 63)
	assert.Equal(t, 63, report.Samples)
	assert.Equal(t, 4, report.Workers)
	assert.Equal(t, "CPU", report.Backend)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := stress.Generate(context.Background(), 4, tensor.Float32, cpu.New(), stress.Options{Observer: stress.LogObserver(logger)})
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), "msg=sample"))
}

func TestVerify(t *testing.T) {
	_, err := stress.Generate(context.Background(), 32, tensor.Int32, cpu.New(), stress.Options{Mode: stress.Parallel, Verify: true})
	require.NoError(t, err)
}
