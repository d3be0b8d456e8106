// Copyright 2025 the sample-rng-plot authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/plot"

	"github.com/netsim-tools/sample-rng-plot/pkg/histplot"
	"github.com/netsim-tools/sample-rng-plot/pkg/rng"
)

type fakeDisplayer struct {
	checkErr error
	path     string
	calls    int
	blocking bool
}

func (f *fakeDisplayer) Check() error {
	return f.checkErr
}

func (f *fakeDisplayer) Display(_ context.Context, path string, blocking bool) error {
	f.calls++
	f.path = path
	f.blocking = blocking
	return nil
}

// countingStream records how many draws the pipeline pulled.
type countingStream struct {
	calls int
}

func (c *countingStream) Kind() rng.Kind {
	return rng.KindConstant
}

func (c *countingStream) Value() float64 {
	c.calls++
	return 100.0
}

func (c *countingStream) Integer() uint64 {
	return uint64(c.Value())
}

// captureRender records the values handed to the plotting stage and
// produces an empty figure so Save still works. renderHist is a package
// global, so tests that swap it cannot run in parallel.
func captureRender(captured *[]float64) func([]float64, histplot.Config) (*plot.Plot, error) {
	return func(values []float64, _ histplot.Config) (*plot.Plot, error) {
		*captured = append([]float64(nil), values...)
		return plot.New(), nil
	}
}

func defaultTestConfig(t *testing.T) pipelineConfig {
	t.Helper()

	return pipelineConfig{
		samples:  10000,
		bins:     50,
		output:   filepath.Join(t.TempDir(), "hist.png"),
		blocking: true,
		display:  true,
	}
}

func TestPipelineBlockingFlagPropagation(t *testing.T) {
	defer func() { renderHist = histplot.Render }()

	for _, blocking := range []bool{true, false} {
		var captured []float64
		renderHist = captureRender(&captured)

		cfg := defaultTestConfig(t)
		cfg.blocking = blocking

		display := &fakeDisplayer{}

		err := runPipeline(context.Background(), cfg, rng.Constant{Val: 100.0}, display, zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, 1, display.calls)
		require.Equal(t, blocking, display.blocking)
	}
}

func TestPipelineEndToEndConstantStream(t *testing.T) {
	defer func() { renderHist = histplot.Render }()

	var captured []float64
	renderHist = captureRender(&captured)

	cfg := defaultTestConfig(t)
	display := &fakeDisplayer{}

	err := runPipeline(context.Background(), cfg, rng.Constant{Val: 100.0}, display, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, captured, 10000)
	for _, v := range captured {
		require.Equal(t, 100.0, v)
	}

	require.Equal(t, cfg.output, display.path)
	require.True(t, display.blocking)
}

func TestPipelineNoDisplay(t *testing.T) {
	defer func() { renderHist = histplot.Render }()

	var captured []float64
	renderHist = captureRender(&captured)

	cfg := defaultTestConfig(t)
	cfg.display = false

	display := &fakeDisplayer{}

	err := runPipeline(context.Background(), cfg, rng.Constant{Val: 100.0}, display, zap.NewNop())
	require.NoError(t, err)
	require.Zero(t, display.calls)
}

func TestPipelineRenderError(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.bins = 0

	display := &fakeDisplayer{}

	err := runPipeline(context.Background(), cfg, rng.Constant{Val: 100.0}, display, zap.NewNop())
	require.ErrorContains(t, err, "failed to render histogram")
	require.Zero(t, display.calls)
}

func TestPipelineMissingViewerFailsBeforeSampling(t *testing.T) {
	cfg := defaultTestConfig(t)

	stream := &countingStream{}
	display := histplot.NewViewerDisplay(zap.NewNop())
	display.Viewer = "image-viewer-that-does-not-exist"

	err := runPipeline(context.Background(), cfg, stream, display, zap.NewNop())
	require.ErrorContains(t, err, "not found")
	require.Zero(t, stream.calls)

	_, statErr := os.Stat(cfg.output)
	require.True(t, os.IsNotExist(statErr))
}

func TestPipelineSkipsCheckWithoutDisplay(t *testing.T) {
	defer func() { renderHist = histplot.Render }()

	var captured []float64
	renderHist = captureRender(&captured)

	cfg := defaultTestConfig(t)
	cfg.display = false

	display := &fakeDisplayer{checkErr: errors.New("viewer exploded")}

	err := runPipeline(context.Background(), cfg, &countingStream{}, display, zap.NewNop())
	require.NoError(t, err)
	require.Zero(t, display.calls)
}

func TestPipelineSamplingError(t *testing.T) {
	cfg := defaultTestConfig(t)
	cfg.samples = 0

	err := runPipeline(context.Background(), cfg, rng.Constant{Val: 100.0}, &fakeDisplayer{}, zap.NewNop())
	require.ErrorContains(t, err, "sample count must be positive")
}
