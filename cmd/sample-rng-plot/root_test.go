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
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/netsim-tools/sample-rng-plot/pkg/rng"
)

func TestUnknownFlagFailsBeforeRun(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--bogus"})

	err := cmd.Execute()
	require.ErrorContains(t, err, "unknown flag")
}

func TestBuildStreamDefaults(t *testing.T) {
	stream, err := buildStream()
	require.NoError(t, err)
	require.Equal(t, rng.KindNormal, stream.Kind())
}

func TestBuildStreamUnknownDistribution(t *testing.T) {
	defer func() { distribution = "normal" }()
	distribution = "poisson"

	_, err := buildStream()
	require.ErrorContains(t, err, "unsupported distribution")
}

func TestBuildStreamEveryKind(t *testing.T) {
	defer func() { distribution = "normal" }()

	for _, kind := range []string{
		"constant", "sequential", "uniform", "exponential",
		"pareto", "weibull", "normal", "lognormal", "zipf",
	} {
		distribution = kind

		stream, err := buildStream()
		require.NoError(t, err)
		require.Equal(t, rng.Kind(kind), stream.Kind())
	}
}

func TestVersionString(t *testing.T) {
	out := versionString()
	require.Contains(t, out, "sample-rng-plot:")
	require.Contains(t, out, "version:")
}

func TestCreateLoggerBadLevelFallsBack(t *testing.T) {
	logger := createLogger("nonsense")
	require.NotNil(t, logger)
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
