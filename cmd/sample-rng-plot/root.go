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
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/netsim-tools/sample-rng-plot/pkg/histplot"
	"github.com/netsim-tools/sample-rng-plot/pkg/rng"
	"github.com/netsim-tools/sample-rng-plot/pkg/utils"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sample-rng-plot",
		Short:        "Draws samples from a configured random-variable stream and plots their distribution.",
		RunE:         run,
		SilenceUsage: true,
	}

	setupFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	if versionFlag {
		//nolint:forbidigo
		fmt.Println(versionString())
		return nil
	}

	logger := createLogger(level)
	utils.AddFinalizer(func() {
		utils.IgnoreError(logger.Sync)
	})

	rng.SetSeed(rngSeed)
	rng.SetRun(rngRun)

	stream, err := buildStream()
	if err != nil {
		return err
	}

	logger.Info("stream configured",
		zap.String("distribution", string(stream.Kind())),
		zap.Float64("mean", mean),
		zap.Float64("variance", variance),
		zap.Uint64("seed", rng.Seed()),
		zap.Uint64("run", rng.Run()),
	)

	cfg := pipelineConfig{
		samples:  sampleCount,
		bins:     binCount,
		output:   outputFile,
		blocking: !notBlocking,
		display:  !noDisplay,
	}

	return runPipeline(cmd.Context(), cfg, stream, histplot.NewViewerDisplay(logger), logger)
}

// buildStream translates the flag surface into a stream configuration.
// Each distribution reads only the parameters that apply to it.
func buildStream() (rng.Stream, error) {
	kind, err := rng.ParseKind(distribution)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse --distribution argument")
	}

	stream, err := rng.New(kind, rng.Config{
		Value:     mean,
		Min:       minValue,
		Max:       maxValue,
		Increment: increment,
		Mean:      mean,
		Variance:  variance,
		Bound:     bound,
		Mu:        mu,
		Sigma:     sigma,
		Scale:     scale,
		Shape:     shape,
		N:         zipfN,
		Alpha:     zipfAlpha,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to construct stream")
	}

	return stream, nil
}

func createLogger(level string) *zap.Logger {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zap.InfoLevel)
	}

	out, err := utils.CreateFile(logFile, false, os.Stderr)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderCfg.EncodeCaller = nil

	ws, ok := out.(zapcore.WriteSyncer)
	if !ok {
		ws = zapcore.AddSync(out)
	}

	return zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(ws),
		lvl,
	))
}
