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

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/netsim-tools/sample-rng-plot/pkg/histplot"
	"github.com/netsim-tools/sample-rng-plot/pkg/rng"
	"github.com/netsim-tools/sample-rng-plot/pkg/sampler"
)

type pipelineConfig struct {
	output   string
	samples  int
	bins     int
	blocking bool
	display  bool
}

// renderHist is swappable in tests to observe the values handed to the
// plotting stage.
var renderHist = histplot.Render

// runPipeline is the whole program: sample, render, save, display.
func runPipeline(
	ctx context.Context,
	cfg pipelineConfig,
	stream rng.Stream,
	display histplot.Displayer,
	logger *zap.Logger,
) error {
	// The viewer is the pipeline's one external dependency; a missing
	// binary must abort before any draws or rendering happen.
	if cfg.display {
		if err := display.Check(); err != nil {
			return err
		}
	}

	values, err := sampler.New(stream, cfg.samples, logger).Sample(ctx)
	if err != nil {
		return err
	}

	pcfg := histplot.DefaultConfig()
	pcfg.Bins = cfg.bins

	figure, err := renderHist(values, pcfg)
	if err != nil {
		return errors.Wrap(err, "failed to render histogram")
	}

	if err = histplot.Save(figure, cfg.output, pcfg); err != nil {
		return err
	}

	logger.Info("histogram written",
		zap.String("path", cfg.output),
		zap.Int("samples", len(values)),
	)

	if !cfg.display {
		return nil
	}

	return display.Display(ctx, cfg.output, cfg.blocking)
}
