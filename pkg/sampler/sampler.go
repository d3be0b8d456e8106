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

// Package sampler collects a fixed-size sequence of draws from a stream.
package sampler

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/netsim-tools/sample-rng-plot/pkg/rng"
)

type Sampler struct {
	stream rng.Stream
	logger *zap.Logger
	count  int
	draws  atomic.Int64
}

func New(stream rng.Stream, count int, logger *zap.Logger) *Sampler {
	return &Sampler{
		stream: stream,
		count:  count,
		logger: logger,
	}
}

// Sample draws exactly the configured number of values, in call order.
// The values are returned untouched; a canceled context is the only way
// the loop ends early, and then no partial sequence is returned.
func (s *Sampler) Sample(ctx context.Context) ([]float64, error) {
	if s.count <= 0 {
		return nil, errors.Errorf("sample count must be positive, got %d", s.count)
	}

	out := make([]float64, 0, s.count)

	for range s.count {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "sampling interrupted")
		}

		out = append(out, s.stream.Value())
		s.draws.Inc()
	}

	s.logger.Debug("sampling finished",
		zap.String("distribution", string(s.stream.Kind())),
		zap.Int("count", len(out)),
		zap.Float64("mean", stat.Mean(out, nil)),
		zap.Float64("stddev", stat.StdDev(out, nil)),
	)

	return out, nil
}

// Draws reports the total number of values pulled from the stream across
// all Sample calls.
func (s *Sampler) Draws() int64 {
	return s.draws.Load()
}
