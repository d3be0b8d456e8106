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

// Package rng provides configured random-variable streams. A stream is
// constructed once with its distribution parameters and then queried for
// independent scalar draws.
package rng

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindConstant    Kind = "constant"
	KindSequential  Kind = "sequential"
	KindUniform     Kind = "uniform"
	KindExponential Kind = "exponential"
	KindPareto      Kind = "pareto"
	KindWeibull     Kind = "weibull"
	KindNormal      Kind = "normal"
	KindLogNormal   Kind = "lognormal"
	KindZipf        Kind = "zipf"
)

// Stream is a handle on a configured probability distribution.
type Stream interface {
	// Value returns the next independent draw.
	Value() float64
	// Integer returns the next draw truncated to a non-negative integer.
	Integer() uint64
	Kind() Kind
}

// Config carries the union of distribution parameters understood by New.
// Only the fields relevant to the requested kind are read.
type Config struct {
	// Source overrides the seed-managed source. Nil means a fresh
	// per-stream source from the seed manager.
	Source rand.Source

	Value     float64
	Min       float64
	Max       float64
	Increment float64
	Mean      float64
	Variance  float64
	Bound     float64
	Mu        float64
	Sigma     float64
	Scale     float64
	Shape     float64
	N         uint64
	Alpha     float64
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindConstant, KindSequential, KindUniform, KindExponential,
		KindPareto, KindWeibull, KindNormal, KindLogNormal, KindZipf:
		return k, nil
	default:
		return "", errors.Errorf("unsupported distribution: %s", s)
	}
}

// New builds a stream of the given kind. Unless cfg.Source is set, the
// stream draws from the next seed-managed substream, so construction order
// matters for reproducibility.
func New(kind Kind, cfg Config) (Stream, error) {
	// Deterministic kinds never consume a substream, so the source is
	// resolved per stochastic case.
	src := func() rand.Source {
		if cfg.Source != nil {
			return cfg.Source
		}
		return NextSource()
	}

	switch kind {
	case KindConstant:
		return Constant{Val: cfg.Value}, nil
	case KindSequential:
		return NewSequential(cfg.Min, cfg.Max, cfg.Increment), nil
	case KindUniform:
		return Uniform{Src: src(), Min: cfg.Min, Max: cfg.Max}, nil
	case KindExponential:
		return Exponential{Src: src(), Mean: cfg.Mean, Bound: cfg.Bound}, nil
	case KindPareto:
		return Pareto{Src: src(), Scale: cfg.Scale, Shape: cfg.Shape, Bound: cfg.Bound}, nil
	case KindWeibull:
		return Weibull{Src: src(), Scale: cfg.Scale, Shape: cfg.Shape, Bound: cfg.Bound}, nil
	case KindNormal:
		if cfg.Variance < 0 {
			return nil, errors.Errorf("normal variance must be non-negative, got %f", cfg.Variance)
		}
		return Normal{Src: src(), Mean: cfg.Mean, Variance: cfg.Variance, Bound: cfg.Bound}, nil
	case KindLogNormal:
		return LogNormal{Src: src(), Mu: cfg.Mu, Sigma: cfg.Sigma}, nil
	case KindZipf:
		z, err := NewZipf(src(), cfg.N, cfg.Alpha)
		if err != nil {
			return nil, err
		}
		return z, nil
	default:
		return nil, errors.Errorf("unsupported distribution: %s", kind)
	}
}

// clampUint64 is the shared Value-to-Integer conversion. Converting a
// negative float64 straight to uint64 is platform dependent, so negative
// draws collapse to zero instead.
func clampUint64(v float64) uint64 {
	if v <= 0 {
		return 0
	}
	return uint64(v)
}
