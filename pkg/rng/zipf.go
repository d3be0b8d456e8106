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

package rng

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Zipf draws integers in [1, N] with rank-frequency exponent Alpha.
type Zipf struct {
	zipf  *rand.Zipf
	N     uint64
	Alpha float64
}

func NewZipf(src rand.Source, n uint64, alpha float64) (*Zipf, error) {
	// rand.NewZipf requires s > 1.
	if alpha <= 1 {
		return nil, errors.Errorf("zipf alpha must be greater than 1, got %f", alpha)
	}

	z := &Zipf{N: n, Alpha: alpha}
	if n > 0 {
		z.zipf = rand.NewZipf(rand.New(src), alpha, 1, n-1)
	}

	return z, nil
}

func (z *Zipf) Kind() Kind {
	return KindZipf
}

func (z *Zipf) Value() float64 {
	return float64(z.Integer())
}

func (z *Zipf) Integer() uint64 {
	if z.zipf == nil {
		return 0
	}

	return z.zipf.Uint64() + 1
}
