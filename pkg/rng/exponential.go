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

	"gonum.org/v1/gonum/stat/distuv"
)

type Exponential struct {
	Src  rand.Source
	Mean float64
	// Bound caps draws at Bound by redrawing. Zero means unbounded.
	Bound float64
}

func (e Exponential) Kind() Kind {
	return KindExponential
}

func (e Exponential) Value() float64 {
	if e.Mean <= 0 {
		return 0
	}

	d := distuv.Exponential{
		Rate: 1 / e.Mean,
		Src:  e.Src,
	}

	for {
		v := d.Rand()
		if e.Bound <= 0 || v <= e.Bound {
			return v
		}
	}
}

func (e Exponential) Integer() uint64 {
	return clampUint64(e.Value())
}
