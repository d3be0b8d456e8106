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

// Pareto is a type-I Pareto stream with scale (minimum value) and shape
// (tail index) parameters.
type Pareto struct {
	Src   rand.Source
	Scale float64
	Shape float64
	Bound float64
}

func (p Pareto) Kind() Kind {
	return KindPareto
}

func (p Pareto) Value() float64 {
	d := distuv.Pareto{
		Xm:    p.Scale,
		Alpha: p.Shape,
		Src:   p.Src,
	}

	for {
		v := d.Rand()
		if p.Bound <= 0 || v <= p.Bound {
			return v
		}
	}
}

func (p Pareto) Integer() uint64 {
	return clampUint64(p.Value())
}
