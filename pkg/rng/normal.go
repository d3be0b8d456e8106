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
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a gaussian stream configured by mean and variance. Variance is
// the user-facing attribute; the standard deviation is derived.
type Normal struct {
	Src      rand.Source
	Mean     float64
	Variance float64
	// Bound caps draws to [Mean-Bound, Mean+Bound] by redrawing.
	// Zero means unbounded.
	Bound float64
}

func (n Normal) Kind() Kind {
	return KindNormal
}

func (n Normal) Value() float64 {
	d := distuv.Normal{
		Mu:    n.Mean,
		Sigma: math.Sqrt(n.Variance),
		Src:   n.Src,
	}

	for {
		v := d.Rand()
		if n.Bound <= 0 || math.Abs(v-n.Mean) <= n.Bound {
			return v
		}
	}
}

func (n Normal) Integer() uint64 {
	return clampUint64(n.Value())
}
