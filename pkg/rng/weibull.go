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

type Weibull struct {
	Src   rand.Source
	Scale float64
	Shape float64
	Bound float64
}

func (w Weibull) Kind() Kind {
	return KindWeibull
}

func (w Weibull) Value() float64 {
	d := distuv.Weibull{
		Lambda: w.Scale,
		K:      w.Shape,
		Src:    w.Src,
	}

	for {
		v := d.Rand()
		if w.Bound <= 0 || v <= w.Bound {
			return v
		}
	}
}

func (w Weibull) Integer() uint64 {
	return clampUint64(w.Value())
}
