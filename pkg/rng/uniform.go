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

type Uniform struct {
	Src rand.Source
	Min float64
	Max float64
}

func (u Uniform) Kind() Kind {
	return KindUniform
}

// Value draws uniformly from [Min, Max). Max <= Min degenerates to Min.
func (u Uniform) Value() float64 {
	if u.Max <= u.Min {
		return u.Min
	}

	d := distuv.Uniform{
		Min: u.Min,
		Max: u.Max,
		Src: u.Src,
	}

	return d.Rand()
}

func (u Uniform) Integer() uint64 {
	return clampUint64(u.Value())
}
