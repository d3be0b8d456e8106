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

// LogNormal is parameterized by the mean and standard deviation of the
// underlying normal, not of the resulting distribution.
type LogNormal struct {
	Src   rand.Source
	Mu    float64
	Sigma float64
}

func (l LogNormal) Kind() Kind {
	return KindLogNormal
}

func (l LogNormal) Value() float64 {
	d := distuv.LogNormal{
		Mu:    l.Mu,
		Sigma: l.Sigma,
		Src:   l.Src,
	}

	return d.Rand()
}

func (l LogNormal) Integer() uint64 {
	return clampUint64(l.Value())
}
