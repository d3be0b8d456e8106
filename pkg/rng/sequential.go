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

// Sequential ramps from Min towards Max by Increment per draw, wrapping
// back to Min once the next value would reach Max. The stream is stateful,
// so unlike the stochastic kinds it is a pointer type.
type Sequential struct {
	Min       float64
	Max       float64
	Increment float64

	current float64
}

func NewSequential(minVal, maxVal, increment float64) *Sequential {
	if increment == 0 {
		increment = 1
	}

	return &Sequential{
		Min:       minVal,
		Max:       maxVal,
		Increment: increment,
		current:   minVal,
	}
}

func (s *Sequential) Kind() Kind {
	return KindSequential
}

func (s *Sequential) Value() float64 {
	v := s.current

	s.current += s.Increment
	if s.current >= s.Max {
		s.current = s.Min
	}

	return v
}

func (s *Sequential) Integer() uint64 {
	return clampUint64(s.Value())
}
