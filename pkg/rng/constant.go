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

// Constant returns the same value on every draw. Useful as a deterministic
// stand-in for a stochastic stream.
type Constant struct {
	Val float64
}

func (c Constant) Kind() Kind {
	return KindConstant
}

func (c Constant) Value() float64 {
	return c.Val
}

func (c Constant) Integer() uint64 {
	return clampUint64(c.Val)
}
