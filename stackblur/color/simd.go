// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package color

import "github.com/ajroetker/go-stackblur/hwy"

// U32x is a lane-packed accumulator: len(A) independent uint32 values
// carried through identical arithmetic. The lane count is fixed by A.
type U32x[A hwy.LaneArray[uint32]] struct {
	v A
}

// LoadU32x returns a vector holding the lanes of a.
func LoadU32x[A hwy.LaneArray[uint32]](a A) U32x[A] {
	return U32x[A]{v: a}
}

// SplatU32x returns a vector with every lane set to x.
func SplatU32x[A hwy.LaneArray[uint32]](x uint32) U32x[A] {
	var u U32x[A]
	for i := 0; i < len(u.v); i++ {
		u.v[i] = x
	}
	return u
}

// Lanes returns the number of lanes in the vector.
func (u U32x[A]) Lanes() int {
	return len(u.v)
}

// Array returns the lanes as an array.
func (u U32x[A]) Array() A {
	return u.v
}

// Lane returns lane i.
func (u U32x[A]) Lane(i int) uint32 {
	return u.v[i]
}

// Add returns the lane-wise wrapping sum u + o.
func (u U32x[A]) Add(o U32x[A]) U32x[A] {
	for i := 0; i < len(u.v); i++ {
		u.v[i] += o.v[i]
	}
	return u
}

// Sub returns the lane-wise wrapping difference u - o.
func (u U32x[A]) Sub(o U32x[A]) U32x[A] {
	for i := 0; i < len(u.v); i++ {
		u.v[i] -= o.v[i]
	}
	return u
}

// Mul broadcasts n to every lane and multiplies lane-wise, wrapping.
func (u U32x[A]) Mul(n int) U32x[A] {
	m := uint32(n)
	for i := 0; i < len(u.v); i++ {
		u.v[i] *= m
	}
	return u
}

// Div divides each lane by n using ordinary integer division. Blur
// normalization never overflows here, so there is no wrapping variant.
func (u U32x[A]) Div(n int) U32x[A] {
	d := uint64(n)
	for i := 0; i < len(u.v); i++ {
		u.v[i] = uint32(uint64(u.v[i]) / d)
	}
	return u
}
