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

// Package hwy detects the SIMD target of the running CPU and provides the
// lane-width vocabulary shared by the blur packages.
//
// Lane widths are fixed at compile time by array types: a lane-packed
// accumulator over [8]uint32 always carries 8 lanes. The runtime dispatch
// information (CurrentLevel, CurrentWidth, MaxLanes) is only used to pick
// which compile-time width to instantiate.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-stackblur/hwy"
//
//	fmt.Println(hwy.CurrentName(), hwy.MaxLanes[uint32]())
package hwy

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Integers | ~float32 | ~float64
}

// LaneArray is a constraint for fixed-width lane groups of T.
// The supported widths cover 128-bit through 1024-bit vectors of 32-bit
// lanes; the width of a value is len(a).
type LaneArray[T any] interface {
	~[4]T | ~[8]T | ~[16]T | ~[32]T
}

// NumLanes returns the compile-time lane count of the array type A.
func NumLanes[T any, A LaneArray[T]]() int {
	var a A
	return len(a)
}
