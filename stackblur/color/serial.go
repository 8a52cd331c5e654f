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

// Package color provides the accumulator types the blur engine runs on and
// the adapter between packed 0xAARRGGBB pixels and per-channel
// accumulators.
//
// BlurU32 accumulates one channel of one pixel. U32x accumulates one
// channel of N pixels at once, one pixel per lane, with N fixed by the
// array type ([4]uint32, [8]uint32, [16]uint32 or [32]uint32). Argb groups
// four accumulators, one per channel, and forwards arithmetic to each of
// them, so a whole pixel (or a whole group of N pixels) blurs as a single
// value.
//
// All arithmetic wraps on overflow. Eight-bit channels summed in 32-bit
// accumulators stay exact for blur radii up to about 4096; larger radii
// wrap silently.
package color

// Channel is the arithmetic an Argb channel must support. It has the same
// method set as stackblur.Blurrable.
type Channel[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(n int) T
	Div(n int) T
}

// BlurU32 is a wrapping 32-bit unsigned accumulator.
type BlurU32 uint32

// Add returns b + o, wrapping on overflow.
func (b BlurU32) Add(o BlurU32) BlurU32 {
	return b + o
}

// Sub returns b - o, wrapping on underflow.
func (b BlurU32) Sub(o BlurU32) BlurU32 {
	return b - o
}

// Mul returns b * n, wrapping on overflow. n is truncated to 32 bits.
func (b BlurU32) Mul(n int) BlurU32 {
	return b * BlurU32(uint32(n))
}

// Div returns b / n, truncating. n is truncated to 32 bits.
func (b BlurU32) Div(n int) BlurU32 {
	return b / BlurU32(uint32(n))
}
