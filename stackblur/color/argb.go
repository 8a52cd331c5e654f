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

import (
	stdcolor "image/color"

	"github.com/ajroetker/go-stackblur/hwy"
)

// Argb holds one accumulator per channel of a 0xAARRGGBB pixel. The field
// order matches the big-endian byte order of the packed value.
//
// Argb[T] satisfies Channel (and therefore stackblur.Blurrable) whenever T
// does: every operation applies to the four channels independently.
type Argb[T Channel[T]] struct {
	A, R, G, B T
}

// Add returns the channel-wise sum.
func (c Argb[T]) Add(o Argb[T]) Argb[T] {
	return Argb[T]{c.A.Add(o.A), c.R.Add(o.R), c.G.Add(o.G), c.B.Add(o.B)}
}

// Sub returns the channel-wise difference.
func (c Argb[T]) Sub(o Argb[T]) Argb[T] {
	return Argb[T]{c.A.Sub(o.A), c.R.Sub(o.R), c.G.Sub(o.G), c.B.Sub(o.B)}
}

// Mul scales every channel by n.
func (c Argb[T]) Mul(n int) Argb[T] {
	return Argb[T]{c.A.Mul(n), c.R.Mul(n), c.G.Mul(n), c.B.Mul(n)}
}

// Div divides every channel by n.
func (c Argb[T]) Div(n int) Argb[T] {
	return Argb[T]{c.A.Div(n), c.R.Div(n), c.G.Div(n), c.B.Div(n)}
}

// FromARGB splits a packed 0xAARRGGBB pixel into channel accumulators.
func FromARGB(argb uint32) Argb[BlurU32] {
	return Argb[BlurU32]{
		A: BlurU32(argb >> 24),
		R: BlurU32(argb >> 16 & 0xff),
		G: BlurU32(argb >> 8 & 0xff),
		B: BlurU32(argb & 0xff),
	}
}

// ToARGB packs channel accumulators into a 0xAARRGGBB pixel, keeping the
// low 8 bits of each channel.
func ToARGB(c Argb[BlurU32]) uint32 {
	return uint32(uint8(c.A))<<24 | uint32(uint8(c.R))<<16 | uint32(uint8(c.G))<<8 | uint32(uint8(c.B))
}

// FromARGBLanes transposes len(A) packed pixels into four lane vectors,
// one per channel, with pixel i in lane i.
func FromARGBLanes[A hwy.LaneArray[uint32]](px A) Argb[U32x[A]] {
	var c Argb[U32x[A]]
	for i := 0; i < len(px); i++ {
		p := px[i]
		c.A.v[i] = p >> 24
		c.R.v[i] = p >> 16 & 0xff
		c.G.v[i] = p >> 8 & 0xff
		c.B.v[i] = p & 0xff
	}
	return c
}

// ToARGBLanes is the inverse of FromARGBLanes. Each lane of each channel is
// truncated to 8 bits before packing.
func ToARGBLanes[A hwy.LaneArray[uint32]](c Argb[U32x[A]]) A {
	var px A
	for i := 0; i < len(px); i++ {
		px[i] = uint32(uint8(c.A.v[i]))<<24 |
			uint32(uint8(c.R.v[i]))<<16 |
			uint32(uint8(c.G.v[i]))<<8 |
			uint32(uint8(c.B.v[i]))
	}
	return px
}

// FromNRGBA packs a non-premultiplied color as 0xAARRGGBB.
func FromNRGBA(c stdcolor.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ToNRGBA unpacks a 0xAARRGGBB pixel.
func ToNRGBA(argb uint32) stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}
