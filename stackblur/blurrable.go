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

// Package stackblur implements Stackblur, a fast approximation of Gaussian
// blur that produces a triangular weighted moving average in one pass.
//
// The algorithm here keeps radius*2+2 values of state rather than the
// classic radius*2+1, and pads each line by repeating its first and last
// pixel, so edges never bleed towards black.
//
// # Streaming
//
// StackBlur is a pull iterator that wraps any source of Blurrable values
// and yields the blurred values, one output per input, in order:
//
//	ops := stackblur.NewOps[color.BlurU32](0)
//	blur := stackblur.New(next, 3, ops)
//	for v, ok := blur.Next(); ok; v, ok = blur.Next() {
//	    // ...
//	}
//
// Seq adapts the same engine to range-over-func sequences.
//
// # Images
//
// Blur and SIMDBlur run the engine over every row and then every column of
// an image.Image, converting pixels to Blurrable values and back with
// caller-supplied functions. BlurARGB and SIMDBlurARGB do the same for
// packed 0xAARRGGBB pixels:
//
//	img := image.FromSlice(pixels, width, height, width)
//	stackblur.SIMDBlurARGB[[8]uint32](img, 16)
//
// Accumulation uses wrapping 32-bit arithmetic. Radii up to SafeRadius
// are exact for 8-bit channels; larger radii wrap silently.
package stackblur

// Blurrable is the arithmetic a value needs to be blurred by StackBlur.
// Any type with these methods qualifies.
//
// Implementations must use wrapping (or signed) arithmetic and should be
// much wider than the pixel format they represent, as values are
// multiplied by up to (radius+1)^2 before being divided. They should be
// cheap to copy: the engine passes them by value, and the zero value of T
// is the additive identity.
type Blurrable[T any] interface {
	// Add returns the sum of the receiver and o.
	Add(o T) T

	// Sub returns the receiver minus o.
	Sub(o T) T

	// Mul returns the receiver scaled by an element count.
	Mul(n int) T

	// Div returns the receiver divided by an element count, truncating.
	Div(n int) T
}

// SafeRadius is the largest radius for which 8-bit channels accumulated in
// 32 bits cannot overflow: 255 * (SafeRadius+1)^2 < 2^32.
const SafeRadius = 4096
