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

package stackblur

import (
	"github.com/ajroetker/go-stackblur/hwy"
	"github.com/ajroetker/go-stackblur/hwy/contrib/image"
	"github.com/ajroetker/go-stackblur/stackblur/color"
)

// BlurARGB blurs an image of packed 0xAARRGGBB pixels in place.
//
// This is Blur with the conversions from package color pre-filled. Results
// are exact for radius <= SafeRadius; larger radii may overflow.
func BlurARGB(img *image.Image[uint32], radius int) {
	Blur(img, radius, color.FromARGB, color.ToARGB)
}

// SIMDBlurARGB blurs an image of packed 0xAARRGGBB pixels in place,
// len(A) lines at a time. Its output is identical to BlurARGB.
//
// This is SIMDBlur with the conversions from package color pre-filled.
// Results are exact for radius <= SafeRadius; larger radii may overflow.
func SIMDBlurARGB[A hwy.LaneArray[uint32]](img *image.Image[uint32], radius int) {
	SIMDBlur(img, radius,
		color.FromARGBLanes[A], color.ToARGBLanes[A],
		color.FromARGB, color.ToARGB,
	)
}

// BlurARGBAuto is SIMDBlurARGB with the lane count chosen from the SIMD
// width detected at startup. With HWY_NO_SIMD set, it runs BlurARGB.
func BlurARGBAuto(img *image.Image[uint32], radius int) {
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		BlurARGB(img, radius)
		return
	}
	switch lanes := hwy.MaxLanes[uint32](); {
	case lanes >= 16:
		SIMDBlurARGB[[16]uint32](img, radius)
	case lanes >= 8:
		SIMDBlurARGB[[8]uint32](img, radius)
	default:
		SIMDBlurARGB[[4]uint32](img, radius)
	}
}
