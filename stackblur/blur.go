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
	"fmt"

	"github.com/ajroetker/go-stackblur/hwy"
	"github.com/ajroetker/go-stackblur/hwy/contrib/image"
)

// Blur blurs img in place, treating each element as one pixel.
//
// toBlurrable and toPixel convert between the image's pixel type and the
// Blurrable values the engine accumulates. Rows are blurred first, then
// columns; every row is written before any column is read.
func Blur[P any, B Blurrable[B]](
	img *image.Image[P],
	radius int,
	toBlurrable func(P) B,
	toPixel func(B) P,
) {
	checkRadius(radius)
	ops := NewOps[B](2*radius + 2)
	var blur StackBlur[B]

	blurLines := func(axis image.Axis) {
		for line := range img.Lines(axis) {
			blurLine(&blur, line, radius, ops, toBlurrable, toPixel)
		}
	}

	// The vertical pass reads what the horizontal pass wrote, so the two
	// must not interleave.
	blurLines(image.Horizontal)
	blurLines(image.Vertical)
}

// SIMDBlur blurs img in place, processing len(PL) lines at a time.
//
// Each pass groups adjacent lines into bands of len(PL). A full band is
// blurred as one sequence of lane-packed values using toBlurrableLanes and
// toPixelLanes, where lane k holds the pixel of line k. Lines left over
// after the last full band are blurred one at a time with toBlurrable and
// toPixel. As with Blur, the horizontal pass completes before the vertical
// pass starts.
func SIMDBlur[P any, PL hwy.LaneArray[P], BV Blurrable[BV], BS Blurrable[BS]](
	img *image.Image[P],
	radius int,
	toBlurrableLanes func(PL) BV,
	toPixelLanes func(BV) PL,
	toBlurrable func(P) BS,
	toPixel func(BS) P,
) {
	checkRadius(radius)
	lanes := hwy.NumLanes[P, PL]()
	opsLanes := NewOps[BV](2*radius + 2)
	opsSingle := NewOps[BS](2*radius + 2)
	var blurLanes StackBlur[BV]
	var blurSingle StackBlur[BS]

	blurBands := func(axis image.Axis) {
		for band := range img.Bands(axis, lanes) {
			switch band.Width() {
			case lanes:
				blurBand(&blurLanes, band, radius, opsLanes, toBlurrableLanes, toPixelLanes)
			case 1:
				blurLine(&blurSingle, band.Line(0), radius, opsSingle, toBlurrable, toPixel)
			default:
				panic(fmt.Sprintf("stackblur: unreachable: %s band of %d lines with %d lanes",
					axis, band.Width(), lanes))
			}
		}
	}

	blurBands(image.Horizontal)
	blurBands(image.Vertical)
}

// blurLine blurs one line in place through blur, which is reset for it.
func blurLine[P any, B Blurrable[B]](
	blur *StackBlur[B],
	line image.Line[P],
	radius int,
	ops *Ops[B],
	toBlurrable func(P) B,
	toPixel func(B) P,
) {
	n := line.Len()
	read := 0
	blur.Reset(func() (B, bool) {
		if read == n {
			var zero B
			return zero, false
		}
		v := toBlurrable(line.At(read))
		read++
		return v, true
	}, radius, ops)

	for i := range n {
		v, _ := blur.Next()
		line.Set(i, toPixel(v))
	}
}

// blurBand blurs the lines of a full band together, one lane per line.
func blurBand[P any, PL hwy.LaneArray[P], B Blurrable[B]](
	blur *StackBlur[B],
	band image.Band[P],
	radius int,
	ops *Ops[B],
	toBlurrable func(PL) B,
	toPixel func(B) PL,
) {
	n := band.Len()
	read := 0
	blur.Reset(func() (B, bool) {
		if read == n {
			var zero B
			return zero, false
		}
		var px PL
		for k := 0; k < len(px); k++ {
			px[k] = band.At(k, read)
		}
		read++
		return toBlurrable(px), true
	}, radius, ops)

	for i := range n {
		v, _ := blur.Next()
		px := toPixel(v)
		for k := 0; k < len(px); k++ {
			band.Set(k, i, px[k])
		}
	}
}
