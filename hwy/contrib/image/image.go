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

package image

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-stackblur/hwy"
)

// Image is a 2D array of pixels of any element type with SIMD-aligned rows.
// Each row is padded to a multiple of the SIMD vector width when the image
// owns its storage. Images created with FromSlice or SubImage share storage
// with their source and use its stride.
type Image[T any] struct {
	data        []T
	width       int
	height      int
	stride      int // elements per row (includes padding)
	bytesPerRow int
}

// NewImage creates a new image with the specified dimensions.
// Rows are aligned to the SIMD vector width for optimal performance.
func NewImage[T any](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	// Calculate stride (elements per row, rounded up to vector width)
	stride := hwy.AlignedSize(width, hwy.ElemLanes[T]())

	return &Image[T]{
		data:        make([]T, stride*height),
		width:       width,
		height:      height,
		stride:      stride,
		bytesPerRow: stride * elemSize[T](),
	}
}

// FromSlice wraps an existing buffer as a width x height image whose rows
// start stride elements apart. The image aliases data; writes through
// the image are visible in data.
//
// FromSlice panics if stride < width or data is too short to hold the
// last row.
func FromSlice[T any](data []T, width, height, stride int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}
	if stride < width {
		panic(fmt.Sprintf("image: stride %d smaller than width %d", stride, width))
	}
	if need := (height-1)*stride + width; len(data) < need {
		panic(fmt.Sprintf("image: buffer of %d elements too short for %dx%d with stride %d (need %d)",
			len(data), width, height, stride, need))
	}
	return &Image[T]{
		data:        data,
		width:       width,
		height:      height,
		stride:      stride,
		bytesPerRow: stride * elemSize[T](),
	}
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// BytesPerRow returns the number of bytes per row.
func (img *Image[T]) BytesPerRow() int {
	return img.bytesPerRow
}

// Row returns a mutable slice for the specified row.
// The slice includes padding elements beyond the image width when the
// backing buffer has them. These can be safely read/written but are not
// part of the image.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start:min(start+img.stride, len(img.data))]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at position (x, y).
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at position (x, y).
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// SameSize returns true if both images have the same dimensions.
func SameSize[T, U any](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Clone creates a deep copy of the image with its own aligned storage.
func (img *Image[T]) Clone() *Image[T] {
	clone := NewImage[T](img.width, img.height)
	for y := range img.height {
		copy(clone.RowSlice(y), img.RowSlice(y))
	}
	return clone
}

// Clear sets all pixels to zero.
func (img *Image[T]) Clear() {
	var zero T
	img.Fill(zero)
}

// Fill sets all pixels to the specified value.
func (img *Image[T]) Fill(value T) {
	for y := range img.height {
		row := img.RowSlice(y)
		for i := range row {
			row[i] = value
		}
	}
}

// SubImage returns a view of the part of img inside r. The view shares
// storage with img. An r that does not overlap img yields an empty image.
func (img *Image[T]) SubImage(r Rect) *Image[T] {
	r = r.Intersect(img.Bounds())
	if r.IsEmpty() {
		return &Image[T]{}
	}
	start := r.Y0*img.stride + r.X0
	return &Image[T]{
		data:        img.data[start:],
		width:       r.Width(),
		height:      r.Height(),
		stride:      img.stride,
		bytesPerRow: img.bytesPerRow,
	}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X0, other.X0)
	y0 := max(r.Y0, other.Y0)
	x1 := min(r.X1, other.X1)
	y1 := min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Bounds returns the bounding rectangle of the image.
func (img *Image[T]) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// Clamp returns index clamped to [0, size-1]. This is the edge handling
// the blur engine applies: out-of-range taps repeat the edge pixel.
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}
