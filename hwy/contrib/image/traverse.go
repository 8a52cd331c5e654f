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
	"iter"

	"github.com/ajroetker/go-stackblur/hwy"
)

// Axis selects the direction of a traversal.
type Axis int

const (
	// Horizontal walks the image row by row; each line is a row.
	Horizontal Axis = iota

	// Vertical walks the image column by column; each line is a column.
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Line is a strided one-dimensional view of an image: a row or a column.
// It reads and writes the image's storage directly.
type Line[T any] struct {
	data   []T
	offset int
	step   int
	n      int
}

// Len returns the number of pixels in the line.
func (l Line[T]) Len() int {
	return l.n
}

// At returns the i-th pixel of the line.
func (l Line[T]) At(i int) T {
	return l.data[l.offset+i*l.step]
}

// Set stores v as the i-th pixel of the line.
func (l Line[T]) Set(i int, v T) {
	l.data[l.offset+i*l.step] = v
}

// Values yields the pixels of the line in order. Each pixel is read when
// it is requested, so a consumer may overwrite pixels it has already
// received.
func (l Line[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range l.n {
			if !yield(l.data[l.offset+i*l.step]) {
				return
			}
		}
	}
}

// lineGeometry returns, for the given axis, the number of lines, the
// number of pixels per line, the distance between consecutive pixels of a
// line and the distance between adjacent lines.
func (img *Image[T]) lineGeometry(axis Axis) (count, n, step, lineStep int) {
	if axis == Vertical {
		return img.width, img.height, img.stride, 1
	}
	return img.height, img.width, 1, img.stride
}

// Lines yields every row (Horizontal) or every column (Vertical) of img.
func (img *Image[T]) Lines(axis Axis) iter.Seq[Line[T]] {
	count, n, step, lineStep := img.lineGeometry(axis)
	return func(yield func(Line[T]) bool) {
		if img.data == nil {
			return
		}
		for k := range count {
			if !yield(Line[T]{data: img.data, offset: k * lineStep, step: step, n: n}) {
				return
			}
		}
	}
}

// Band is a group of adjacent, parallel lines walked in lockstep: element i
// of a band is the i-th pixel of each of its lines. A horizontal band is a
// stack of rows; a vertical band is a strip of columns.
type Band[T any] struct {
	data     []T
	offset   int
	step     int
	lineStep int
	width    int
	n        int
}

// Width returns the number of lines in the band.
func (b Band[T]) Width() int {
	return b.width
}

// Len returns the number of pixels per line.
func (b Band[T]) Len() int {
	return b.n
}

// At returns pixel i of line k.
func (b Band[T]) At(k, i int) T {
	return b.data[b.offset+k*b.lineStep+i*b.step]
}

// Set stores v as pixel i of line k.
func (b Band[T]) Set(k, i int, v T) {
	b.data[b.offset+k*b.lineStep+i*b.step] = v
}

// Gather copies pixel i of every line into dst, which must hold at least
// Width elements.
func (b Band[T]) Gather(i int, dst []T) {
	base := b.offset + i*b.step
	for k := range b.width {
		dst[k] = b.data[base+k*b.lineStep]
	}
}

// Scatter stores src[k] as pixel i of line k, for every line of the band.
func (b Band[T]) Scatter(i int, src []T) {
	base := b.offset + i*b.step
	for k := range b.width {
		b.data[base+k*b.lineStep] = src[k]
	}
}

// Line returns line k of the band.
func (b Band[T]) Line(k int) Line[T] {
	return Line[T]{data: b.data, offset: b.offset + k*b.lineStep, step: b.step, n: b.n}
}

// Bands partitions the lines of img along axis into bands of exactly lanes
// lines, followed by one single-line band for each remaining line. Bands
// never overlap, so each pixel belongs to exactly one band per axis.
func (img *Image[T]) Bands(axis Axis, lanes int) iter.Seq[Band[T]] {
	count, n, step, lineStep := img.lineGeometry(axis)
	lanes = max(lanes, 1)
	return func(yield func(Band[T]) bool) {
		if img.data == nil {
			return
		}
		stopped := false
		emit := func(first, width int) {
			if stopped {
				return
			}
			stopped = !yield(Band[T]{
				data:     img.data,
				offset:   first * lineStep,
				step:     step,
				lineStep: lineStep,
				width:    width,
				n:        n,
			})
		}
		hwy.ProcessWithTail(count, lanes,
			func(offset int) { emit(offset, lanes) },
			func(offset int) { emit(offset, 1) },
		)
	}
}
