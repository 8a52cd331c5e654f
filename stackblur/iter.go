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
	"iter"
)

// StackBlur is an iterator that blurs the values produced by a source.
//
// For input x and radius r, output i is
//
//	sum_{k=-r..r} (r+1-|k|) * x[clamp(i+k)] / (r+1)^2
//
// where clamp repeats the first and last input beyond the ends. The
// iterator reads the source exactly once, yields exactly one value per
// input in input order, and does constant work per value regardless of
// the radius.
//
// Output i is produced once input i+r has been read (or the source has
// ended), so a caller may overwrite input i with output i in place.
type StackBlur[T Blurrable[T]] struct {
	next   func() (T, bool)
	radius int
	dnom   int
	ops    *Ops[T]

	sum T // weighted sum for the current output
	out T // sum of the r+1 values at and after the current output
	in  T // sum of the r+1 values at and before the previous output

	index    int // index of the output the next step computes
	primed   bool
	draining bool
	drain    int // edge repeats left to feed after the source ends
	last     T
}

// New returns a StackBlur over the values returned by next, which reports
// false once the input is exhausted. next is not called again after that.
//
// ops is cleared and used as the sliding window; pass the same Ops to
// successive iterators to avoid reallocating it. New panics if radius is
// negative.
func New[T Blurrable[T]](next func() (T, bool), radius int, ops *Ops[T]) *StackBlur[T] {
	s := &StackBlur[T]{}
	s.Reset(next, radius, ops)
	return s
}

// NewFromSlice returns a StackBlur over the elements of values.
func NewFromSlice[T Blurrable[T]](values []T, radius int, ops *Ops[T]) *StackBlur[T] {
	i := 0
	return New(func() (T, bool) {
		if i == len(values) {
			var zero T
			return zero, false
		}
		v := values[i]
		i++
		return v, true
	}, radius, ops)
}

// Reset makes s blur a new source, as if freshly created by New.
func (s *StackBlur[T]) Reset(next func() (T, bool), radius int, ops *Ops[T]) {
	checkRadius(radius)
	if ops == nil {
		ops = NewOps[T](2*radius + 2)
	}
	*s = StackBlur[T]{
		next:   next,
		radius: radius,
		dnom:   (radius + 1) * (radius + 1),
		ops:    ops,
	}
	ops.Clear()
}

// Radius returns the blur radius.
func (s *StackBlur[T]) Radius() int {
	return s.radius
}

// Next returns the next blurred value. It reports false once every input
// has a corresponding output.
func (s *StackBlur[T]) Next() (T, bool) {
	for {
		x, ok := s.feed()
		if !ok {
			var zero T
			return zero, false
		}
		if v, emitted := s.step(x); emitted {
			return v, true
		}
	}
}

// feed returns the next value to push through the window: the source
// values, then radius repeats of the last one.
func (s *StackBlur[T]) feed() (T, bool) {
	if !s.draining {
		if x, ok := s.next(); ok {
			if !s.primed {
				s.prime(x)
			}
			s.last = x
			return x, true
		}
		s.draining = true
		s.next = nil
	}
	if s.drain > 0 {
		s.drain--
		return s.last, true
	}
	var zero T
	return zero, false
}

// prime fills the window as if x0 had been seen radius+1 times before the
// input starts, so the first outputs average over a full window.
func (s *StackBlur[T]) prime(x0 T) {
	r := s.radius
	s.ops.Clear()
	s.ops.Reserve(2*r + 2)
	for range 2*r + 1 {
		s.ops.PushBack(x0)
	}
	s.sum = x0.Mul(s.dnom)
	s.out = x0.Mul(r)
	s.in = x0.Mul(r + 1)
	s.index = -r
	s.drain = r
	s.primed = true
}

// step pushes x, the value r positions ahead of the current output, and
// computes that output. Outputs before index 0 belong to the padding and
// are not emitted.
func (s *StackBlur[T]) step(x T) (T, bool) {
	s.ops.PushBack(x)
	s.out = s.out.Add(x)
	s.sum = s.sum.Add(s.out).Sub(s.in)

	// The window now spans 2r+2 values; the current output sits at r+1.
	center := s.ops.At(s.radius + 1)
	s.out = s.out.Sub(center)
	s.in = s.in.Add(center).Sub(s.ops.PopFront())

	i := s.index
	s.index++
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.sum.Div(s.dnom), true
}

// Seq blurs the sequence in with the given radius. The returned sequence
// is lazy: it pulls from in as it is ranged over.
func Seq[T Blurrable[T]](in iter.Seq[T], radius int, ops *Ops[T]) iter.Seq[T] {
	checkRadius(radius)
	return func(yield func(T) bool) {
		next, stop := iter.Pull(in)
		defer stop()
		blur := New(next, radius, ops)
		for v, ok := blur.Next(); ok; v, ok = blur.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// BlurSlice blurs values in place.
func BlurSlice[T Blurrable[T]](values []T, radius int, ops *Ops[T]) {
	blur := NewFromSlice(values, radius, ops)
	for i := range values {
		values[i], _ = blur.Next()
	}
}

func checkRadius(radius int) {
	if radius < 0 {
		panic(fmt.Sprintf("stackblur: negative radius %d", radius))
	}
}
