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

// Ops is the sliding window StackBlur keeps between steps: a ring-buffer
// deque of blurrable values. It is owned by the caller so that one Ops can
// be reused across many lines. StackBlur clears it on start and only grows
// it when a larger radius needs more room.
type Ops[T any] struct {
	buf  []T // len(buf) is zero or a power of two
	head int
	n    int
}

// NewOps returns an empty deque with room for at least capacity values.
func NewOps[T any](capacity int) *Ops[T] {
	q := &Ops[T]{}
	q.Reserve(capacity)
	return q
}

// Len returns the number of values in the deque.
func (q *Ops[T]) Len() int {
	return q.n
}

// Cap returns the number of values the deque can hold without growing.
func (q *Ops[T]) Cap() int {
	return len(q.buf)
}

// Clear empties the deque, keeping its storage.
func (q *Ops[T]) Clear() {
	q.head = 0
	q.n = 0
}

// Reserve grows the deque so it can hold at least capacity values.
func (q *Ops[T]) Reserve(capacity int) {
	if capacity <= len(q.buf) {
		return
	}
	size := 8
	for size < capacity {
		size <<= 1
	}
	buf := make([]T, size)
	for i := range q.n {
		buf[i] = q.At(i)
	}
	q.buf = buf
	q.head = 0
}

// PushBack appends v at the back.
func (q *Ops[T]) PushBack(v T) {
	if q.n == len(q.buf) {
		q.Reserve(q.n + 1)
	}
	q.buf[(q.head+q.n)&(len(q.buf)-1)] = v
	q.n++
}

// PopFront removes and returns the front value. It panics on an empty deque.
func (q *Ops[T]) PopFront() T {
	if q.n == 0 {
		panic("stackblur: PopFront on empty Ops")
	}
	v := q.buf[q.head]
	q.head = (q.head + 1) & (len(q.buf) - 1)
	q.n--
	return v
}

// At returns the i-th value from the front.
func (q *Ops[T]) At(i int) T {
	return q.buf[(q.head+i)&(len(q.buf)-1)]
}
