// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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

// Package tinydeque provides double-ended queues backed by ring buffers.
//
// ArrayDeque has a fixed capacity, allocates its buffer exactly once at
// construction and rejects pushes beyond capacity. TinyDeque starts on the
// same fixed-capacity ring and migrates to a growable heap ring the first
// time a push would exceed it.
//
// The deques are not safe for concurrent use.
package tinydeque

import (
	"github.com/maypok86/tinydeque/internal/ring"
)

// ArrayDeque is a double-ended queue over a buffer of fixed capacity.
//
// The buffer is allocated once by NewArrayDeque; no operation allocates
// afterwards. Pushes on a full deque fail with ErrCapacityExceeded and leave
// the deque unchanged.
type ArrayDeque[T any] struct {
	buf  []T
	head int
	size int
}

// NewArrayDeque creates an empty ArrayDeque with the given capacity.
// It panics if capacity is not positive.
func NewArrayDeque[T any](capacity int) *ArrayDeque[T] {
	if capacity < 1 {
		panic("capacity must be positive number")
	}
	return &ArrayDeque[T]{
		buf: make([]T, capacity),
	}
}

// Len returns the number of elements in the deque.
func (d *ArrayDeque[T]) Len() int {
	return d.size
}

// Cap returns the capacity of the deque.
func (d *ArrayDeque[T]) Cap() int {
	return len(d.buf)
}

// IsEmpty reports whether the deque contains no elements.
func (d *ArrayDeque[T]) IsEmpty() bool {
	return d.size == 0
}

// IsFull reports whether the deque is at capacity.
func (d *ArrayDeque[T]) IsFull() bool {
	return d.size == len(d.buf)
}

// PushBack appends item to the back of the deque.
// It returns ErrCapacityExceeded if the deque is full.
func (d *ArrayDeque[T]) PushBack(item T) error {
	if d.size == len(d.buf) {
		return ErrCapacityExceeded
	}
	d.buf[ring.Index(d.head, d.size, len(d.buf))] = item
	d.size++
	return nil
}

// PushFront prepends item to the front of the deque.
// It returns ErrCapacityExceeded if the deque is full.
func (d *ArrayDeque[T]) PushFront(item T) error {
	if d.size == len(d.buf) {
		return ErrCapacityExceeded
	}
	d.head = ring.Sub(d.head, 1, len(d.buf))
	d.buf[d.head] = item
	d.size++
	return nil
}

// PopFront removes and returns the element at the front of the deque.
// It returns ErrEmptyDeque if the deque is empty.
func (d *ArrayDeque[T]) PopFront() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmptyDeque
	}
	item := d.buf[d.head]
	// zero the slot so the buffer doesn't retain the value
	d.buf[d.head] = zero
	d.head = ring.Add(d.head, 1, len(d.buf))
	d.size--
	return item, nil
}

// PopBack removes and returns the element at the back of the deque.
// It returns ErrEmptyDeque if the deque is empty.
func (d *ArrayDeque[T]) PopBack() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmptyDeque
	}
	i := ring.Index(d.head, d.size-1, len(d.buf))
	item := d.buf[i]
	d.buf[i] = zero
	d.size--
	return item, nil
}

// Front returns the element at the front of the deque without removing it.
// It returns ErrEmptyDeque if the deque is empty.
func (d *ArrayDeque[T]) Front() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrEmptyDeque
	}
	return d.buf[d.head], nil
}

// Back returns the element at the back of the deque without removing it.
// It returns ErrEmptyDeque if the deque is empty.
func (d *ArrayDeque[T]) Back() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, ErrEmptyDeque
	}
	return d.buf[ring.Index(d.head, d.size-1, len(d.buf))], nil
}

// Get returns the element at logical index i, counted from the front.
// It returns ErrIndexOutOfBounds if i is outside [0, Len()).
func (d *ArrayDeque[T]) Get(i int) (T, error) {
	if i < 0 || i >= d.size {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return d.buf[ring.Index(d.head, i, len(d.buf))], nil
}

// Set replaces the element at logical index i with item.
// It returns ErrIndexOutOfBounds if i is outside [0, Len()).
func (d *ArrayDeque[T]) Set(i int, item T) error {
	if i < 0 || i >= d.size {
		return ErrIndexOutOfBounds
	}
	d.buf[ring.Index(d.head, i, len(d.buf))] = item
	return nil
}

// Insert places item at logical index at, shifting whichever half of the
// deque is smaller. at may equal Len(), in which case Insert behaves like
// PushBack. It returns ErrIndexOutOfBounds if at is outside [0, Len()] and
// ErrCapacityExceeded if the deque is full.
func (d *ArrayDeque[T]) Insert(at int, item T) error {
	if at < 0 || at > d.size {
		return ErrIndexOutOfBounds
	}
	if d.size == len(d.buf) {
		return ErrCapacityExceeded
	}
	capacity := len(d.buf)
	if at <= d.size/2 {
		// shift the front half one slot toward the new head
		d.head = ring.Sub(d.head, 1, capacity)
		for i := 0; i < at; i++ {
			d.buf[ring.Index(d.head, i, capacity)] = d.buf[ring.Index(d.head, i+1, capacity)]
		}
	} else {
		// shift the back half one slot toward the tail
		for i := d.size; i > at; i-- {
			d.buf[ring.Index(d.head, i, capacity)] = d.buf[ring.Index(d.head, i-1, capacity)]
		}
	}
	d.buf[ring.Index(d.head, at, capacity)] = item
	d.size++
	return nil
}

// Remove removes and returns the element at logical index at, shifting
// whichever half of the deque is smaller. It returns ErrIndexOutOfBounds if
// at is outside [0, Len()).
func (d *ArrayDeque[T]) Remove(at int) (T, error) {
	var zero T
	if at < 0 || at >= d.size {
		return zero, ErrIndexOutOfBounds
	}
	capacity := len(d.buf)
	item := d.buf[ring.Index(d.head, at, capacity)]
	if at < d.size/2 {
		for i := at; i > 0; i-- {
			d.buf[ring.Index(d.head, i, capacity)] = d.buf[ring.Index(d.head, i-1, capacity)]
		}
		d.buf[d.head] = zero
		d.head = ring.Add(d.head, 1, capacity)
	} else {
		for i := at; i < d.size-1; i++ {
			d.buf[ring.Index(d.head, i, capacity)] = d.buf[ring.Index(d.head, i+1, capacity)]
		}
		d.buf[ring.Index(d.head, d.size-1, capacity)] = zero
	}
	d.size--
	return item, nil
}

// Index returns the logical index of the first element satisfying f,
// or -1 if no element does.
func (d *ArrayDeque[T]) Index(f func(T) bool) int {
	for i := 0; i < d.size; i++ {
		if f(d.buf[ring.Index(d.head, i, len(d.buf))]) {
			return i
		}
	}
	return -1
}

// RIndex returns the logical index of the last element satisfying f,
// or -1 if no element does.
func (d *ArrayDeque[T]) RIndex(f func(T) bool) int {
	for i := d.size - 1; i >= 0; i-- {
		if f(d.buf[ring.Index(d.head, i, len(d.buf))]) {
			return i
		}
	}
	return -1
}

// Truncate drops all but the first n elements, zeroing the dropped slots.
// It is a no-op if the deque holds n elements or fewer. Capacity is retained.
func (d *ArrayDeque[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= d.size {
		return
	}
	var zero T
	for i := n; i < d.size; i++ {
		d.buf[ring.Index(d.head, i, len(d.buf))] = zero
	}
	d.size = n
}

// Clear removes all elements. Capacity is retained.
func (d *ArrayDeque[T]) Clear() {
	d.Truncate(0)
}

// AsSlices returns the contents of the deque as up to two contiguous views
// of the backing buffer, in front-to-back order. The views are invalidated
// by any mutation of the deque.
func (d *ArrayDeque[T]) AsSlices() ([]T, []T) {
	if d.size == 0 {
		return nil, nil
	}
	tail := d.head + d.size
	if tail <= len(d.buf) {
		return d.buf[d.head:tail], nil
	}
	return d.buf[d.head:], d.buf[:tail-len(d.buf)]
}
