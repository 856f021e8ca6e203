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

package tinydeque

import "errors"

// TinyDeque is a double-ended queue that starts on an inline fixed-capacity
// ring and migrates to a growable heap ring the first time a push would
// exceed the inline capacity. The migration happens at most once; popping
// back below the inline capacity never reverts the deque to inline storage
// and never shrinks the heap buffer.
//
// In builds with the tinydeque_noalloc tag the migration is compiled out and
// TinyDeque behaves exactly like an ArrayDeque over its inline capacity.
type TinyDeque[T any] struct {
	inline  ArrayDeque[T]
	heap    growable[T]
	spilled bool
}

// NewTinyDeque creates an empty TinyDeque with the given inline capacity.
// It panics if inlineCapacity is not positive.
func NewTinyDeque[T any](inlineCapacity int) *TinyDeque[T] {
	if inlineCapacity < 1 {
		panic("capacity must be positive number")
	}
	return &TinyDeque[T]{
		inline: ArrayDeque[T]{buf: make([]T, inlineCapacity)},
	}
}

// active returns the ring of the variant the deque currently stores
// elements in.
func (d *TinyDeque[T]) active() *ArrayDeque[T] {
	if d.spilled {
		return &d.heap.ring
	}
	return &d.inline
}

// Spilled reports whether the deque has migrated to heap storage.
func (d *TinyDeque[T]) Spilled() bool {
	return d.spilled
}

// Len returns the number of elements in the deque.
func (d *TinyDeque[T]) Len() int {
	return d.active().Len()
}

// Cap returns the capacity of the active storage variant. It never decreases
// over the lifetime of the deque.
func (d *TinyDeque[T]) Cap() int {
	return d.active().Cap()
}

// IsEmpty reports whether the deque contains no elements.
func (d *TinyDeque[T]) IsEmpty() bool {
	return d.active().IsEmpty()
}

// IsFull reports whether the active storage is at capacity. While the deque
// is inline that means the next push migrates it to the heap; on the heap it
// means the next push grows the buffer.
func (d *TinyDeque[T]) IsFull() bool {
	return d.active().IsFull()
}

// PushBack appends item to the back of the deque, migrating to or growing
// the heap storage as needed. The returned error is always nil except in
// tinydeque_noalloc builds, where a push beyond the inline capacity fails
// with ErrCapacityExceeded.
func (d *TinyDeque[T]) PushBack(item T) error {
	if d.spilled {
		d.heap.pushBack(item)
		return nil
	}
	if err := d.inline.PushBack(item); err != nil {
		if err := d.overflow(); err != nil {
			return err
		}
		d.heap.pushBack(item)
	}
	return nil
}

// PushFront prepends item to the front of the deque, migrating to or growing
// the heap storage as needed. The returned error is always nil except in
// tinydeque_noalloc builds, where a push beyond the inline capacity fails
// with ErrCapacityExceeded.
func (d *TinyDeque[T]) PushFront(item T) error {
	if d.spilled {
		d.heap.pushFront(item)
		return nil
	}
	if err := d.inline.PushFront(item); err != nil {
		if err := d.overflow(); err != nil {
			return err
		}
		d.heap.pushFront(item)
	}
	return nil
}

// PopFront removes and returns the element at the front of the deque.
// It returns ErrEmptyDeque if the deque is empty.
func (d *TinyDeque[T]) PopFront() (T, error) {
	return d.active().PopFront()
}

// PopBack removes and returns the element at the back of the deque.
// It returns ErrEmptyDeque if the deque is empty.
func (d *TinyDeque[T]) PopBack() (T, error) {
	return d.active().PopBack()
}

// Front returns the element at the front of the deque without removing it.
// It returns ErrEmptyDeque if the deque is empty.
func (d *TinyDeque[T]) Front() (T, error) {
	return d.active().Front()
}

// Back returns the element at the back of the deque without removing it.
// It returns ErrEmptyDeque if the deque is empty.
func (d *TinyDeque[T]) Back() (T, error) {
	return d.active().Back()
}

// Get returns the element at logical index i, counted from the front.
// It returns ErrIndexOutOfBounds if i is outside [0, Len()).
func (d *TinyDeque[T]) Get(i int) (T, error) {
	return d.active().Get(i)
}

// Set replaces the element at logical index i with item.
// It returns ErrIndexOutOfBounds if i is outside [0, Len()).
func (d *TinyDeque[T]) Set(i int, item T) error {
	return d.active().Set(i, item)
}

// Insert places item at logical index at, migrating to or growing the heap
// storage as needed. It returns ErrIndexOutOfBounds if at is outside
// [0, Len()] and, in tinydeque_noalloc builds only, ErrCapacityExceeded when
// the inline storage is full.
func (d *TinyDeque[T]) Insert(at int, item T) error {
	if d.spilled {
		return d.heap.insert(at, item)
	}
	err := d.inline.Insert(at, item)
	if !errors.Is(err, ErrCapacityExceeded) {
		return err
	}
	if err := d.overflow(); err != nil {
		return err
	}
	return d.heap.insert(at, item)
}

// Remove removes and returns the element at logical index at.
// It returns ErrIndexOutOfBounds if at is outside [0, Len()).
func (d *TinyDeque[T]) Remove(at int) (T, error) {
	return d.active().Remove(at)
}

// Index returns the logical index of the first element satisfying f,
// or -1 if no element does.
func (d *TinyDeque[T]) Index(f func(T) bool) int {
	return d.active().Index(f)
}

// RIndex returns the logical index of the last element satisfying f,
// or -1 if no element does.
func (d *TinyDeque[T]) RIndex(f func(T) bool) int {
	return d.active().RIndex(f)
}

// Truncate drops all but the first n elements, zeroing the dropped slots.
// Capacity is retained and a spilled deque stays on the heap.
func (d *TinyDeque[T]) Truncate(n int) {
	d.active().Truncate(n)
}

// Clear removes all elements. Capacity is retained and a spilled deque stays
// on the heap.
func (d *TinyDeque[T]) Clear() {
	d.active().Clear()
}

// AsSlices returns the contents of the deque as up to two contiguous views
// of the active backing buffer, in front-to-back order. The views are
// invalidated by any mutation of the deque, including a migration.
func (d *TinyDeque[T]) AsSlices() ([]T, []T) {
	return d.active().AsSlices()
}
