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

import (
	"iter"

	"github.com/maypok86/tinydeque/internal/ring"
)

// All returns an iterator over the logical index and element of every entry
// in the deque, from front to back.
//
// The iterator does not mutate the deque and a fresh iteration can be started
// at any time, but the deque must not be mutated while an iteration is in
// progress.
func (d *ArrayDeque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(i, d.buf[ring.Index(d.head, i, len(d.buf))]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the deque, from front
// to back.
func (d *ArrayDeque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.buf[ring.Index(d.head, i, len(d.buf))]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the logical index and element of every
// entry in the deque, from back to front.
func (d *ArrayDeque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.size - 1; i >= 0; i-- {
			if !yield(i, d.buf[ring.Index(d.head, i, len(d.buf))]) {
				return
			}
		}
	}
}

// All returns an iterator over the logical index and element of every entry
// in the deque, from front to back.
//
// The iterator does not mutate the deque and a fresh iteration can be started
// at any time, but the deque must not be mutated while an iteration is in
// progress.
func (d *TinyDeque[T]) All() iter.Seq2[int, T] {
	return d.active().All()
}

// Values returns an iterator over the elements of the deque, from front
// to back.
func (d *TinyDeque[T]) Values() iter.Seq[T] {
	return d.active().Values()
}

// Backward returns an iterator over the logical index and element of every
// entry in the deque, from back to front.
func (d *TinyDeque[T]) Backward() iter.Seq2[int, T] {
	return d.active().Backward()
}
