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

//go:build !tinydeque_noalloc

package tinydeque

import "github.com/maypok86/tinydeque/internal/xmath"

// NewTinyDequeWithCapacity creates an empty TinyDeque with the given inline
// capacity and room for at least capacity elements. When capacity exceeds
// inlineCapacity the deque starts on the heap, with the heap buffer sized to
// the next power of two. It panics if inlineCapacity is not positive.
//
// This constructor is unavailable in tinydeque_noalloc builds.
func NewTinyDequeWithCapacity[T any](inlineCapacity, capacity int) *TinyDeque[T] {
	if inlineCapacity < 1 {
		panic("capacity must be positive number")
	}
	if capacity <= inlineCapacity {
		return NewTinyDeque[T](inlineCapacity)
	}
	return &TinyDeque[T]{
		heap:    newGrowable[T](int(xmath.RoundUpPowerOf264(uint64(capacity)))),
		spilled: true,
	}
}

// overflow migrates the deque from the inline ring to a freshly allocated
// heap ring, moving all elements in logical order to physical slot 0 and
// zeroing the inline slots. The heap capacity follows the growth policy
// max(2*inlineCapacity, inlineCapacity+1).
func (d *TinyDeque[T]) overflow() error {
	inlineCapacity := d.inline.Cap()
	capacity := 2 * inlineCapacity
	if c := inlineCapacity + 1; c > capacity {
		capacity = c
	}
	heap := newGrowable[T](capacity)
	for {
		item, err := d.inline.PopFront()
		if err != nil {
			break
		}
		heap.pushBack(item)
	}
	d.heap = heap
	d.spilled = true
	return nil
}
