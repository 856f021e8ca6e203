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

// growable is the heap variant of TinyDeque's storage: the same ring-buffer
// state as ArrayDeque over a buffer that doubles when full.
type growable[T any] struct {
	ring ArrayDeque[T]
}

func newGrowable[T any](capacity int) growable[T] {
	return growable[T]{
		ring: ArrayDeque[T]{buf: make([]T, capacity)},
	}
}

// reserve grows the buffer until it has room for n more elements, doubling
// the capacity each step.
func (g *growable[T]) reserve(n int) {
	need := g.ring.size + n
	capacity := len(g.ring.buf)
	if need <= capacity {
		return
	}
	for capacity < need {
		capacity *= 2
	}
	g.realloc(capacity)
}

// realloc moves the contents into a fresh buffer of the given capacity,
// re-linearized in logical order at physical slot 0.
func (g *growable[T]) realloc(capacity int) {
	buf := make([]T, capacity)
	front, back := g.ring.AsSlices()
	n := copy(buf, front)
	copy(buf[n:], back)
	g.ring.buf = buf
	g.ring.head = 0
}

// The pushes below cannot fail: reserve guarantees a free slot.

func (g *growable[T]) pushBack(item T) {
	g.reserve(1)
	_ = g.ring.PushBack(item)
}

func (g *growable[T]) pushFront(item T) {
	g.reserve(1)
	_ = g.ring.PushFront(item)
}

func (g *growable[T]) insert(at int, item T) error {
	if at < 0 || at > g.ring.size {
		return ErrIndexOutOfBounds
	}
	g.reserve(1)
	return g.ring.Insert(at, item)
}
