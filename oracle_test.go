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

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gammazero/deque"
)

// TestTinyDeque_Oracle runs random operation sequences against
// gammazero/deque and requires identical observable behavior.
func TestTinyDeque_Oracle(t *testing.T) {
	t.Parallel()

	const ops = 10000

	r := rand.New(rand.NewSource(42))
	d := NewTinyDeque[int](4)
	oracle := new(deque.Deque[int])

	for op := 0; op < ops; op++ {
		switch r.Intn(6) {
		case 0:
			item := r.Int()
			if err := d.PushBack(item); err != nil {
				t.Fatalf("op %d: PushBack failed: %v", op, err)
			}
			oracle.PushBack(item)
		case 1:
			item := r.Int()
			if err := d.PushFront(item); err != nil {
				t.Fatalf("op %d: PushFront failed: %v", op, err)
			}
			oracle.PushFront(item)
		case 2:
			item, err := d.PopFront()
			if oracle.Len() == 0 {
				if !errors.Is(err, ErrEmptyDeque) {
					t.Fatalf("op %d: PopFront on empty deque should fail with ErrEmptyDeque, got %v", op, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("op %d: PopFront failed: %v", op, err)
			}
			if want := oracle.PopFront(); item != want {
				t.Fatalf("op %d: PopFront() = %d, want %d", op, item, want)
			}
		case 3:
			item, err := d.PopBack()
			if oracle.Len() == 0 {
				if !errors.Is(err, ErrEmptyDeque) {
					t.Fatalf("op %d: PopBack on empty deque should fail with ErrEmptyDeque, got %v", op, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("op %d: PopBack failed: %v", op, err)
			}
			if want := oracle.PopBack(); item != want {
				t.Fatalf("op %d: PopBack() = %d, want %d", op, item, want)
			}
		case 4:
			if oracle.Len() == 0 {
				continue
			}
			i := r.Intn(oracle.Len())
			item, err := d.Get(i)
			if err != nil {
				t.Fatalf("op %d: Get(%d) failed: %v", op, i, err)
			}
			if want := oracle.At(i); item != want {
				t.Fatalf("op %d: Get(%d) = %d, want %d", op, i, item, want)
			}
		case 5:
			if d.Len() != oracle.Len() {
				t.Fatalf("op %d: Len() = %d, want %d", op, d.Len(), oracle.Len())
			}
		}
	}

	// drain both and compare the full remaining order
	for oracle.Len() > 0 {
		item, err := d.PopFront()
		if err != nil {
			t.Fatal("PopFront failed during drain:", err)
		}
		if want := oracle.PopFront(); item != want {
			t.Fatalf("drain: PopFront() = %d, want %d", item, want)
		}
	}
	if !d.IsEmpty() {
		t.Error("deque should be empty after drain, len", d.Len())
	}
}
