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

package ring

import "testing"

func TestIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		head     int
		i        int
		capacity int
		want     int
	}{
		{0, 0, 4, 0},
		{0, 3, 4, 3},
		{2, 1, 4, 3},
		{2, 2, 4, 0},
		{3, 3, 4, 2},
		{6, 6, 7, 5},
	}
	for _, tt := range tests {
		if got := Index(tt.head, tt.i, tt.capacity); got != tt.want {
			t.Errorf("Index(%d, %d, %d) = %d, want %d", tt.head, tt.i, tt.capacity, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()

	if got := Add(3, 1, 4); got != 0 {
		t.Errorf("Add(3, 1, 4) = %d, want 0", got)
	}
	if got := Add(1, 2, 4); got != 3 {
		t.Errorf("Add(1, 2, 4) = %d, want 3", got)
	}
}

func TestSub(t *testing.T) {
	t.Parallel()

	if got := Sub(0, 1, 4); got != 3 {
		t.Errorf("Sub(0, 1, 4) = %d, want 3", got)
	}
	if got := Sub(2, 2, 4); got != 0 {
		t.Errorf("Sub(2, 2, 4) = %d, want 0", got)
	}
	if got := Sub(1, 4, 4); got != 1 {
		t.Errorf("Sub(1, 4, 4) = %d, want 1", got)
	}
}
