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

// Package ring centralizes the wraparound index arithmetic shared by the
// deque ring buffers.
package ring

// Index maps the logical index i of a ring with the given head slot onto a
// physical slot of a buffer with the given capacity.
func Index(head, i, capacity int) int {
	return (head + i) % capacity
}

// Add moves the physical slot i forward by n, wrapping around the buffer.
func Add(i, n, capacity int) int {
	return (i + n) % capacity
}

// Sub moves the physical slot i backward by n, wrapping around the buffer.
// n must not exceed capacity.
func Sub(i, n, capacity int) int {
	return (i - n + capacity) % capacity
}
