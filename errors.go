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

var (
	// ErrCapacityExceeded is returned by a push or insert that would exceed a
	// fixed capacity.
	ErrCapacityExceeded = errors.New("tinydeque: capacity exceeded")
	// ErrEmptyDeque is returned by a pop or peek on an empty deque.
	ErrEmptyDeque = errors.New("tinydeque: deque is empty")
	// ErrIndexOutOfBounds is returned by indexed access outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("tinydeque: index out of bounds")
)
