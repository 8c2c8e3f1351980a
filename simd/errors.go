// Copyright 2026 go-simd Authors
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

package simd

import (
	"errors"
	"fmt"
)

// OutOfRangeError reports a lane index outside [0, Lanes) passed to a
// checked accessor or shuffle. The index is never clamped; the caller
// decides how to recover.
type OutOfRangeError struct {
	Index int
	Lanes int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("simd: lane index %d out of range [0, %d)", e.Index, e.Lanes)
}

// ErrShortSlice is wrapped by Load and Store errors when the given slice has
// fewer elements than the vector has lanes.
var ErrShortSlice = errors.New("slice shorter than vector")
