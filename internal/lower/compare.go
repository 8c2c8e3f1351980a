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

package lower

// Comparison kernels write one boolean per lane into dst. Go's comparison
// operators already follow IEEE-754 for floats: every ordered comparison
// with a NaN operand is false, and NotEq with a NaN operand is true.

// Eq writes a == b lane-wise into dst.
func Eq[T lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] == b[i]
	}
}

// NotEq writes a != b lane-wise into dst.
func NotEq[T lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] != b[i]
	}
}

// Less writes a < b lane-wise into dst.
func Less[T lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] < b[i]
	}
}

// LessEq writes a <= b lane-wise into dst.
func LessEq[T lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] <= b[i]
	}
}

// Greater writes a > b lane-wise into dst.
func Greater[T lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] > b[i]
	}
}

// GreaterEq writes a >= b lane-wise into dst.
func GreaterEq[T lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] >= b[i]
	}
}
