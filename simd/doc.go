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

// Package simd provides portable fixed-width SIMD vector types.
//
// Every type is a fixed-length sequence of lanes (U32x4 is four uint32
// lanes in 128 bits) with the same lane-wise behavior on every supported
// architecture. Vectors are plain Go arrays underneath: value types, copied
// on assignment, with no shared state and no identity beyond their bits.
// Shapes are distinct Go types, so adding a U32x4 to a U32x8 is a compile
// error rather than a runtime check.
//
//	a := simd.NewU32x4(1, 2, 3, 4)
//	b := simd.SplatU32x4(10)
//	if a.Add(b) == simd.NewU32x4(11, 12, 13, 14) {
//		// always true
//	}
//
// Comparisons follow native SIMD convention and return a mask vector, one
// boolean lane per input lane, not a single bool. Use Eq(...).All() when a
// single answer is wanted.
//
// Integer arithmetic is explicit about overflow: Add, Sub and Mul wrap per
// the lane's bit width, and the SaturatingAdd/SaturatingSub variants clamp
// to the lane's representable range. Floating-point lanes follow IEEE-754,
// including NaN propagation and signed zero. Horizontal reductions use a
// fixed pairwise order so float results are bit-exact across runs.
//
// Operations are lowered per compiled target by the internal lowering layer
// and never branch on CPU features at the call site. Code that wants to
// choose between an extension-specific algorithm and a baseline one does so
// explicitly through the cpufeat package.
package simd

//go:generate go run github.com/ajroetker/go-simd/cmd/simdgen -out .
