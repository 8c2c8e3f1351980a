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

import (
	"math"

	"github.com/chewxy/math32"
)

// Floating-point lane kernels follow IEEE-754: NaN propagates through
// arithmetic and signed zero is preserved. The arithmetic kernels are
// function variables so per-architecture init can rebind them to
// block-structured variants.

var (
	// AddF32 adds b into a lane-wise.
	AddF32 func(a, b []float32) = addF32Generic
	// SubF32 subtracts b from a lane-wise.
	SubF32 func(a, b []float32) = subF32Generic
	// MulF32 multiplies a by b lane-wise.
	MulF32 func(a, b []float32) = mulF32Generic
	// DivF32 divides a by b lane-wise.
	DivF32 func(a, b []float32) = divF32Generic

	// AddF64 adds b into a lane-wise.
	AddF64 func(a, b []float64) = addF64Generic
	// SubF64 subtracts b from a lane-wise.
	SubF64 func(a, b []float64) = subF64Generic
	// MulF64 multiplies a by b lane-wise.
	MulF64 func(a, b []float64) = mulF64Generic
	// DivF64 divides a by b lane-wise.
	DivF64 func(a, b []float64) = divF64Generic
)

func addF32Generic(a, b []float32) {
	for i := range a {
		a[i] += b[i]
	}
}

func subF32Generic(a, b []float32) {
	for i := range a {
		a[i] -= b[i]
	}
}

func mulF32Generic(a, b []float32) {
	for i := range a {
		a[i] *= b[i]
	}
}

func divF32Generic(a, b []float32) {
	for i := range a {
		a[i] /= b[i]
	}
}

func addF64Generic(a, b []float64) {
	for i := range a {
		a[i] += b[i]
	}
}

func subF64Generic(a, b []float64) {
	for i := range a {
		a[i] -= b[i]
	}
}

func mulF64Generic(a, b []float64) {
	for i := range a {
		a[i] *= b[i]
	}
}

func divF64Generic(a, b []float64) {
	for i := range a {
		a[i] /= b[i]
	}
}

// SqrtF32 replaces every lane with its square root.
func SqrtF32(a []float32) {
	for i := range a {
		a[i] = math32.Sqrt(a[i])
	}
}

// SqrtF64 replaces every lane with its square root.
func SqrtF64(a []float64) {
	for i := range a {
		a[i] = math.Sqrt(a[i])
	}
}

// AbsF32 replaces every lane with its absolute value (clears the sign bit,
// so -0 becomes +0 and NaN stays NaN).
func AbsF32(a []float32) {
	for i := range a {
		a[i] = math32.Abs(a[i])
	}
}

// AbsF64 replaces every lane with its absolute value.
func AbsF64(a []float64) {
	for i := range a {
		a[i] = math.Abs(a[i])
	}
}

// fmaF32 computes a*b + c with a single float32 rounding. The product of
// two float32 values is exact in float64 (48 mantissa bits fit in 53), so
// only the addition can lose bits. Rounding that sum to float64 and then to
// float32 double-rounds near float32 tie midpoints, so the float64 sum is
// first adjusted to round-to-odd: when the addition was inexact and the
// sum's last mantissa bit is even, the sum is nudged one ulp toward the
// exact value. Round-to-odd at 53 bits followed by round-to-nearest at 24
// bits gives the correctly rounded result (Boldo-Muller).
func fmaF32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	s := p + float64(c)
	t := s - p
	e := (p - (s - t)) + (float64(c) - t)
	if e != 0 && !math.IsNaN(e) && math.Float64bits(s)&1 == 0 {
		if e > 0 {
			s = math.Nextafter(s, math.Inf(1))
		} else {
			s = math.Nextafter(s, math.Inf(-1))
		}
	}
	return float32(s)
}

// MulAddF32 computes a = a*b + c lane-wise with a single rounding.
func MulAddF32(a, b, c []float32) {
	for i := range a {
		a[i] = fmaF32(a[i], b[i], c[i])
	}
}

// MulAddF64 computes a = a*b + c lane-wise with a single rounding.
func MulAddF64(a, b, c []float64) {
	for i := range a {
		a[i] = math.FMA(a[i], b[i], c[i])
	}
}

// NegFloats negates every lane, including zeros (-0 and +0 swap).
func NegFloats[T floats](a []T) {
	for i := range a {
		a[i] = -a[i]
	}
}

// nanMin returns the smaller of a and b, propagating NaN from either side.
func nanMin[T floats](a, b T) T {
	if a != a {
		return a
	}
	if b != b {
		return b
	}
	if b < a {
		return b
	}
	return a
}

// nanMax returns the larger of a and b, propagating NaN from either side.
func nanMax[T floats](a, b T) T {
	if a != a {
		return a
	}
	if b != b {
		return b
	}
	if b > a {
		return b
	}
	return a
}

// MinFloats keeps the lane-wise minimum of a and b in a. A NaN in either
// input produces a NaN lane.
func MinFloats[T floats](a, b []T) {
	for i := range a {
		a[i] = nanMin(a[i], b[i])
	}
}

// MaxFloats keeps the lane-wise maximum of a and b in a. A NaN in either
// input produces a NaN lane.
func MaxFloats[T floats](a, b []T) {
	for i := range a {
		a[i] = nanMax(a[i], b[i])
	}
}
