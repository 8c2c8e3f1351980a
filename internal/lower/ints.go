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

import "unsafe"

// Integer lane kernels. All kernels mutate a in place; callers pass the lane
// slice of a vector copy, so value semantics are preserved at the call site.

// AddInts adds b into a lane-wise, wrapping on overflow.
func AddInts[T ints](a, b []T) {
	for i := range a {
		a[i] += b[i]
	}
}

// SubInts subtracts b from a lane-wise, wrapping on overflow.
func SubInts[T ints](a, b []T) {
	for i := range a {
		a[i] -= b[i]
	}
}

// MulInts multiplies a by b lane-wise, keeping the low bits on overflow.
func MulInts[T ints](a, b []T) {
	for i := range a {
		a[i] *= b[i]
	}
}

// signedLimits returns the most positive and most negative values of a
// signed lane type.
func signedLimits[T ints]() (hi, lo T) {
	bits := uint(unsafe.Sizeof(hi) * 8)
	lo = T(1) << (bits - 1)
	hi = ^lo
	return hi, lo
}

// isUnsigned reports whether T is an unsigned lane type.
func isUnsigned[T ints]() bool {
	return ^T(0) > 0
}

// SatAdd adds b into a lane-wise, clamping each lane to the representable
// range of T instead of wrapping.
func SatAdd[T ints](a, b []T) {
	if isUnsigned[T]() {
		for i := range a {
			s := a[i] + b[i]
			if s < a[i] {
				s = ^T(0)
			}
			a[i] = s
		}
		return
	}
	hi, lo := signedLimits[T]()
	for i := range a {
		s := a[i] + b[i]
		if (a[i]^s)&(b[i]^s) < 0 {
			if a[i] < 0 {
				s = lo
			} else {
				s = hi
			}
		}
		a[i] = s
	}
}

// SatSub subtracts b from a lane-wise, clamping each lane to the
// representable range of T instead of wrapping.
func SatSub[T ints](a, b []T) {
	if isUnsigned[T]() {
		for i := range a {
			if b[i] > a[i] {
				a[i] = 0
			} else {
				a[i] -= b[i]
			}
		}
		return
	}
	hi, lo := signedLimits[T]()
	for i := range a {
		s := a[i] - b[i]
		if (a[i]^b[i])&(a[i]^s) < 0 {
			if a[i] < 0 {
				s = lo
			} else {
				s = hi
			}
		}
		a[i] = s
	}
}

// And computes a &= b lane-wise.
func And[T ints](a, b []T) {
	for i := range a {
		a[i] &= b[i]
	}
}

// Or computes a |= b lane-wise.
func Or[T ints](a, b []T) {
	for i := range a {
		a[i] |= b[i]
	}
}

// Xor computes a ^= b lane-wise.
func Xor[T ints](a, b []T) {
	for i := range a {
		a[i] ^= b[i]
	}
}

// AndNot computes a &^= b lane-wise (a AND NOT b).
func AndNot[T ints](a, b []T) {
	for i := range a {
		a[i] &^= b[i]
	}
}

// Not complements every lane of a.
func Not[T ints](a []T) {
	for i := range a {
		a[i] = ^a[i]
	}
}

// Shl shifts every lane of a left by n bits. Counts of the lane width or
// more produce zero lanes, per Go shift semantics.
func Shl[T ints](a []T, n uint) {
	for i := range a {
		a[i] <<= n
	}
}

// Shr shifts every lane of a right by n bits: logical for unsigned lane
// types, arithmetic (sign-filling) for signed ones.
func Shr[T ints](a []T, n uint) {
	for i := range a {
		a[i] >>= n
	}
}

// MinInts keeps the lane-wise minimum of a and b in a.
func MinInts[T ints](a, b []T) {
	for i := range a {
		if b[i] < a[i] {
			a[i] = b[i]
		}
	}
}

// MaxInts keeps the lane-wise maximum of a and b in a.
func MaxInts[T ints](a, b []T) {
	for i := range a {
		if b[i] > a[i] {
			a[i] = b[i]
		}
	}
}

// AbsSigned replaces every lane with its absolute value. The most negative
// lane value has no positive counterpart and is left unchanged (wrapping
// negation), matching native SIMD abs instructions.
func AbsSigned[T signed](a []T) {
	for i := range a {
		if a[i] < 0 {
			a[i] = -a[i]
		}
	}
}

// NegSigned negates every lane, wrapping at the most negative value.
func NegSigned[T signed](a []T) {
	for i := range a {
		a[i] = -a[i]
	}
}
