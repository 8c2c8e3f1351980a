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

// Horizontal reductions combine lanes in a fixed pairwise tree: adjacent
// lanes first, then adjacent partial results, until one value remains. For
// an 8-lane vector the order is ((l0+l1)+(l2+l3))+((l4+l5)+(l6+l7)). The
// order is part of the contract: floating-point rounding depends on it, and
// fixing it makes results bit-exact across calls and across targets.

// maxLanes is the lane count of the widest supported vector (512-bit u8).
const maxLanes = 64

// ReduceSum returns the pairwise-tree sum of all lanes. Integer lanes wrap
// on overflow.
func ReduceSum[T lanes](v []T) T {
	var tmp [maxLanes]T
	n := copy(tmp[:], v)
	for n > 1 {
		h := n / 2
		for i := 0; i < h; i++ {
			tmp[i] = tmp[2*i] + tmp[2*i+1]
		}
		n = h
	}
	return tmp[0]
}

// ReduceMinInts returns the smallest lane, combined pairwise.
func ReduceMinInts[T ints](v []T) T {
	var tmp [maxLanes]T
	n := copy(tmp[:], v)
	for n > 1 {
		h := n / 2
		for i := 0; i < h; i++ {
			a, b := tmp[2*i], tmp[2*i+1]
			if b < a {
				a = b
			}
			tmp[i] = a
		}
		n = h
	}
	return tmp[0]
}

// ReduceMaxInts returns the largest lane, combined pairwise.
func ReduceMaxInts[T ints](v []T) T {
	var tmp [maxLanes]T
	n := copy(tmp[:], v)
	for n > 1 {
		h := n / 2
		for i := 0; i < h; i++ {
			a, b := tmp[2*i], tmp[2*i+1]
			if b > a {
				a = b
			}
			tmp[i] = a
		}
		n = h
	}
	return tmp[0]
}

// ReduceMinFloats returns the smallest lane, combined pairwise. Any NaN lane
// makes the result NaN regardless of position.
func ReduceMinFloats[T floats](v []T) T {
	var tmp [maxLanes]T
	n := copy(tmp[:], v)
	for n > 1 {
		h := n / 2
		for i := 0; i < h; i++ {
			tmp[i] = nanMin(tmp[2*i], tmp[2*i+1])
		}
		n = h
	}
	return tmp[0]
}

// ReduceMaxFloats returns the largest lane, combined pairwise. Any NaN lane
// makes the result NaN regardless of position.
func ReduceMaxFloats[T floats](v []T) T {
	var tmp [maxLanes]T
	n := copy(tmp[:], v)
	for n > 1 {
		h := n / 2
		for i := 0; i < h; i++ {
			tmp[i] = nanMax(tmp[2*i], tmp[2*i+1])
		}
		n = h
	}
	return tmp[0]
}
