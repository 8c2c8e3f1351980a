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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceSumInts(t *testing.T) {
	assert.Equal(t, uint32(10), NewU32x4(1, 2, 3, 4).ReduceSum())

	// Wrapping: 4 * 0x40000001 overflows uint32 by exactly 4.
	assert.Equal(t, uint32(4), SplatU32x4(0x40000001).ReduceSum())

	assert.Equal(t, int8(-128), SplatI8x16(-8).ReduceSum())
}

func TestReduceMinMax(t *testing.T) {
	v := NewI32x4(7, -3, 100, 0)
	assert.Equal(t, int32(-3), v.ReduceMin())
	assert.Equal(t, int32(100), v.ReduceMax())

	f := NewF64x2(-0.5, 12)
	assert.Equal(t, -0.5, f.ReduceMin())
	assert.Equal(t, 12.0, f.ReduceMax())
}

func TestReduceSumPairwiseOrder(t *testing.T) {
	// With pairwise combination (l0+l1)+(l2+l3), the lost low bits cancel:
	// (1+1e8) rounds to 1e8 and (-1e8+1) rounds to -1e8, so the tree sums
	// to 0. A left-to-right fold would give 1 instead. The documented order
	// is the pairwise tree.
	v := NewF32x4(1, 1e8, -1e8, 1)
	assert.Equal(t, float32(0), v.ReduceSum())
}

func TestReduceSumReproducible(t *testing.T) {
	v := NewF32x8(0.1, 0.2, 0.3, 0.4, 1e7, -1e7, 1e-7, 7)
	want := v.ReduceSum()
	for i := 0; i < 1000; i++ {
		got := v.ReduceSum()
		if math.Float32bits(got) != math.Float32bits(want) {
			t.Fatalf("run %d: sum %x differs from first run %x",
				i, math.Float32bits(got), math.Float32bits(want))
		}
	}
}

func TestReduceNaN(t *testing.T) {
	nan := float32(math.NaN())
	v := NewF32x4(1, 2, nan, 4)
	assert.True(t, math.IsNaN(float64(v.ReduceMin())))
	assert.True(t, math.IsNaN(float64(v.ReduceMax())))
	assert.True(t, math.IsNaN(float64(v.ReduceSum())))
}
