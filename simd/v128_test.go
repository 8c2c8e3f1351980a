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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractRoundTrip(t *testing.T) {
	v := NewU32x4(1, 2, 3, 4)
	for i, want := range []uint32{1, 2, 3, 4} {
		got, err := v.Extract(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "lane %d", i)
	}

	f := NewF64x2(1.5, -2.25)
	for i, want := range []float64{1.5, -2.25} {
		got, err := f.Extract(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "lane %d", i)
	}
}

func TestSplatExtract(t *testing.T) {
	v := SplatI16x8(-7)
	for i := 0; i < v.Lanes(); i++ {
		got, err := v.Extract(i)
		require.NoError(t, err)
		assert.Equal(t, int16(-7), got, "lane %d", i)
	}
}

func TestAddSplatExample(t *testing.T) {
	// The canonical portability check: new(1,2,3,4) + splat(10).
	a := NewU32x4(1, 2, 3, 4)
	b := SplatU32x4(10)
	assert.Equal(t, NewU32x4(11, 12, 13, 14), a.Add(b))
}

func TestWrappingVsSaturatingU8(t *testing.T) {
	v := SplatU8x16(255)
	one := SplatU8x16(1)

	assert.Equal(t, SplatU8x16(0), v.Add(one), "wrapping add")
	assert.Equal(t, SplatU8x16(255), v.SaturatingAdd(one), "saturating add")

	zero := SplatU8x16(0)
	assert.Equal(t, SplatU8x16(255), zero.Sub(one), "wrapping sub")
	assert.Equal(t, SplatU8x16(0), zero.SaturatingSub(one), "saturating sub")
}

func TestSaturatingSignedI8(t *testing.T) {
	hi := SplatI8x16(127)
	lo := SplatI8x16(-128)
	one := SplatI8x16(1)

	assert.Equal(t, SplatI8x16(-128), hi.Add(one), "wrapping add at max")
	assert.Equal(t, SplatI8x16(127), hi.SaturatingAdd(one), "saturating add at max")
	assert.Equal(t, SplatI8x16(127), lo.Sub(one), "wrapping sub at min")
	assert.Equal(t, SplatI8x16(-128), lo.SaturatingSub(one), "saturating sub at min")
}

func TestLanewiseMatchesScalarI32(t *testing.T) {
	a := NewI32x4(-100, 0, 77, math.MaxInt32)
	b := NewI32x4(3, -3, 77, 1)

	type op struct {
		name   string
		vec    I32x4
		scalar func(x, y int32) int32
	}
	ops := []op{
		{"add", a.Add(b), func(x, y int32) int32 { return x + y }},
		{"sub", a.Sub(b), func(x, y int32) int32 { return x - y }},
		{"mul", a.Mul(b), func(x, y int32) int32 { return x * y }},
		{"and", a.And(b), func(x, y int32) int32 { return x & y }},
		{"or", a.Or(b), func(x, y int32) int32 { return x | y }},
		{"xor", a.Xor(b), func(x, y int32) int32 { return x ^ y }},
		{"min", a.Min(b), func(x, y int32) int32 { return min(x, y) }},
		{"max", a.Max(b), func(x, y int32) int32 { return max(x, y) }},
	}
	for _, tc := range ops {
		for i := 0; i < a.Lanes(); i++ {
			want := tc.scalar(a[i], b[i])
			assert.Equal(t, want, tc.vec[i], "%s lane %d", tc.name, i)
		}
	}
}

func TestLanewiseMatchesScalarF32(t *testing.T) {
	a := NewF32x4(1.5, -0.25, 1e30, -1e30)
	b := NewF32x4(0.5, 8, 1e30, 1e30)

	type op struct {
		name   string
		vec    F32x4
		scalar func(x, y float32) float32
	}
	ops := []op{
		{"add", a.Add(b), func(x, y float32) float32 { return x + y }},
		{"sub", a.Sub(b), func(x, y float32) float32 { return x - y }},
		{"mul", a.Mul(b), func(x, y float32) float32 { return x * y }},
		{"div", a.Div(b), func(x, y float32) float32 { return x / y }},
	}
	for _, tc := range ops {
		for i := 0; i < a.Lanes(); i++ {
			want := tc.scalar(a[i], b[i])
			assert.Equal(t, math.Float32bits(want), math.Float32bits(tc.vec[i]),
				"%s lane %d: got %v want %v", tc.name, i, tc.vec[i], want)
		}
	}
}

func TestExtractBounds(t *testing.T) {
	v := NewU32x4(1, 2, 3, 4)

	got, err := v.Extract(v.Lanes() - 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), got)

	_, err = v.Extract(v.Lanes())
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 4, oor.Index)
	assert.Equal(t, 4, oor.Lanes)

	_, err = v.Extract(-1)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, -1, oor.Index)
}

func TestReplace(t *testing.T) {
	v := SplatU32x4(9)
	w, err := v.Replace(2, 42)
	require.NoError(t, err)
	assert.Equal(t, NewU32x4(9, 9, 42, 9), w)
	assert.Equal(t, SplatU32x4(9), v, "receiver must be unchanged")

	_, err = v.Replace(4, 1)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)

	assert.Equal(t, NewU32x4(9, 1, 9, 9), v.ReplaceUnchecked(1, 1))
}

func TestShuffle(t *testing.T) {
	v := NewU32x4(10, 20, 30, 40)

	r, err := v.Shuffle([4]int{3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, NewU32x4(40, 30, 20, 10), r)

	r, err = v.Shuffle([4]int{0, 0, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, NewU32x4(10, 10, 30, 30), r)

	_, err = v.Shuffle([4]int{0, 1, 2, 4})
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 4, oor.Index)
}

func TestComparisonsProduceMasks(t *testing.T) {
	a := NewU32x4(1, 5, 5, 9)
	b := SplatU32x4(5)

	assert.Equal(t, M32x4{false, true, true, false}, a.Eq(b))
	assert.Equal(t, M32x4{true, false, false, true}, a.Ne(b))
	assert.Equal(t, M32x4{true, false, false, false}, a.Lt(b))
	assert.Equal(t, M32x4{true, true, true, false}, a.Le(b))
	assert.Equal(t, M32x4{false, false, false, true}, a.Gt(b))
	assert.Equal(t, M32x4{false, true, true, true}, a.Ge(b))
}

func TestMaskOps(t *testing.T) {
	m := M32x4{true, true, false, false}
	w := M32x4{true, false, true, false}

	assert.Equal(t, M32x4{true, false, false, false}, m.And(w))
	assert.Equal(t, M32x4{true, true, true, false}, m.Or(w))
	assert.Equal(t, M32x4{false, true, true, false}, m.Xor(w))
	assert.Equal(t, M32x4{false, false, true, true}, m.Not())

	assert.False(t, m.All())
	assert.True(t, m.Any())
	assert.Equal(t, 2, m.CountTrue())
	assert.True(t, M32x4{true, true, true, true}.All())
	assert.False(t, M32x4{}.Any())

	lane, err := m.Extract(1)
	require.NoError(t, err)
	assert.True(t, lane)
	_, err = m.Extract(4)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestSelect(t *testing.T) {
	a := SplatU32x4(1)
	b := SplatU32x4(2)
	m := M32x4{true, false, true, false}
	assert.Equal(t, NewU32x4(1, 2, 1, 2), SelectU32x4(m, a, b))
}

func TestFloatComparisonsNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := NewF32x4(1, nan, 3, nan)
	b := NewF32x4(1, nan, 4, 1)

	assert.Equal(t, M32x4{true, false, false, false}, a.Eq(b), "NaN never compares equal")
	assert.Equal(t, M32x4{false, true, true, true}, a.Ne(b))
	assert.Equal(t, M32x4{false, false, true, false}, a.Lt(b), "ordered compare with NaN is false")
}

func TestLoadStore(t *testing.T) {
	src := []uint32{1, 2, 3, 4, 5}
	v, err := LoadU32x4(src)
	require.NoError(t, err)
	assert.Equal(t, NewU32x4(1, 2, 3, 4), v)

	_, err = LoadU32x4(src[:3])
	require.ErrorIs(t, err, ErrShortSlice)

	dst := make([]uint32, 4)
	require.NoError(t, v.Store(dst))
	assert.Equal(t, []uint32{1, 2, 3, 4}, dst)

	assert.ErrorIs(t, v.Store(dst[:2]), ErrShortSlice)
}

func TestShifts(t *testing.T) {
	v := SplatU16x8(0x8001)
	assert.Equal(t, SplatU16x8(0x0002), v.Shl(1))
	assert.Equal(t, SplatU16x8(0x4000), v.Shr(1), "logical shift for unsigned")
	assert.Equal(t, SplatU16x8(0), v.Shl(16), "full-width shift clears")
	assert.Equal(t, SplatU16x8(0), v.Shr(16))

	s := SplatI16x8(-4)
	assert.Equal(t, SplatI16x8(-2), s.Shr(1), "arithmetic shift for signed")
	assert.Equal(t, SplatI16x8(-1), s.Shr(16), "arithmetic shift saturates to sign")
}

func TestSignedAbsNeg(t *testing.T) {
	v := NewI8x16(-1, 2, -3, 4, -5, 6, -7, 8, -9, 10, -11, 12, -13, 14, math.MinInt8, 0)

	abs := v.Abs()
	assert.Equal(t, int8(1), abs[0])
	assert.Equal(t, int8(2), abs[1])
	assert.Equal(t, int8(math.MinInt8), abs[14], "abs of MinInt8 wraps to itself")

	neg := v.Neg()
	assert.Equal(t, int8(1), neg[0])
	assert.Equal(t, int8(-2), neg[1])
	assert.Equal(t, int8(math.MinInt8), neg[14], "neg of MinInt8 wraps to itself")
}

func TestFloatUnaryOps(t *testing.T) {
	v := NewF64x2(4, 9)
	assert.Equal(t, NewF64x2(2, 3), v.Sqrt())

	n := NewF64x2(0, -1.5)
	neg := n.Neg()
	assert.True(t, math.Signbit(neg[0]), "negating +0 gives -0")
	assert.Equal(t, 1.5, neg[1])

	a := NewF64x2(-2.5, -0.0)
	abs := a.Abs()
	assert.Equal(t, 2.5, abs[0])
	assert.False(t, math.Signbit(abs[1]), "abs clears the sign of -0")
}

func TestFloatMinMaxNaN(t *testing.T) {
	nan := math.NaN()
	a := NewF64x2(1, nan)
	b := NewF64x2(2, 5)

	mn := a.Min(b)
	assert.Equal(t, 1.0, mn[0])
	assert.True(t, math.IsNaN(mn[1]), "NaN propagates through Min")

	mx := b.Max(a)
	assert.Equal(t, 2.0, mx[0])
	assert.True(t, math.IsNaN(mx[1]), "NaN propagates through Max")
}

func TestMulAddFused(t *testing.T) {
	a := NewF64x2(1e16, 3)
	b := NewF64x2(1+1e-16, 4)
	c := NewF64x2(-1e16, 5)

	r := a.MulAdd(b, c)
	for i := 0; i < r.Lanes(); i++ {
		want := math.FMA(a[i], b[i], c[i])
		assert.Equal(t, want, r[i], "lane %d", i)
	}
}

func TestMulAddF32x4SingleRounding(t *testing.T) {
	// 24929 * 673 = 2^24+1, exactly between two adjacent float32 values;
	// the small addend lies above the midpoint, so the fused result must
	// round up. An unfused multiply-then-add loses the addend and ties
	// back down to even.
	a := SplatF32x4(24929)
	b := SplatF32x4(673)
	c := SplatF32x4(0x1p-30)
	assert.Equal(t, SplatF32x4(16777218), a.MulAdd(b, c))
	assert.Equal(t, SplatF32x4(16777216), a.Mul(b).Add(c))
}

func TestWideShapesAgree(t *testing.T) {
	// The 256- and 512-bit shapes share kernels with the 128-bit ones;
	// spot-check that widening the shape does not change lane semantics.
	var a8, b8 [8]uint32
	for i := range a8 {
		a8[i] = uint32(i * 1000003)
		b8[i] = uint32(i) + math.MaxUint32 - 3
	}
	wide := U32x8(a8).Add(U32x8(b8))
	for i := range a8 {
		narrowA := SplatU32x4(a8[i])
		narrowB := SplatU32x4(b8[i])
		assert.Equal(t, narrowA.Add(narrowB)[0], wide[i], "lane %d", i)
	}
}

func TestStoreDoesNotAliasReceiver(t *testing.T) {
	v := NewU32x4(1, 2, 3, 4)
	w := v
	w[0] = 99
	assert.Equal(t, uint32(1), v[0], "vectors are value types")
}

func TestErrShortSliceMessage(t *testing.T) {
	_, err := LoadU32x4(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load U32x4")
	assert.True(t, errors.Is(err, ErrShortSlice))
}
