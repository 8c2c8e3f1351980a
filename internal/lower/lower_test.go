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
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randF32(rng *rand.Rand, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = rng.Float32()*200 - 100
	}
	return s
}

func randF64(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*200 - 100
	}
	return s
}

func TestBlockedF32KernelsMatchGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	kernels := []struct {
		name    string
		blocked func(a, b []float32)
		generic func(a, b []float32)
	}{
		{"add4", addF32Block4, addF32Generic},
		{"add8", addF32Block8, addF32Generic},
		{"sub4", subF32Block4, subF32Generic},
		{"sub8", subF32Block8, subF32Generic},
		{"mul4", mulF32Block4, mulF32Generic},
		{"mul8", mulF32Block8, mulF32Generic},
		{"div4", divF32Block4, divF32Generic},
		{"div8", divF32Block8, divF32Generic},
	}
	// Odd lengths exercise the scalar tail.
	for _, n := range []int{1, 3, 4, 7, 8, 15, 16, 64} {
		a := randF32(rng, n)
		b := randF32(rng, n)
		for _, k := range kernels {
			got := append([]float32(nil), a...)
			want := append([]float32(nil), a...)
			k.blocked(got, b)
			k.generic(want, b)
			assert.Equal(t, want, got, "%s n=%d", k.name, n)
		}
	}
}

func TestBlockedF64KernelsMatchGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	kernels := []struct {
		name    string
		blocked func(a, b []float64)
		generic func(a, b []float64)
	}{
		{"add2", addF64Block2, addF64Generic},
		{"add4", addF64Block4, addF64Generic},
		{"sub2", subF64Block2, subF64Generic},
		{"sub4", subF64Block4, subF64Generic},
		{"mul2", mulF64Block2, mulF64Generic},
		{"mul4", mulF64Block4, mulF64Generic},
		{"div2", divF64Block2, divF64Generic},
		{"div4", divF64Block4, divF64Generic},
	}
	for _, n := range []int{1, 2, 3, 5, 8, 33} {
		a := randF64(rng, n)
		b := randF64(rng, n)
		for _, k := range kernels {
			got := append([]float64(nil), a...)
			want := append([]float64(nil), a...)
			k.blocked(got, b)
			k.generic(want, b)
			assert.Equal(t, want, got, "%s n=%d", k.name, n)
		}
	}
}

func TestSatAddBoundaries(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		a := []uint8{255, 255, 200, 0, 1}
		b := []uint8{1, 255, 100, 0, 1}
		SatAdd(a, b)
		assert.Equal(t, []uint8{255, 255, 255, 0, 2}, a)
	})
	t.Run("int8", func(t *testing.T) {
		a := []int8{127, 127, -128, -128, 100, -100, 1}
		b := []int8{1, 127, -1, -128, 27, -28, 1}
		SatAdd(a, b)
		assert.Equal(t, []int8{127, 127, -128, -128, 127, -128, 2}, a)
	})
	t.Run("int32", func(t *testing.T) {
		a := []int32{math.MaxInt32, math.MinInt32, 5}
		b := []int32{1, -1, 5}
		SatAdd(a, b)
		assert.Equal(t, []int32{math.MaxInt32, math.MinInt32, 10}, a)
	})
}

func TestSatSubBoundaries(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		a := []uint8{0, 1, 100, 255}
		b := []uint8{1, 2, 50, 255}
		SatSub(a, b)
		assert.Equal(t, []uint8{0, 0, 50, 0}, a)
	})
	t.Run("int8", func(t *testing.T) {
		a := []int8{-128, 127, 0, 50}
		b := []int8{1, -1, -128, 25}
		SatSub(a, b)
		assert.Equal(t, []int8{-128, 127, 127, 25}, a)
	})
	t.Run("int64", func(t *testing.T) {
		a := []int64{math.MinInt64, math.MaxInt64}
		b := []int64{math.MaxInt64, math.MinInt64}
		SatSub(a, b)
		assert.Equal(t, []int64{math.MinInt64, math.MaxInt64}, a)
	})
}

func TestWrappingIntOps(t *testing.T) {
	a := []uint8{255, 128}
	AddInts(a, []uint8{1, 128})
	assert.Equal(t, []uint8{0, 0}, a)

	s := []int8{-128}
	SubInts(s, []int8{1})
	assert.Equal(t, []int8{127}, s)

	m := []int32{math.MaxInt32}
	MulInts(m, []int32{2})
	assert.Equal(t, []int32{-2}, m)
}

func TestSignedLimits(t *testing.T) {
	hi8, lo8 := signedLimits[int8]()
	assert.Equal(t, int8(math.MaxInt8), hi8)
	assert.Equal(t, int8(math.MinInt8), lo8)

	hi64, lo64 := signedLimits[int64]()
	assert.Equal(t, int64(math.MaxInt64), hi64)
	assert.Equal(t, int64(math.MinInt64), lo64)

	assert.True(t, isUnsigned[uint16]())
	assert.False(t, isUnsigned[int16]())
}

func TestReduceSumPairwiseTree(t *testing.T) {
	// Lane order is fixed: ((l0+l1)+(l2+l3)) + ((l4+l5)+(l6+l7)).
	v := []float32{1, 1e8, -1e8, 1}
	got := ReduceSum(v)
	want := (v[0] + v[1]) + (v[2] + v[3])
	require.Equal(t, math.Float32bits(want), math.Float32bits(got))

	// A left fold gives a different rounding for this input.
	fold := ((v[0] + v[1]) + v[2]) + v[3]
	assert.NotEqual(t, math.Float32bits(fold), math.Float32bits(got))
}

func TestReduceSumWraps(t *testing.T) {
	assert.Equal(t, int8(-128), ReduceSum([]int8{-32, -32, -32, -32}))
	assert.Equal(t, uint8(4), ReduceSum([]uint8{65, 65, 65, 65}))
}

func TestReduceMinMaxFloatsNaN(t *testing.T) {
	nan := float64(math.NaN())
	assert.True(t, math.IsNaN(ReduceMinFloats([]float64{1, nan, 3, 4})))
	assert.True(t, math.IsNaN(ReduceMaxFloats([]float64{1, 2, nan, 4})))
	assert.Equal(t, float64(-3), ReduceMinFloats([]float64{1, -3, 3, 4}))
	assert.Equal(t, float64(4), ReduceMaxFloats([]float64{1, -3, 3, 4}))
}

func TestNanMinMaxPropagation(t *testing.T) {
	nan := float32(math.NaN())
	assert.True(t, math.IsNaN(float64(nanMin(nan, 1))))
	assert.True(t, math.IsNaN(float64(nanMin(1, nan))))
	assert.True(t, math.IsNaN(float64(nanMax(nan, 1))))
	assert.Equal(t, float32(1), nanMin(float32(1), 2))
	assert.Equal(t, float32(2), nanMax(float32(1), 2))
}

func TestMulAddIsFused(t *testing.T) {
	a := []float64{1.0000001}
	b := []float64{1.0000001}
	c := []float64{-1.0000002}
	want := math.FMA(a[0], b[0], c[0])
	MulAddF64(a, b, c)
	assert.Equal(t, want, a[0])

	af := []float32{3.14159}
	bf := []float32{2.71828}
	cf := []float32{-8.5}
	wantf := float32(math.FMA(float64(af[0]), float64(bf[0]), float64(cf[0])))
	MulAddF32(af, bf, cf)
	assert.Equal(t, wantf, af[0])
}

func TestMulAddF32SingleRounding(t *testing.T) {
	// 24929 * 673 = 2^24+1, the exact midpoint between two adjacent
	// float32 values. The tiny addend lands the exact result just above
	// the midpoint, so a fused operation must round up. Routing through a
	// rounded float64 sum first snaps the value back onto the midpoint
	// and ties-to-even downward.
	a := []float32{24929}
	b := []float32{673}
	c := []float32{0x1p-30}
	MulAddF32(a, b, c)
	assert.Equal(t, float32(16777218), a[0])

	// Same boundary mirrored to the downward nudge.
	a = []float32{-24929}
	b = []float32{673}
	c = []float32{-0x1p-30}
	MulAddF32(a, b, c)
	assert.Equal(t, float32(-16777218), a[0])

	// An exactly representable midpoint still ties to even.
	a = []float32{24929}
	b = []float32{673}
	c = []float32{0}
	MulAddF32(a, b, c)
	assert.Equal(t, float32(16777216), a[0])
}

func TestFmaF32Specials(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	assert.True(t, math.IsNaN(float64(fmaF32(nan, 1, 1))))
	assert.True(t, math.IsNaN(float64(fmaF32(1, 1, nan))))
	assert.True(t, math.IsNaN(float64(fmaF32(inf, 1, -inf))))
	assert.Equal(t, inf, fmaF32(inf, 2, 3))
	assert.Equal(t, float32(7), fmaF32(2, 3, 1))
}

func TestActiveNamesAPath(t *testing.T) {
	switch p := Active(); p {
	case "generic", "sse2", "avx2", "neon":
	default:
		t.Fatalf("unexpected lowering path %q", p)
	}
}

func TestNoSimdEnvParsing(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true}, // any non-boolean value counts as set
	}
	for _, tc := range tests {
		t.Setenv("GOSIMD_NO_SIMD", tc.val)
		assert.Equal(t, tc.want, noSimdEnv(), "GOSIMD_NO_SIMD=%q", tc.val)
	}
}

func TestNoSimdEnvForcesGenericPath(t *testing.T) {
	// Kernel binding happens at package init, so the override has to be
	// observed by a fresh process. Re-exec the test binary with the
	// variable set and check which path it bound.
	if os.Getenv("GOSIMD_REPORT_PATH") == "1" {
		fmt.Println(Active())
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestNoSimdEnvForcesGenericPath$")
	cmd.Env = append(os.Environ(), "GOSIMD_REPORT_PATH=1", "GOSIMD_NO_SIMD=1")
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "generic", strings.TrimSpace(string(out)))
}
