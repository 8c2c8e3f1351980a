package simd_test

import (
	"fmt"

	"github.com/ajroetker/go-simd/simd"
)

func ExampleNewU32x4() {
	a := simd.NewU32x4(1, 2, 3, 4)
	b := simd.SplatU32x4(10)
	fmt.Println(a.Add(b) == simd.NewU32x4(11, 12, 13, 14))
	// Output: true
}

func ExampleU32x4_Eq() {
	// Comparisons return a mask vector, not a single bool.
	a := simd.NewU32x4(1, 5, 3, 5)
	m := a.Eq(simd.SplatU32x4(5))
	fmt.Println(m.Any(), m.All(), m.CountTrue())
	// Output: true false 2
}

func ExampleU8x16_SaturatingAdd() {
	v := simd.SplatU8x16(250)
	step := simd.SplatU8x16(10)
	wrapped, _ := v.Add(step).Extract(0)
	clamped, _ := v.SaturatingAdd(step).Extract(0)
	fmt.Println(wrapped, clamped)
	// Output: 4 255
}
