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

// Command simdgen generates the per-shape vector type files of the simd
// package (v64.go, v128.go, v256.go, v512.go) from the lane-kind table.
//
// Usage:
//
//	simdgen -out ./simd
//
// Or via go:generate in the simd package:
//
//	//go:generate go run github.com/ajroetker/go-simd/cmd/simdgen -out .
//
// Each file holds every vector shape of one total bit width together with
// the mask types for that width's lane geometries. Only shapes with at
// least two lanes are emitted.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

var outDir = flag.String("out", ".", "Output directory for the generated files")

func main() {
	flag.Parse()

	for _, width := range widths {
		src, err := genWidth(width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "simdgen: %v\n", err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("v%d.go", width))
		if err := os.WriteFile(path, src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "simdgen: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
	}
}

// kind describes one lane type of the catalog.
type kind struct {
	name   string // vector name prefix ("U32")
	goType string // lane Go type ("uint32")
	kindID string // simd.LaneKind constant name ("Uint32")
	bits   int
	class  class
}

type class int

const (
	signed class = iota
	unsigned
	float
)

var kinds = []kind{
	{"I8", "int8", "Int8", 8, signed},
	{"U8", "uint8", "Uint8", 8, unsigned},
	{"I16", "int16", "Int16", 16, signed},
	{"U16", "uint16", "Uint16", 16, unsigned},
	{"I32", "int32", "Int32", 32, signed},
	{"U32", "uint32", "Uint32", 32, unsigned},
	{"I64", "int64", "Int64", 64, signed},
	{"U64", "uint64", "Uint64", 64, unsigned},
	{"F32", "float32", "Float32", 32, float},
	{"F64", "float64", "Float64", 64, float},
}

var widths = []int{64, 128, 256, 512}

var laneWords = map[int]string{
	2: "two", 4: "four", 8: "eight", 16: "sixteen", 32: "thirty-two", 64: "sixty-four",
}

func genWidth(width int) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `// Code generated by simdgen. DO NOT EDIT.

package simd

import (
	"fmt"

	"github.com/ajroetker/go-simd/internal/lower"
)
`)

	var shapes []kind
	for _, k := range kinds {
		if width/k.bits >= 2 {
			shapes = append(shapes, k)
		}
	}
	seen := map[int]bool{}
	for _, k := range shapes {
		if !seen[k.bits] {
			seen[k.bits] = true
			emitMask(&buf, k.bits, width/k.bits)
		}
	}
	for _, k := range shapes {
		emitVector(&buf, width, k)
	}

	// imports.Process both formats and verifies the emitted source parses.
	path := fmt.Sprintf("v%d.go", width)
	return imports.Process(path, buf.Bytes(), nil)
}

func emitMask(buf *bytes.Buffer, bits, lanes int) {
	m := fmt.Sprintf("M%dx%d", bits, lanes)
	word := laneWords[lanes]
	fmt.Fprintf(buf, `
// %[1]s is a mask of %[2]s boolean lanes, as produced by comparisons on
// vectors with %[2]s %[3]d-bit lanes.
type %[1]s [%[4]d]bool

// And returns the lane-wise AND of m and w.
func (m %[1]s) And(w %[1]s) %[1]s {
	for i := range m {
		m[i] = m[i] && w[i]
	}
	return m
}

// Or returns the lane-wise OR of m and w.
func (m %[1]s) Or(w %[1]s) %[1]s {
	for i := range m {
		m[i] = m[i] || w[i]
	}
	return m
}

// Xor returns the lane-wise XOR of m and w.
func (m %[1]s) Xor(w %[1]s) %[1]s {
	for i := range m {
		m[i] = m[i] != w[i]
	}
	return m
}

// Not returns m with every lane inverted.
func (m %[1]s) Not() %[1]s {
	for i := range m {
		m[i] = !m[i]
	}
	return m
}

// All reports whether every lane is true.
func (m %[1]s) All() bool {
	for _, b := range m {
		if !b {
			return false
		}
	}
	return true
}

// Any reports whether at least one lane is true.
func (m %[1]s) Any() bool {
	for _, b := range m {
		if b {
			return true
		}
	}
	return false
}

// CountTrue returns the number of true lanes.
func (m %[1]s) CountTrue() int {
	c := 0
	for _, b := range m {
		if b {
			c++
		}
	}
	return c
}

// Extract returns lane i. A lane index outside [0, %[4]d) returns
// *OutOfRangeError.
func (m %[1]s) Extract(i int) (bool, error) {
	if i < 0 || i >= %[4]d {
		return false, &OutOfRangeError{Index: i, Lanes: %[4]d}
	}
	return m[i], nil
}

// ExtractUnchecked returns lane i without range checking. Only for indices
// already validated against Lanes; an invalid index panics.
func (m %[1]s) ExtractUnchecked(i int) bool {
	return m[i]
}
`, m, word, bits, lanes)
}

func emitVector(buf *bytes.Buffer, width int, k kind) {
	lanes := width / k.bits
	n := fmt.Sprintf("%sx%d", k.name, lanes)
	m := fmt.Sprintf("M%dx%d", k.bits, lanes)
	word := laneWords[lanes]

	params := ""
	for i := 0; i < lanes; i++ {
		if i > 0 {
			params += ", "
		}
		params += fmt.Sprintf("e%d", i)
	}

	fmt.Fprintf(buf, `
// %[1]s is a %[2]d-bit vector of %[3]s %[4]s lanes.
type %[1]s [%[5]d]%[4]s

// New%[1]s returns a vector with the given lanes, in order.
func New%[1]s(%[6]s %[4]s) %[1]s {
	return %[1]s{%[6]s}
}

// Splat%[1]s returns a vector with every lane set to v.
func Splat%[1]s(v %[4]s) %[1]s {
	var r %[1]s
	for i := range r {
		r[i] = v
	}
	return r
}

// Load%[1]s returns a vector holding the first %[5]d elements of src.
func Load%[1]s(src []%[4]s) (%[1]s, error) {
	var r %[1]s
	if len(src) < %[5]d {
		return r, fmt.Errorf("simd: load %[1]s from %%d elements: %%w", len(src), ErrShortSlice)
	}
	copy(r[:], src)
	return r, nil
}

// Store writes the lanes, in order, to the front of dst.
func (v %[1]s) Store(dst []%[4]s) error {
	if len(dst) < %[5]d {
		return fmt.Errorf("simd: store %[1]s into %%d elements: %%w", len(dst), ErrShortSlice)
	}
	copy(dst, v[:])
	return nil
}

// Lanes returns the number of lanes, %[5]d.
func (%[1]s) Lanes() int { return %[5]d }

// Kind returns the lane type, %[7]s.
func (%[1]s) Kind() LaneKind { return %[7]s }
`, n, width, word, k.goType, lanes, params, k.kindID)

	switch k.class {
	case signed, unsigned:
		emitIntOps(buf, n, k)
	case float:
		emitFloatOps(buf, n, k)
	}
	emitCommonOps(buf, n, m, k, lanes)
}

func emitIntOps(buf *bytes.Buffer, n string, k kind) {
	fmt.Fprintf(buf, `
// Add returns the lane-wise sum of v and w, wrapping on overflow.
func (v %[1]s) Add(w %[1]s) %[1]s {
	lower.AddInts(v[:], w[:])
	return v
}

// Sub returns the lane-wise difference of v and w, wrapping on overflow.
func (v %[1]s) Sub(w %[1]s) %[1]s {
	lower.SubInts(v[:], w[:])
	return v
}

// Mul returns the lane-wise product of v and w, keeping the low %[2]d bits
// of each product.
func (v %[1]s) Mul(w %[1]s) %[1]s {
	lower.MulInts(v[:], w[:])
	return v
}

// SaturatingAdd returns the lane-wise sum of v and w, clamping each lane to
// the %[3]s range instead of wrapping.
func (v %[1]s) SaturatingAdd(w %[1]s) %[1]s {
	lower.SatAdd(v[:], w[:])
	return v
}

// SaturatingSub returns the lane-wise difference of v and w, clamping each
// lane to the %[3]s range instead of wrapping.
func (v %[1]s) SaturatingSub(w %[1]s) %[1]s {
	lower.SatSub(v[:], w[:])
	return v
}

// And returns the lane-wise bitwise AND of v and w.
func (v %[1]s) And(w %[1]s) %[1]s {
	lower.And(v[:], w[:])
	return v
}

// Or returns the lane-wise bitwise OR of v and w.
func (v %[1]s) Or(w %[1]s) %[1]s {
	lower.Or(v[:], w[:])
	return v
}

// Xor returns the lane-wise bitwise XOR of v and w.
func (v %[1]s) Xor(w %[1]s) %[1]s {
	lower.Xor(v[:], w[:])
	return v
}

// AndNot returns the lane-wise v AND (NOT w).
func (v %[1]s) AndNot(w %[1]s) %[1]s {
	lower.AndNot(v[:], w[:])
	return v
}

// Not returns v with every lane complemented.
func (v %[1]s) Not() %[1]s {
	lower.Not(v[:])
	return v
}
`, n, k.bits, k.goType)

	shrDoc := "(logical shift)"
	if k.class == signed {
		shrDoc = "(arithmetic shift, filling\n// with the sign bit)"
	}
	fmt.Fprintf(buf, `
// Shl returns v with every lane shifted left by n bits. Counts of %[2]d or
// more yield zero lanes.
func (v %[1]s) Shl(n uint) %[1]s {
	lower.Shl(v[:], n)
	return v
}

// Shr returns v with every lane shifted right by n bits %[3]s.
func (v %[1]s) Shr(n uint) %[1]s {
	lower.Shr(v[:], n)
	return v
}

// Min returns the lane-wise minimum of v and w.
func (v %[1]s) Min(w %[1]s) %[1]s {
	lower.MinInts(v[:], w[:])
	return v
}

// Max returns the lane-wise maximum of v and w.
func (v %[1]s) Max(w %[1]s) %[1]s {
	lower.MaxInts(v[:], w[:])
	return v
}
`, n, k.bits, shrDoc)

	if k.class == signed {
		fmt.Fprintf(buf, `
// Abs returns v with every lane replaced by its absolute value. The most
// negative %[2]s has no positive counterpart and stays unchanged.
func (v %[1]s) Abs() %[1]s {
	lower.AbsSigned(v[:])
	return v
}

// Neg returns v with every lane negated, wrapping at the most negative
// %[2]s.
func (v %[1]s) Neg() %[1]s {
	lower.NegSigned(v[:])
	return v
}
`, n, k.goType)
	}
}

func emitFloatOps(buf *bytes.Buffer, n string, k kind) {
	suf := "F64"
	if k.goType == "float32" {
		suf = "F32"
	}
	fmt.Fprintf(buf, `
// Add returns the lane-wise IEEE-754 sum of v and w.
func (v %[1]s) Add(w %[1]s) %[1]s {
	lower.Add%[2]s(v[:], w[:])
	return v
}

// Sub returns the lane-wise IEEE-754 difference of v and w.
func (v %[1]s) Sub(w %[1]s) %[1]s {
	lower.Sub%[2]s(v[:], w[:])
	return v
}

// Mul returns the lane-wise IEEE-754 product of v and w.
func (v %[1]s) Mul(w %[1]s) %[1]s {
	lower.Mul%[2]s(v[:], w[:])
	return v
}

// Div returns the lane-wise IEEE-754 quotient of v and w.
func (v %[1]s) Div(w %[1]s) %[1]s {
	lower.Div%[2]s(v[:], w[:])
	return v
}

// Neg returns v with every lane negated, including zeros (-0 and +0 swap).
func (v %[1]s) Neg() %[1]s {
	lower.NegFloats(v[:])
	return v
}

// Abs returns v with the sign bit of every lane cleared.
func (v %[1]s) Abs() %[1]s {
	lower.Abs%[2]s(v[:])
	return v
}

// Sqrt returns the lane-wise square root of v.
func (v %[1]s) Sqrt() %[1]s {
	lower.Sqrt%[2]s(v[:])
	return v
}

// MulAdd returns v*w + x lane-wise, fused with a single rounding per lane.
func (v %[1]s) MulAdd(w, x %[1]s) %[1]s {
	lower.MulAdd%[2]s(v[:], w[:], x[:])
	return v
}

// Min returns the lane-wise minimum of v and w. A NaN in either lane
// produces a NaN lane.
func (v %[1]s) Min(w %[1]s) %[1]s {
	lower.MinFloats(v[:], w[:])
	return v
}

// Max returns the lane-wise maximum of v and w. A NaN in either lane
// produces a NaN lane.
func (v %[1]s) Max(w %[1]s) %[1]s {
	lower.MaxFloats(v[:], w[:])
	return v
}
`, n, suf)
}

func emitCommonOps(buf *bytes.Buffer, n, m string, k kind, lanes int) {
	fmt.Fprintf(buf, `
// Eq compares lane-wise for equality. The result is a mask vector with one
// boolean lane per compared pair, following native SIMD compare semantics
// rather than scalar equality.
func (v %[1]s) Eq(w %[1]s) %[2]s {
	var m %[2]s
	lower.Eq(m[:], v[:], w[:])
	return m
}

// Ne compares lane-wise for inequality, returning a mask vector.
func (v %[1]s) Ne(w %[1]s) %[2]s {
	var m %[2]s
	lower.NotEq(m[:], v[:], w[:])
	return m
}

// Lt compares lane-wise with <, returning a mask vector.
func (v %[1]s) Lt(w %[1]s) %[2]s {
	var m %[2]s
	lower.Less(m[:], v[:], w[:])
	return m
}

// Le compares lane-wise with <=, returning a mask vector.
func (v %[1]s) Le(w %[1]s) %[2]s {
	var m %[2]s
	lower.LessEq(m[:], v[:], w[:])
	return m
}

// Gt compares lane-wise with >, returning a mask vector.
func (v %[1]s) Gt(w %[1]s) %[2]s {
	var m %[2]s
	lower.Greater(m[:], v[:], w[:])
	return m
}

// Ge compares lane-wise with >=, returning a mask vector.
func (v %[1]s) Ge(w %[1]s) %[2]s {
	var m %[2]s
	lower.GreaterEq(m[:], v[:], w[:])
	return m
}

// Extract returns lane i. A lane index outside [0, %[3]d) returns
// *OutOfRangeError.
func (v %[1]s) Extract(i int) (%[4]s, error) {
	if i < 0 || i >= %[3]d {
		return 0, &OutOfRangeError{Index: i, Lanes: %[3]d}
	}
	return v[i], nil
}

// ExtractUnchecked returns lane i without range checking. Only for indices
// already validated against Lanes; an invalid index panics.
func (v %[1]s) ExtractUnchecked(i int) %[4]s {
	return v[i]
}

// Replace returns v with lane i set to x. A lane index outside [0, %[3]d)
// returns *OutOfRangeError.
func (v %[1]s) Replace(i int, x %[4]s) (%[1]s, error) {
	if i < 0 || i >= %[3]d {
		return %[1]s{}, &OutOfRangeError{Index: i, Lanes: %[3]d}
	}
	v[i] = x
	return v, nil
}

// ReplaceUnchecked returns v with lane i set to x, without range checking.
func (v %[1]s) ReplaceUnchecked(i int, x %[4]s) %[1]s {
	v[i] = x
	return v
}

// Shuffle returns a vector whose lane i holds v's lane idx[i]. Any index
// outside [0, %[3]d) returns *OutOfRangeError.
func (v %[1]s) Shuffle(idx [%[3]d]int) (%[1]s, error) {
	var r %[1]s
	for i, j := range idx {
		if j < 0 || j >= %[3]d {
			return %[1]s{}, &OutOfRangeError{Index: j, Lanes: %[3]d}
		}
		r[i] = v[j]
	}
	return r, nil
}
`, n, m, lanes, k.goType)

	sumDoc := ",\n// wrapping on overflow"
	nanDoc := ""
	redMin := "ReduceMinInts"
	redMax := "ReduceMaxInts"
	if k.class == float {
		sumDoc = " so\n// rounding is reproducible bit-for-bit across calls"
		nanDoc = ". Any NaN lane makes the\n// result NaN"
		redMin = "ReduceMinFloats"
		redMax = "ReduceMaxFloats"
	}
	fmt.Fprintf(buf, `
// ReduceSum returns the sum of all lanes, combined as a fixed pairwise tree%[5]s.
func (v %[1]s) ReduceSum() %[4]s {
	return lower.ReduceSum(v[:])
}

// ReduceMin returns the smallest lane, combined pairwise%[6]s.
func (v %[1]s) ReduceMin() %[4]s {
	return lower.%[7]s(v[:])
}

// ReduceMax returns the largest lane, combined pairwise%[6]s.
func (v %[1]s) ReduceMax() %[4]s {
	return lower.%[8]s(v[:])
}

// Select%[1]s returns a vector taking each lane from a where m is true and
// from b where it is false.
func Select%[1]s(m %[2]s, a, b %[1]s) %[1]s {
	for i := range a {
		if !m[i] {
			a[i] = b[i]
		}
	}
	return a
}
`, n, m, lanes, k.goType, sumDoc, nanDoc, redMin, redMax)
}
