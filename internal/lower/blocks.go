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

// Block-structured float kernels. Each body processes a full-slice re-slice
// of fixed length so the compiler drops bounds checks and can keep the block
// in one vector register: 4x float32 / 2x float64 matches a 128-bit unit
// (SSE2, NEON), 8x float32 / 4x float64 a 256-bit unit (AVX2). The trailing
// loop only runs for vectors narrower than the block.

func addF32Block4(a, b []float32) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		x[0] += y[0]
		x[1] += y[1]
		x[2] += y[2]
		x[3] += y[3]
	}
	for ; i < len(a); i++ {
		a[i] += b[i]
	}
}

func subF32Block4(a, b []float32) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		x[0] -= y[0]
		x[1] -= y[1]
		x[2] -= y[2]
		x[3] -= y[3]
	}
	for ; i < len(a); i++ {
		a[i] -= b[i]
	}
}

func mulF32Block4(a, b []float32) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		x[0] *= y[0]
		x[1] *= y[1]
		x[2] *= y[2]
		x[3] *= y[3]
	}
	for ; i < len(a); i++ {
		a[i] *= b[i]
	}
}

func divF32Block4(a, b []float32) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		x[0] /= y[0]
		x[1] /= y[1]
		x[2] /= y[2]
		x[3] /= y[3]
	}
	for ; i < len(a); i++ {
		a[i] /= b[i]
	}
}

func addF32Block8(a, b []float32) {
	i := 0
	for ; i+8 <= len(a); i += 8 {
		x, y := a[i:i+8:i+8], b[i:i+8:i+8]
		x[0] += y[0]
		x[1] += y[1]
		x[2] += y[2]
		x[3] += y[3]
		x[4] += y[4]
		x[5] += y[5]
		x[6] += y[6]
		x[7] += y[7]
	}
	for ; i < len(a); i++ {
		a[i] += b[i]
	}
}

func subF32Block8(a, b []float32) {
	i := 0
	for ; i+8 <= len(a); i += 8 {
		x, y := a[i:i+8:i+8], b[i:i+8:i+8]
		x[0] -= y[0]
		x[1] -= y[1]
		x[2] -= y[2]
		x[3] -= y[3]
		x[4] -= y[4]
		x[5] -= y[5]
		x[6] -= y[6]
		x[7] -= y[7]
	}
	for ; i < len(a); i++ {
		a[i] -= b[i]
	}
}

func mulF32Block8(a, b []float32) {
	i := 0
	for ; i+8 <= len(a); i += 8 {
		x, y := a[i:i+8:i+8], b[i:i+8:i+8]
		x[0] *= y[0]
		x[1] *= y[1]
		x[2] *= y[2]
		x[3] *= y[3]
		x[4] *= y[4]
		x[5] *= y[5]
		x[6] *= y[6]
		x[7] *= y[7]
	}
	for ; i < len(a); i++ {
		a[i] *= b[i]
	}
}

func divF32Block8(a, b []float32) {
	i := 0
	for ; i+8 <= len(a); i += 8 {
		x, y := a[i:i+8:i+8], b[i:i+8:i+8]
		x[0] /= y[0]
		x[1] /= y[1]
		x[2] /= y[2]
		x[3] /= y[3]
		x[4] /= y[4]
		x[5] /= y[5]
		x[6] /= y[6]
		x[7] /= y[7]
	}
	for ; i < len(a); i++ {
		a[i] /= b[i]
	}
}

func addF64Block2(a, b []float64) {
	i := 0
	for ; i+2 <= len(a); i += 2 {
		x, y := a[i:i+2:i+2], b[i:i+2:i+2]
		x[0] += y[0]
		x[1] += y[1]
	}
	for ; i < len(a); i++ {
		a[i] += b[i]
	}
}

func subF64Block2(a, b []float64) {
	i := 0
	for ; i+2 <= len(a); i += 2 {
		x, y := a[i:i+2:i+2], b[i:i+2:i+2]
		x[0] -= y[0]
		x[1] -= y[1]
	}
	for ; i < len(a); i++ {
		a[i] -= b[i]
	}
}

func mulF64Block2(a, b []float64) {
	i := 0
	for ; i+2 <= len(a); i += 2 {
		x, y := a[i:i+2:i+2], b[i:i+2:i+2]
		x[0] *= y[0]
		x[1] *= y[1]
	}
	for ; i < len(a); i++ {
		a[i] *= b[i]
	}
}

func divF64Block2(a, b []float64) {
	i := 0
	for ; i+2 <= len(a); i += 2 {
		x, y := a[i:i+2:i+2], b[i:i+2:i+2]
		x[0] /= y[0]
		x[1] /= y[1]
	}
	for ; i < len(a); i++ {
		a[i] /= b[i]
	}
}

func addF64Block4(a, b []float64) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		x[0] += y[0]
		x[1] += y[1]
		x[2] += y[2]
		x[3] += y[3]
	}
	for ; i < len(a); i++ {
		a[i] += b[i]
	}
}

func subF64Block4(a, b []float64) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		x[0] -= y[0]
		x[1] -= y[1]
		x[2] -= y[2]
		x[3] -= y[3]
	}
	for ; i < len(a); i++ {
		a[i] -= b[i]
	}
}

func mulF64Block4(a, b []float64) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		x[0] *= y[0]
		x[1] *= y[1]
		x[2] *= y[2]
		x[3] *= y[3]
	}
	for ; i < len(a); i++ {
		a[i] *= b[i]
	}
}

func divF64Block4(a, b []float64) {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x, y := a[i:i+4:i+4], b[i:i+4:i+4]
		x[0] /= y[0]
		x[1] /= y[1]
		x[2] /= y[2]
		x[3] /= y[3]
	}
	for ; i < len(a); i++ {
		a[i] /= b[i]
	}
}
