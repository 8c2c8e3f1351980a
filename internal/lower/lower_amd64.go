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

//go:build amd64

package lower

import "github.com/ajroetker/go-simd/cpufeat"

// Kernel binding for x86-64. SSE2 is part of the amd64 baseline, so the
// 128-bit blocked kernels bind unconditionally. The 256-bit blocked kernels
// require AVX2 and FMA and bind only after the cpufeat gate confirms both;
// on older CPUs the process keeps the 128-bit path for its whole lifetime.
func init() {
	if noSimdEnv() {
		return
	}
	bind128()
	if cpufeat.Has("avx2") && cpufeat.Has("fma") {
		bind256()
	}
}

func bind128() {
	activePath = "sse2"
	AddF32 = addF32Block4
	SubF32 = subF32Block4
	MulF32 = mulF32Block4
	DivF32 = divF32Block4
	AddF64 = addF64Block2
	SubF64 = subF64Block2
	MulF64 = mulF64Block2
	DivF64 = divF64Block2
}

func bind256() {
	activePath = "avx2"
	AddF32 = addF32Block8
	SubF32 = subF32Block8
	MulF32 = mulF32Block8
	DivF32 = divF32Block8
	AddF64 = addF64Block4
	SubF64 = subF64Block4
	MulF64 = mulF64Block4
	DivF64 = divF64Block4
}
