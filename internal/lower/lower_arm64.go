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

//go:build arm64

package lower

import "github.com/ajroetker/go-simd/cpufeat"

// Kernel binding for arm64. NEON (Advanced SIMD) is required by the arm64
// port of Go, but the gate is still consulted so the env override and any
// exotic runtime reporting are honored uniformly.
func init() {
	if noSimdEnv() {
		return
	}
	if cpufeat.Has("neon") {
		activePath = "neon"
		AddF32 = addF32Block4
		SubF32 = subF32Block4
		MulF32 = mulF32Block4
		DivF32 = divF32Block4
		AddF64 = addF64Block2
		SubF64 = subF64Block2
		MulF64 = mulF64Block2
		DivF64 = divF64Block2
	}
}
