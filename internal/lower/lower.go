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

// Package lower maps portable vector operations onto the best implementation
// available for the compiled target.
//
// Every operation has a portable scalar-loop kernel that is always compiled
// and serves as the fallback. Per-architecture files (lower_amd64.go,
// lower_arm64.go) rebind the hot floating-point kernels during init to
// block-structured variants sized to the target's vector unit, after
// confirming the required CPU extension through the cpufeat gate. Selection
// therefore happens once, before any user code runs; no operation branches on
// CPU features per call.
//
// A kernel bound for a CPU extension must never be reachable on a machine
// lacking that extension. Executing such an instruction sequence is not a
// recoverable error, which is why binding happens only behind the cpufeat
// check and never silently per call.
package lower

import (
	"os"
	"strconv"
)

// lanes covers every scalar type that can appear in a vector lane.
type lanes interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ints covers the integer lane types.
type ints interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// signed covers the signed integer lane types.
type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// floats covers the floating-point lane types.
type floats interface {
	~float32 | ~float64
}

// activePath names the kernel set bound at init. The zero value is the
// portable scalar fallback; per-architecture init functions overwrite it.
var activePath = "generic"

// Active returns the name of the kernel path bound for this process
// ("generic", "sse2", "avx2", "neon").
func Active() string {
	return activePath
}

// noSimdEnv reports whether GOSIMD_NO_SIMD is set, which forces the scalar
// fallback regardless of CPU capabilities. Useful for testing and debugging.
func noSimdEnv() bool {
	val := os.Getenv("GOSIMD_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
