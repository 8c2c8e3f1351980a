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

package cpufeat

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// probe fills in the x86-64 flags. golang.org/x/sys/cpu covers the common
// CPUID bits; klauspost/cpuid supplies the combined AVX-512 subset check,
// since a 512-bit code path needs F+BW+DQ+VL together and testing them
// individually at every call site invites mistakes.
func probe(reg map[string]bool) {
	reg["sse2"] = cpu.X86.HasSSE2
	reg["sse3"] = cpu.X86.HasSSE3
	reg["ssse3"] = cpu.X86.HasSSSE3
	reg["sse4.1"] = cpu.X86.HasSSE41
	reg["sse4.2"] = cpu.X86.HasSSE42
	reg["avx"] = cpu.X86.HasAVX
	reg["avx2"] = cpu.X86.HasAVX2
	reg["fma"] = cpu.X86.HasFMA
	reg["f16c"] = cpuid.CPU.Supports(cpuid.F16C)
	reg["popcnt"] = cpu.X86.HasPOPCNT
	reg["bmi1"] = cpu.X86.HasBMI1
	reg["bmi2"] = cpu.X86.HasBMI2
	reg["avx512f"] = cpu.X86.HasAVX512F
	reg["avx512bw"] = cpu.X86.HasAVX512BW
	reg["avx512dq"] = cpu.X86.HasAVX512DQ
	reg["avx512vl"] = cpu.X86.HasAVX512VL
	reg["avx512"] = cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512DQ, cpuid.AVX512VL)
}
