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

package cpufeat

import "golang.org/x/sys/cpu"

// probe fills in the arm64 flags from the kernel-reported hwcaps. NEON
// (Advanced SIMD) is required by the Go arm64 port, but the hwcap bit is
// still read rather than assumed.
func probe(reg map[string]bool) {
	reg["neon"] = cpu.ARM64.HasASIMD
	reg["fp16"] = cpu.ARM64.HasASIMDHP
	reg["dotprod"] = cpu.ARM64.HasASIMDDP
	reg["sve"] = cpu.ARM64.HasSVE
	reg["crc32"] = cpu.ARM64.HasCRC32
	reg["aes"] = cpu.ARM64.HasAES
	reg["sha2"] = cpu.ARM64.HasSHA2
}
