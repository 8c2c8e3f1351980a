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

import "github.com/ajroetker/go-simd/internal/lower"

// ActivePath reports which kernel set backs the vector operations, such as
// "generic", "sse2", "avx2" or "neon". The choice is made once at startup
// and never changes.
func ActivePath() string {
	return lower.Active()
}
