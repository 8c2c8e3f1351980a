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

package cpufeat

import "sync"

// ProbeCount returns how many times the CPU probe has executed.
func ProbeCount() int {
	return int(probeCount.Load())
}

// ResetForTest discards the registry and probe counter so a test can
// exercise first-query initialization again.
func ResetForTest() {
	initOnce = sync.Once{}
	registry = nil
	probeCount.Store(0)
}
