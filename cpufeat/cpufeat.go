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

// Package cpufeat answers whether a named CPU instruction-set extension is
// present on the machine running this process.
//
// The first query from any goroutine probes the CPU once and publishes an
// immutable registry; every later query, from any goroutine, reads that
// snapshot. A CPU's capability set cannot change while a process runs, so
// the registry is never invalidated.
//
// The flag catalog is portable: every name is recognized on every
// architecture, and flags belonging to a different architecture are simply
// absent (false). Only a name outside the catalog is an error: a typo that
// silently read as "unsupported" would be indistinguishable from a missing
// capability, so it is surfaced as *UnknownFeatureError instead.
//
// cpufeat only reports capabilities. Choosing between a code path that
// needs an extension and one that does not is the caller's decision:
//
//	if cpufeat.Has("avx2") {
//		sumAVX2(data)
//	} else {
//		sumBaseline(data)
//	}
package cpufeat

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"
)

// UnknownFeatureError reports a query for a feature flag name outside the
// catalog. It indicates a programmer error (typically a typo), not a
// property of the running machine.
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("cpufeat: unknown feature flag %q", e.Name)
}

// featureNames is the catalog of recognized flag names across all supported
// architectures. Names for a foreign architecture are recognized but false.
var featureNames = []string{
	// x86-64
	"sse2", "sse3", "ssse3", "sse4.1", "sse4.2",
	"avx", "avx2", "fma", "f16c", "popcnt", "bmi1", "bmi2",
	"avx512f", "avx512bw", "avx512dq", "avx512vl",
	// avx512 is the combined check for a usable 512-bit path: F, BW, DQ
	// and VL together, the subset common code actually needs.
	"avx512",
	// arm64
	"neon", "fp16", "dotprod", "sve", "crc32", "aes", "sha2",
}

var (
	initOnce sync.Once

	// registry maps every catalog name to its detected state. Written once
	// inside initOnce, read-only afterwards.
	registry map[string]bool

	// probeCount counts executions of the probe. It exists so tests can
	// assert the probe runs exactly once under concurrent first queries.
	probeCount atomic.Uint32
)

func initRegistry() {
	initOnce.Do(func() {
		probeCount.Add(1)
		reg := make(map[string]bool, len(featureNames))
		for _, name := range featureNames {
			reg[name] = false
		}
		probe(reg)
		registry = reg
	})
}

// IsSupported reports whether the running CPU has the named capability. The
// first call probes the CPU; all calls after that return the cached result.
// A name outside the catalog returns *UnknownFeatureError.
func IsSupported(name string) (bool, error) {
	initRegistry()
	ok, known := registry[name]
	if !known {
		return false, &UnknownFeatureError{Name: name}
	}
	return ok, nil
}

// Has is IsSupported for call sites with literal flag names. It panics on a
// name outside the catalog, since that is a programmer error no runtime
// handling can fix.
func Has(name string) bool {
	ok, err := IsSupported(name)
	if err != nil {
		panic(err)
	}
	return ok
}

// Names returns the flag catalog, sorted.
func Names() []string {
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	sort.Strings(names)
	return names
}

// Features returns a copy of the detection results for the whole catalog.
func Features() map[string]bool {
	initRegistry()
	out := make(map[string]bool, len(registry))
	for name, ok := range registry {
		out[name] = ok
	}
	return out
}

// Vendor returns the CPU vendor string when the platform exposes one
// ("GenuineIntel", "AuthenticAMD", ...), or "" otherwise.
func Vendor() string {
	return cpuid.CPU.VendorString
}
