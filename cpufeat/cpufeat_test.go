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

package cpufeat_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-simd/cpufeat"
)

func TestIsSupportedKnownFlags(t *testing.T) {
	for _, name := range cpufeat.Names() {
		_, err := cpufeat.IsSupported(name)
		assert.NoError(t, err, "catalog flag %q must be recognized", name)
	}
}

func TestIsSupportedUnknownFlag(t *testing.T) {
	_, err := cpufeat.IsSupported("avx99")
	var unknown *cpufeat.UnknownFeatureError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "avx99", unknown.Name)
	assert.Contains(t, err.Error(), `"avx99"`)
}

func TestHasPanicsOnUnknownFlag(t *testing.T) {
	assert.Panics(t, func() { cpufeat.Has("no-such-flag") })
	assert.NotPanics(t, func() { cpufeat.Has("avx2") })
}

func TestForeignArchFlagsAreFalseNotErrors(t *testing.T) {
	// Every catalog name is recognized on every architecture; at most one
	// architecture's flags can be true.
	sve, err := cpufeat.IsSupported("sve")
	require.NoError(t, err)
	avx2, err := cpufeat.IsSupported("avx2")
	require.NoError(t, err)
	assert.False(t, sve && avx2, "x86 and arm64 flags cannot both be set")
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := cpufeat.Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "sse2")
	assert.Contains(t, names, "avx512")
	assert.Contains(t, names, "neon")
}

func TestFeaturesReturnsCopy(t *testing.T) {
	f := cpufeat.Features()
	orig := f["avx2"]
	f["avx2"] = !orig
	assert.Equal(t, orig, cpufeat.Has("avx2"), "mutating the snapshot must not affect the registry")
}

func TestProbeRunsExactlyOnceUnderConcurrency(t *testing.T) {
	cpufeat.ResetForTest()

	const goroutines = 64
	results := make([]bool, goroutines)
	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		i := i
		g.Go(func() error {
			ok, err := cpufeat.IsSupported("avx2")
			if err != nil {
				return err
			}
			results[i] = ok
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, cpufeat.ProbeCount(), "concurrent first queries must probe once")
	for i := 1; i < goroutines; i++ {
		assert.Equal(t, results[0], results[i], "goroutine %d saw a different answer", i)
	}

	cpufeat.Has("avx2")
	cpufeat.Has("neon")
	assert.Equal(t, 1, cpufeat.ProbeCount(), "later queries must not re-probe")
}
