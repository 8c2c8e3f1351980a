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

// Command simdinfo prints the CPU capabilities visible to go-simd and the
// kernel path the lowering layer bound for this machine.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-simd/cpufeat"
	"github.com/ajroetker/go-simd/internal/lower"
)

var flagName string

func main() {
	root := &cobra.Command{
		Use:   "simdinfo",
		Short: "Show detected CPU features and the active SIMD kernel path",
		Args:  cobra.NoArgs,
		RunE:  run,

		SilenceUsage: true,
	}
	root.Flags().StringVar(&flagName, "flag", "", "query a single feature flag; exit 1 if unsupported, 2 if unknown")

	if err := root.Execute(); err != nil {
		var unknown *cpufeat.UnknownFeatureError
		if errors.As(err, &unknown) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if flagName != "" {
		ok, err := cpufeat.IsSupported(flagName)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", flagName, ok)
		if !ok {
			return fmt.Errorf("%s not supported", flagName)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "arch:    %s\n", runtime.GOARCH)
	if vendor := cpufeat.Vendor(); vendor != "" {
		fmt.Fprintf(out, "vendor:  %s\n", vendor)
	}
	fmt.Fprintf(out, "kernels: %s\n\n", lower.Active())

	features := cpufeat.Features()
	for _, name := range cpufeat.Names() {
		fmt.Fprintf(out, "%-10s %v\n", name, features[name])
	}
	return nil
}
