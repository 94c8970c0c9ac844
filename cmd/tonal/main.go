// Tonal - perceptual colour conversion and scales
//
// Tonal converts colours between CSS models and builds tonal scales and
// design-token swatches for your themes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
