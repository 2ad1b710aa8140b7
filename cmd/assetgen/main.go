// assetgen generates placeholder assets for the flow-buster rhythm
// runner: sprite/UI images, sine-tone audio stand-ins, and missing
// level-definition JSON files.
//
// Usage:
//
//	assetgen [-base dir] [-style raster|markup] [-config file.toml]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/flowbuster/assetgen/generator"
)

func main() {
	var (
		base       string
		styleStr   string
		configPath string
	)

	flag.StringVar(&base, "base", "", "Base directory for generated assets (default \".\")")
	flag.StringVar(&styleStr, "style", "", "Generation style: 'raster' (PNG+WAV) or 'markup' (SVG+JSON stubs)")
	flag.StringVar(&configPath, "config", "", "Optional TOML config file")
	flag.Parse()

	cfg := generator.DefaultConfig()

	if configPath != "" {
		loaded, err := generator.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags win over the config file.
	if base != "" {
		cfg.BaseDir = base
	}
	if styleStr != "" {
		style, err := generator.ParseStyle(styleStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Style = style
	}

	gen := generator.New(cfg)
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Placeholder assets ready under %s (style: %s)\n", cfg.BaseDir, cfg.Style)
}
