package generator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Style selects which of the two generation strategies runs. The catalogs
// are shared; the backends and level formula differ.
type Style int

const (
	// StyleRaster produces true PNG pixels and real WAV tones.
	StyleRaster Style = iota
	// StyleMarkup produces SVG documents, JSON tone descriptors with
	// empty touch files, and the app icon.
	StyleMarkup
)

func (s Style) String() string {
	if s == StyleMarkup {
		return "markup"
	}
	return "raster"
}

// ParseStyle maps a config or flag value to a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "raster", "real":
		return StyleRaster, nil
	case "markup", "simple", "vector":
		return StyleMarkup, nil
	default:
		return StyleRaster, fmt.Errorf("unknown style %q (use raster or markup)", s)
	}
}

// Config controls one generation run.
type Config struct {
	BaseDir string
	Style   Style
}

// DefaultConfig generates raster assets under the current directory.
func DefaultConfig() Config {
	return Config{
		BaseDir: ".",
		Style:   StyleRaster,
	}
}

type fileConfig struct {
	BaseDir string `toml:"base_dir"`
	Style   string `toml:"style"`
}

// LoadConfig reads a TOML config file and applies it over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if fc.BaseDir != "" {
		cfg.BaseDir = fc.BaseDir
	}
	if fc.Style != "" {
		style, err := ParseStyle(fc.Style)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Style = style
	}
	return cfg, nil
}
