// Package generator orchestrates the placeholder sweeps: directory
// creation, then images, audio, level files, and (markup style) the app
// icon. Image and audio failures degrade to empty placeholder files and
// never abort the run; level-file failures do.
package generator

import (
	"log"
	"os"
	"path/filepath"

	"github.com/flowbuster/assetgen/audio"
	"github.com/flowbuster/assetgen/catalog"
	"github.com/flowbuster/assetgen/level"
	"github.com/flowbuster/assetgen/raster"
	"github.com/flowbuster/assetgen/vector"
)

// Generator runs the sweeps for one configuration and records what it
// produced for the run manifest.
type Generator struct {
	cfg   Config
	files []ManifestEntry
}

// New returns a generator for cfg.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

func (g *Generator) imagesDir() string {
	return filepath.Join(g.cfg.BaseDir, "public", "assets", "images")
}

func (g *Generator) audioDir() string {
	return filepath.Join(g.cfg.BaseDir, "public", "assets", "audio")
}

func (g *Generator) levelsDir() string {
	return filepath.Join(g.cfg.BaseDir, "public", "assets", "levels")
}

// Run executes the sweeps in order. Only level-file and icon write
// failures are fatal.
func (g *Generator) Run() error {
	dirs := []string{
		g.imagesDir(),
		filepath.Join(g.imagesDir(), "ui"),
		g.audioDir(),
		g.levelsDir(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	g.imageSweep()
	g.audioSweep()
	if err := g.levelSweep(); err != nil {
		return err
	}

	if g.cfg.Style == StyleMarkup {
		icon := filepath.Join(g.cfg.BaseDir, "public", "icon.svg")
		if err := vector.WriteIcon(icon); err != nil {
			return err
		}
		g.record(icon, "icon")
		log.Printf("wrote %s", icon)
	}

	g.writeManifest()
	return nil
}

func (g *Generator) imageSweep() {
	for _, a := range catalog.Images {
		path := filepath.Join(g.imagesDir(), filepath.FromSlash(a.Path))

		var err error
		if g.cfg.Style == StyleMarkup {
			err = vector.Render(path, a)
		} else {
			err = raster.Render(path, a)
		}
		if err != nil {
			log.Printf("create %s: %v", path, err)
			g.touch(path)
			continue
		}
		g.record(path, "image")
		log.Printf("wrote %s (%dx%d)", path, a.Width, a.Height)
	}
}

func (g *Generator) audioSweep() {
	for _, a := range catalog.Audio {
		path := filepath.Join(g.audioDir(), a.Path)

		var out string
		var err error
		if g.cfg.Style == StyleMarkup {
			out, err = audio.WriteStub(path, a.Frequency, a.Duration)
			if err == nil {
				g.record(path, "audio-touch")
			}
		} else {
			out, err = audio.WriteWAV(path, a.Frequency, a.Duration)
		}
		if err != nil {
			log.Printf("create %s: %v", path, err)
			g.touch(path)
			continue
		}
		g.record(out, "audio")
		log.Printf("wrote %s (%v, %.0fHz)", out, a.Duration, a.Frequency)
	}
}

func (g *Generator) levelSweep() error {
	formula := level.FormulaBase
	if g.cfg.Style == StyleMarkup {
		formula = level.FormulaProgressive
	}

	for _, name := range catalog.Levels {
		path := filepath.Join(g.levelsDir(), name)
		created, err := level.Synthesize(path, formula)
		if err != nil {
			return err
		}
		if created {
			g.record(path, "level")
			log.Printf("wrote %s", path)
		}
	}
	return nil
}

// touch degrades a failed asset to an empty placeholder file so nothing
// downstream trips over a missing path.
func (g *Generator) touch(path string) {
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		log.Printf("touch %s: %v", path, err)
		return
	}
	g.record(path, "placeholder")
}

func (g *Generator) record(path, kind string) {
	rel, err := filepath.Rel(g.cfg.BaseDir, path)
	if err != nil {
		rel = path
	}
	g.files = append(g.files, ManifestEntry{Path: filepath.ToSlash(rel), Kind: kind})
}
