package generator

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ManifestName is the run manifest file written under the base directory.
const ManifestName = "asset-manifest.json"

// ManifestEntry records one file emitted during a run. Paths are relative
// to the base directory, slash-separated.
type ManifestEntry struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
}

// Manifest summarizes a generation run.
type Manifest struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Style       string          `json:"style"`
	Files       []ManifestEntry `json:"files"`
}

// writeManifest is best effort: a failed manifest never fails the run.
func (g *Generator) writeManifest() {
	m := Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Style:       g.cfg.Style.String(),
		Files:       g.files,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		log.Printf("manifest: %v", err)
		return
	}

	path := filepath.Join(g.cfg.BaseDir, ManifestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("manifest: %v", err)
		return
	}
	log.Printf("wrote %s (%d files)", path, len(m.Files))
}
