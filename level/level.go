// Package level synthesizes missing level-definition JSON files with
// procedurally derived beat patterns. A level file already on disk is
// never touched; this is the only idempotence guarantee the generator
// gives.
package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Formula selects how lanes, BPM and difficulty derive from the level
// number. The two generator styles each carry one.
type Formula int

const (
	// FormulaBase: lane = beat % 3, fixed 120 BPM, always easy.
	FormulaBase Formula = iota
	// FormulaProgressive: lane = (beat + n) % 3, BPM and difficulty
	// scale with the level number n.
	FormulaProgressive
)

// Pattern is one timed entry on a platform lane.
type Pattern struct {
	Beat     int    `json:"beat"`
	Platform int    `json:"platform"`
	Type     string `json:"type"`
}

// Metadata carries the descriptive tail of a level file.
type Metadata struct {
	Difficulty string `json:"difficulty"`
	Genre      string `json:"genre"`
	Creator    string `json:"creator"`
	Version    string `json:"version"`
}

// Level is the full level-definition document.
type Level struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BPM         int       `json:"bpm"`
	Duration    int       `json:"duration"`
	AudioFile   string    `json:"audioFile"`
	Patterns    []Pattern `json:"patterns"`
	Metadata    Metadata  `json:"metadata"`
}

// Number extracts the numeric suffix of the level filename's stem:
// "demo-level-2.json" yields 2. Zero when no digits trail the stem.
func Number(path string) int {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	n := 0
	for _, r := range stem[i:] {
		n = n*10 + int(r-'0')
	}
	return n
}

// Patterns derives the beat pattern for level n. Beats are the odd
// sequence 1..15; the entry type alternates obstacle/collectible along
// the sequence.
func Patterns(n int, f Formula) []Pattern {
	var out []Pattern
	for k, beat := 0, 1; beat < 17; k, beat = k+1, beat+2 {
		lane := beat % 3
		if f == FormulaProgressive {
			lane = (beat + n) % 3
		}
		typ := "obstacle"
		if k%2 == 1 {
			typ = "collectible"
		}
		out = append(out, Pattern{Beat: beat, Platform: lane, Type: typ})
	}
	return out
}

// Build constructs the level descriptor for level n under formula f.
func Build(n int, f Formula) Level {
	lvl := Level{
		Name:      fmt.Sprintf("Demo Level %d", n),
		BPM:       120,
		Duration:  45000,
		AudioFile: "demo-track.ogg",
		Patterns:  Patterns(n, f),
		Metadata: Metadata{
			Genre:   "electronic",
			Version: "1.0",
		},
	}

	switch f {
	case FormulaProgressive:
		lvl.Description = fmt.Sprintf("Demo level %d with progressive difficulty", n)
		lvl.BPM = 120 + n*10
		lvl.Metadata.Creator = "Rhythm Runner Team"
		if n == 2 {
			lvl.Metadata.Difficulty = "easy"
		} else {
			lvl.Metadata.Difficulty = "medium"
		}
	default:
		lvl.Description = "Auto-generated demo level"
		lvl.Metadata.Creator = "Auto-generated"
		lvl.Metadata.Difficulty = "easy"
	}

	return lvl
}

// Synthesize writes the level file at path if it does not exist yet.
// Existing files are skipped silently. Reports whether a file was
// created; I/O failure propagates to the caller.
func Synthesize(path string, f Formula) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := json.MarshalIndent(Build(Number(path), f), "", "  ")
	if err != nil {
		return false, fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
