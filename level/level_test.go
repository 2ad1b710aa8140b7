package level

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TestNumber verifies numeric suffix extraction from level filenames
func TestNumber(t *testing.T) {
	testCases := []struct {
		path string
		want int
	}{
		{"demo-level-2.json", 2},
		{"demo-level-3.json", 3},
		{"public/assets/levels/demo-level-12.json", 12},
		{"untitled.json", 0},
	}

	for _, tc := range testCases {
		if got := Number(tc.path); got != tc.want {
			t.Errorf("Number(%q) = %d, want %d", tc.path, got, tc.want)
		}
	}
}

// TestPatternsBase verifies the fixed sequence for level 2 under the base
// formula: lanes cycle beat%3 and types alternate along the sequence
func TestPatternsBase(t *testing.T) {
	got := Patterns(2, FormulaBase)

	wantBeats := []int{1, 3, 5, 7, 9, 11, 13, 15}
	wantLanes := []int{1, 0, 2, 1, 0, 2, 1, 0}

	if len(got) != len(wantBeats) {
		t.Fatalf("expected %d patterns, got %d", len(wantBeats), len(got))
	}

	for i, p := range got {
		if p.Beat != wantBeats[i] {
			t.Errorf("pattern %d: beat = %d, want %d", i, p.Beat, wantBeats[i])
		}
		if p.Platform != wantLanes[i] {
			t.Errorf("pattern %d: platform = %d, want %d", i, p.Platform, wantLanes[i])
		}
		wantType := "obstacle"
		if i%2 == 1 {
			wantType = "collectible"
		}
		if p.Type != wantType {
			t.Errorf("pattern %d: type = %s, want %s", i, p.Type, wantType)
		}
	}
}

// TestPatternsProgressive verifies the lane shift by level number
func TestPatternsProgressive(t *testing.T) {
	got := Patterns(2, FormulaProgressive)

	wantLanes := []int{0, 2, 1, 0, 2, 1, 0, 2} // (beat+2) % 3
	for i, p := range got {
		if p.Platform != wantLanes[i] {
			t.Errorf("pattern %d: platform = %d, want %d", i, p.Platform, wantLanes[i])
		}
	}
}

// TestPatternsDeterministic verifies repeated derivation is identical
func TestPatternsDeterministic(t *testing.T) {
	a := Patterns(3, FormulaProgressive)
	b := Patterns(3, FormulaProgressive)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pattern %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// TestBuildBase verifies the base formula's fixed fields
func TestBuildBase(t *testing.T) {
	lvl := Build(2, FormulaBase)

	if lvl.Name != "Demo Level 2" {
		t.Errorf("name = %q", lvl.Name)
	}
	if lvl.Description != "Auto-generated demo level" {
		t.Errorf("description = %q", lvl.Description)
	}
	if lvl.BPM != 120 {
		t.Errorf("bpm = %d, want 120", lvl.BPM)
	}
	if lvl.Duration != 45000 {
		t.Errorf("duration = %d, want 45000", lvl.Duration)
	}
	if lvl.AudioFile != "demo-track.ogg" {
		t.Errorf("audioFile = %q", lvl.AudioFile)
	}
	if lvl.Metadata.Difficulty != "easy" || lvl.Metadata.Creator != "Auto-generated" {
		t.Errorf("metadata = %+v", lvl.Metadata)
	}
	if lvl.Metadata.Genre != "electronic" || lvl.Metadata.Version != "1.0" {
		t.Errorf("metadata = %+v", lvl.Metadata)
	}
}

// TestBuildProgressive verifies bpm and difficulty scale with the suffix
func TestBuildProgressive(t *testing.T) {
	testCases := []struct {
		n              int
		wantBPM        int
		wantDifficulty string
	}{
		{2, 140, "easy"},
		{3, 150, "medium"},
	}

	for _, tc := range testCases {
		lvl := Build(tc.n, FormulaProgressive)
		if lvl.BPM != tc.wantBPM {
			t.Errorf("level %d: bpm = %d, want %d", tc.n, lvl.BPM, tc.wantBPM)
		}
		if lvl.Metadata.Difficulty != tc.wantDifficulty {
			t.Errorf("level %d: difficulty = %s, want %s", tc.n, lvl.Metadata.Difficulty, tc.wantDifficulty)
		}
		if lvl.Metadata.Creator != "Rhythm Runner Team" {
			t.Errorf("level %d: creator = %s", tc.n, lvl.Metadata.Creator)
		}
	}
}

// TestSynthesizeCreates verifies a missing level file is written as
// indented JSON
func TestSynthesizeCreates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo-level-2.json")

	created, err := Synthesize(path, FormulaBase)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !created {
		t.Fatal("expected created=true for a missing file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read level: %v", err)
	}

	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		t.Fatalf("level file is not valid JSON: %v", err)
	}
	if len(lvl.Patterns) != 8 {
		t.Errorf("expected 8 patterns, got %d", len(lvl.Patterns))
	}
	if !bytes.Contains(data, []byte("\n  ")) {
		t.Error("expected indented JSON output")
	}
}

// TestSynthesizeIdempotent verifies a second run leaves the file untouched
func TestSynthesizeIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo-level-3.json")

	if _, err := Synthesize(path, FormulaProgressive); err != nil {
		t.Fatalf("first Synthesize failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read level: %v", err)
	}

	created, err := Synthesize(path, FormulaProgressive)
	if err != nil {
		t.Fatalf("second Synthesize failed: %v", err)
	}
	if created {
		t.Error("expected created=false for an existing file")
	}

	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("re-read level: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("level file changed across runs")
	}
}

// TestSynthesizeSkipsForeignContent verifies existing files are never
// overwritten, whatever they hold
func TestSynthesizeSkipsForeignContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo-level-2.json")

	handmade := []byte(`{"name":"my level"}`)
	if err := os.WriteFile(path, handmade, 0o644); err != nil {
		t.Fatal(err)
	}

	created, err := Synthesize(path, FormulaBase)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if created {
		t.Error("expected created=false")
	}

	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, handmade) {
		t.Error("existing level file was overwritten")
	}
}
