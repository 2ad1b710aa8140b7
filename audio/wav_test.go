package audio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWriteWAVExtension verifies the container extension replaces the
// catalog's requested one
func TestWriteWAVExtension(t *testing.T) {
	dir := t.TempDir()

	out, err := WriteWAV(filepath.Join(dir, "jump.ogg"), 800, 200*time.Millisecond)
	if err != nil {
		t.Fatalf("WriteWAV failed: %v", err)
	}

	if filepath.Ext(out) != ".wav" {
		t.Errorf("output extension = %s, want .wav", filepath.Ext(out))
	}
	if _, err := os.Stat(filepath.Join(dir, "jump.wav")); err != nil {
		t.Errorf("expected jump.wav to exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "jump.ogg")); err == nil {
		t.Error("did not expect a file at the original .ogg path")
	}
}

// TestWriteWAVHeader verifies the RIFF container describes mono 16-bit
// PCM at 44100Hz
func TestWriteWAVHeader(t *testing.T) {
	dir := t.TempDir()

	out, err := WriteWAV(filepath.Join(dir, "beat-hit.ogg"), 1000, 150*time.Millisecond)
	if err != nil {
		t.Fatalf("WriteWAV failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read %s: %v", out, err)
	}
	if len(data) < 44 {
		t.Fatalf("file too short for a WAV header: %d bytes", len(data))
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("missing RIFF magic, got %q", data[0:4])
	}
	if string(data[8:12]) != "WAVE" {
		t.Errorf("missing WAVE type, got %q", data[8:12])
	}

	channels := binary.LittleEndian.Uint16(data[22:24])
	if channels != 1 {
		t.Errorf("channels = %d, want 1", channels)
	}
	rate := binary.LittleEndian.Uint32(data[24:28])
	if rate != 44100 {
		t.Errorf("sample rate = %d, want 44100", rate)
	}
	bits := binary.LittleEndian.Uint16(data[34:36])
	if bits != 16 {
		t.Errorf("bits per sample = %d, want 16", bits)
	}
}

// TestWriteWAVPayload verifies the data payload holds one frame per
// synthesized sample
func TestWriteWAVPayload(t *testing.T) {
	dir := t.TempDir()

	out, err := WriteWAV(filepath.Join(dir, "collect-note.ogg"), 1500, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("WriteWAV failed: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat %s: %v", out, err)
	}

	// 4410 mono 16-bit frames plus the 44-byte header.
	want := int64(44 + 4410*2)
	if info.Size() != want {
		t.Errorf("file size = %d, want %d", info.Size(), want)
	}
}

// TestSwapExt verifies extension rewriting
func TestSwapExt(t *testing.T) {
	testCases := []struct {
		in, ext, want string
	}{
		{"demo-track.ogg", ".wav", "demo-track.wav"},
		{"a/b/menu-music.ogg", ".json", "a/b/menu-music.json"},
		{"noext", ".wav", "noext.wav"},
	}

	for _, tc := range testCases {
		if got := swapExt(tc.in, tc.ext); got != tc.want {
			t.Errorf("swapExt(%q, %q) = %q, want %q", tc.in, tc.ext, got, tc.want)
		}
	}
}
