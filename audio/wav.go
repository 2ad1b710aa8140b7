package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// WriteWAV synthesizes the tone and writes it as mono 16-bit PCM at the
// destination path with the extension rewritten to .wav, since that is
// the container actually produced. Returns the path written.
func WriteWAV(path string, freq float64, duration time.Duration) (string, error) {
	out := swapExt(path, ".wav")

	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}

	format := beep.Format{
		SampleRate:  SampleRate,
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, NewTone(freq, duration, SampleRate), format); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", out, err)
	}
	return out, nil
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
