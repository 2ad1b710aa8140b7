package audio

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Stub describes the tone a placeholder file stands in for.
type Stub struct {
	Type       string  `json:"type"`
	Duration   float64 `json:"duration"`
	Frequency  float64 `json:"frequency"`
	Format     string  `json:"format"`
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
}

// WriteStub emits a JSON descriptor of the intended tone next to the
// target (extension rewritten to .json) and touches an empty file at the
// originally requested path. Returns the descriptor path.
func WriteStub(path string, freq float64, duration time.Duration) (string, error) {
	stub := Stub{
		Type:       "placeholder",
		Duration:   duration.Seconds(),
		Frequency:  freq,
		Format:     "sine_wave",
		SampleRate: int(SampleRate),
		Channels:   1,
	}

	data, err := json.MarshalIndent(stub, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal stub for %s: %w", path, err)
	}

	out := swapExt(path, ".json")
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return "", fmt.Errorf("touch %s: %w", path, err)
	}
	return out, nil
}
