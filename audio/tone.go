// Package audio synthesizes the placeholder tones: a sine carrier shaped
// by a half-sine fade envelope, rendered either as a real WAV file or as
// a JSON descriptor standing in for one.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the fixed synthesis rate for all placeholder tones.
const SampleRate = beep.SampleRate(44100)

// peakAmplitude caps the envelope at 0.3 of full scale.
const peakAmplitude = 0.3

// tone generates a sine wave at a fixed frequency, faded in and out by a
// half-sine envelope spanning the whole duration. Both channels carry the
// same value; the WAV backend folds them to mono.
type tone struct {
	freq    float64
	durSec  float64
	samples int
	pos     int
	rate    beep.SampleRate
}

// NewTone returns a finite streamer for a placeholder tone.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		durSec:  duration.Seconds(),
		samples: rate.N(duration),
		rate:    rate,
	}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	n = len(samples)
	if rem := g.samples - g.pos; rem < n {
		n = rem
	}
	for i := 0; i < n; i++ {
		t := float64(g.pos) / float64(g.rate)
		amplitude := peakAmplitude * math.Sin(math.Pi*t/g.durSec)
		v := amplitude * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return n, true
}

func (g *tone) Err() error { return nil }

// Samples drains a streamer and quantizes the left channel to signed
// 16-bit, matching the scale the WAV container uses. Truncation toward
// zero keeps every value within [-32767, 32767].
func Samples(s beep.Streamer) []int16 {
	buf := make([][2]float64, 512)
	var out []int16
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v > 1 {
				v = 1
			}
			if v < -1 {
				v = -1
			}
			out = append(out, int16(v*32767))
		}
		if !ok {
			return out
		}
	}
}
