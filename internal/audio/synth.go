package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect identifies a one-shot sound effect.
type Effect int

const (
	EffectJump Effect = iota
	EffectHit
	EffectGameOver
	EffectWin
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectJump:
		return "jump"
	case EffectHit:
		return "hit"
	case EffectGameOver:
		return "game over"
	case EffectWin:
		return "win"
	default:
		return "unknown"
	}
}

// Synth builds a finite streamer for the effect.
func Synth(e Effect, sr beep.SampleRate) (beep.Streamer, error) {
	switch e {
	case EffectJump:
		return newSweep(sr, 320, 760, 120*time.Millisecond), nil
	case EffectHit:
		return newSweep(sr, 220, 90, 180*time.Millisecond), nil
	case EffectGameOver:
		return notes(sr, 180*time.Millisecond, 392.00, 329.63, 261.63, 196.00)
	case EffectWin:
		return notes(sr, 120*time.Millisecond, 523.25, 659.25, 783.99, 1046.50)
	default:
		return nil, fmt.Errorf("audio: unknown effect %d", int(e))
	}
}

// notes plays each frequency for d, one after another.
func notes(sr beep.SampleRate, d time.Duration, freqs ...float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.2fHz: %w", f, err)
		}
		parts = append(parts, withVolume(beep.Take(sr.N(d), tone), 0.35))
	}
	return beep.Seq(parts...), nil
}

// withVolume scales s linearly by vol in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sweep is a sine whose frequency glides linearly from one value to another.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		env := 1 - progress

		v := 0.3 * env * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// tune is the endless background loop: a plucked arpeggio.
type tune struct {
	sr      beep.SampleRate
	melody  []float64
	noteLen int
	pos     int
}

func newTune(sr beep.SampleRate) *tune {
	return &tune{
		sr:      sr,
		melody:  []float64{261.63, 329.63, 392.00, 523.25, 392.00, 329.63, 293.66, 349.23, 440.00, 349.23},
		noteLen: sr.N(220 * time.Millisecond),
	}
}

func (t *tune) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (t.pos / t.noteLen) % len(t.melody)
		within := t.pos % t.noteLen
		secs := float64(within) / float64(t.sr)

		env := math.Exp(-secs * 9)
		freq := t.melody[note]
		v := 0.08 * env * (math.Sin(2*math.Pi*freq*secs) + 0.3*math.Sin(4*math.Pi*freq*secs))

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tune) Err() error { return nil }
