package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

// Output is where the controller's mixer is played. Lock/Unlock guard state
// that the playback goroutine reads while streaming.
type Output interface {
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// SpeakerOutput plays through the system audio device.
type SpeakerOutput struct{}

// NewSpeakerOutput initializes the speaker with a 100ms buffer.
func NewSpeakerOutput(sr beep.SampleRate) (*SpeakerOutput, error) {
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	return &SpeakerOutput{}, nil
}

// Play starts streaming s on the device.
func (*SpeakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Lock blocks the speaker goroutine.
func (*SpeakerOutput) Lock() {
	speaker.Lock()
}

// Unlock releases the speaker goroutine.
func (*SpeakerOutput) Unlock() {
	speaker.Unlock()
}

// Close drops all streamers and releases the device.
func (*SpeakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}

// SilentOutput consumes the streamer at the sample rate's pace without
// touching a device. Used where no audio device exists (SSH sessions,
// --no-audio-device, tests); effects still finish on time so channel state
// matches a real device.
type SilentOutput struct {
	mu       sync.Mutex
	streamer beep.Streamer
	sr       beep.SampleRate
	now      func() time.Time
	last     time.Time
	buf      [][2]float64
}

// silentCatchUp caps how much playback one catch-up may stream.
const silentCatchUp = time.Second

// NewSilentOutput returns an output that plays nothing at rate sr.
func NewSilentOutput(sr beep.SampleRate) *SilentOutput {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	return &SilentOutput{
		sr:  sr,
		now: time.Now,
		buf: make([][2]float64, 512),
	}
}

// Play records s as the streamer being "played".
func (o *SilentOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	o.streamer = s
	o.last = o.now()
	o.mu.Unlock()
}

// Lock acquires the output lock, first streaming whatever a device would
// have played since the previous call.
func (o *SilentOutput) Lock() {
	o.mu.Lock()
	o.advance()
}

// Unlock releases the output lock.
func (o *SilentOutput) Unlock() {
	o.mu.Unlock()
}

// Close forgets the streamer.
func (o *SilentOutput) Close() {
	o.mu.Lock()
	o.streamer = nil
	o.mu.Unlock()
}

// Pull streams n samples from the recorded streamer right away.
// Returns false when nothing is being played.
func (o *SilentOutput) Pull(n int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.streamer == nil {
		return false
	}
	o.stream(n)
	return true
}

// advance streams the samples due since last. Caller holds mu.
func (o *SilentOutput) advance() {
	now := o.now()
	if o.streamer == nil {
		o.last = now
		return
	}

	elapsed := now.Sub(o.last)
	if elapsed > silentCatchUp {
		o.stream(o.sr.N(silentCatchUp))
		o.last = now
		return
	}
	n := o.sr.N(elapsed)
	if n <= 0 {
		return
	}
	o.stream(n)
	o.last = o.last.Add(o.sr.D(n))
}

// stream pulls n samples in buffer-sized chunks. Caller holds mu.
func (o *SilentOutput) stream(n int) {
	for n > 0 {
		chunk := o.buf[:min(n, len(o.buf))]
		got, ok := o.streamer.Stream(chunk)
		if !ok || got == 0 {
			return
		}
		n -= got
	}
}

// Open builds a controller from cfg. It plays silently when silent is set
// or when no audio device can be opened.
func Open(cfg config.SoundConfig, silent bool, logger *log.Logger) *Controller {
	sr := DefaultSampleRate
	if cfg.SampleRate > 0 {
		sr = beep.SampleRate(cfg.SampleRate)
	}

	var out Output = NewSilentOutput(sr)
	if !silent {
		spk, err := NewSpeakerOutput(sr)
		switch {
		case err == nil:
			out = spk
		case logger != nil:
			logger.Warn("audio device unavailable, continuing silently", "err", err)
		}
	}
	return NewController(out, sr, cfg.Volume, cfg.Enabled)
}
