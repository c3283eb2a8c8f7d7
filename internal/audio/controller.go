// Package audio implements the game's sound controller: a looping music
// channel and one-shot effect channels mixed with gopxl/beep.
package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
)

// DefaultSampleRate is used when the config does not set one.
const DefaultSampleRate = beep.SampleRate(44100)

// channel is one playing effect instance.
type channel struct {
	effect Effect
	ctrl   *beep.Ctrl
	done   atomic.Bool
}

// EffectState describes an effect channel that has not finished yet.
type EffectState struct {
	Effect Effect
	Paused bool
}

// Controller owns the mixer and every audio channel.
// It is driven from the game loop goroutine; everything the playback
// goroutine reads is changed under the output lock.
type Controller struct {
	out    Output
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer

	music   *beep.Ctrl
	active  []*channel
	enabled bool
	started bool
	closed  bool
}

// NewController creates a controller and hands its mixer to out.
// Music stays silent until StartMusic.
func NewController(out Output, sr beep.SampleRate, volume float64, enabled bool) *Controller {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	c := &Controller{
		out:     out,
		sr:      sr,
		volume:  volume,
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}

	// The music channel is always in the mixer so the mixer never runs dry.
	c.music = &beep.Ctrl{Streamer: newTune(sr), Paused: true}
	c.mixer.Add(c.music)
	out.Play(withVolume(c.mixer, volume))
	return c
}

// StartMusic starts the endless background loop.
func (c *Controller) StartMusic() {
	c.out.Lock()
	defer c.out.Unlock()

	if c.started || c.closed {
		return
	}
	c.started = true
	c.music.Paused = !c.enabled
}

// SetEnabled pauses or resumes the music and every active effect at once.
func (c *Controller) SetEnabled(on bool) {
	c.out.Lock()
	defer c.out.Unlock()

	c.enabled = on
	c.music.Paused = !on || !c.started
	c.prune()
	for _, ch := range c.active {
		ch.ctrl.Paused = !on
	}
}

// Enabled reports whether sound is on.
func (c *Controller) Enabled() bool {
	c.out.Lock()
	defer c.out.Unlock()
	return c.enabled
}

// Play starts a new instance of the effect. It does nothing while disabled.
func (c *Controller) Play(e Effect) {
	if c.closed {
		return
	}
	s, err := Synth(e, c.sr)
	if err != nil {
		return
	}

	ch := &channel{effect: e}
	ch.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(s, beep.Callback(func() { ch.done.Store(true) })),
	}

	c.out.Lock()
	defer c.out.Unlock()

	if !c.enabled {
		return
	}
	c.prune()
	c.active = append(c.active, ch)
	c.mixer.Add(ch.ctrl)
}

// Stop silences every playing instance of the effect.
func (c *Controller) Stop(e Effect) {
	c.out.Lock()
	defer c.out.Unlock()

	for _, ch := range c.active {
		if ch.effect == e {
			// A Ctrl without a streamer ends, and the mixer drops it.
			ch.ctrl.Streamer = nil
			ch.done.Store(true)
		}
	}
	c.prune()
}

// MusicPaused reports whether the music channel is silent.
func (c *Controller) MusicPaused() bool {
	c.out.Lock()
	defer c.out.Unlock()
	return c.music.Paused
}

// ActiveEffects lists effect channels that have not finished.
func (c *Controller) ActiveEffects() []EffectState {
	c.out.Lock()
	defer c.out.Unlock()

	c.prune()
	states := make([]EffectState, 0, len(c.active))
	for _, ch := range c.active {
		states = append(states, EffectState{Effect: ch.effect, Paused: ch.ctrl.Paused})
	}
	return states
}

// Close stops all channels and releases the output.
func (c *Controller) Close() {
	c.out.Lock()
	if c.closed {
		c.out.Unlock()
		return
	}
	c.closed = true
	c.music.Paused = true
	c.mixer.Clear()
	c.active = nil
	c.out.Unlock()

	c.out.Close()
}

// prune drops finished channels. Caller holds the output lock.
func (c *Controller) prune() {
	live := c.active[:0]
	for _, ch := range c.active {
		if !ch.done.Load() {
			live = append(live, ch)
		}
	}
	for i := len(live); i < len(c.active); i++ {
		c.active[i] = nil
	}
	c.active = live
}
