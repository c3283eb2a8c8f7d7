package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// fakeClock stands in for wall time on a silent output.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestController(enabled bool) (*Controller, *SilentOutput) {
	c, out, _ := newClockedController(enabled)
	return c, out
}

func newClockedController(enabled bool) (*Controller, *SilentOutput, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	out := NewSilentOutput(DefaultSampleRate)
	out.now = clock.now
	c := NewController(out, DefaultSampleRate, 0.5, enabled)
	return c, out, clock
}

func TestMusicStartsOnlyWhenStarted(t *testing.T) {
	c, _ := newTestController(true)

	if !c.MusicPaused() {
		t.Error("music should be silent before StartMusic")
	}

	c.StartMusic()
	if c.MusicPaused() {
		t.Error("music should play after StartMusic while enabled")
	}
}

func TestMusicStartedWhileDisabledStaysPaused(t *testing.T) {
	c, _ := newTestController(false)
	c.StartMusic()

	if !c.MusicPaused() {
		t.Error("music should stay paused when sound is off")
	}

	c.SetEnabled(true)
	if c.MusicPaused() {
		t.Error("enabling sound should resume music")
	}
}

func TestSetEnabledPausesEveryChannel(t *testing.T) {
	c, _ := newTestController(true)
	c.StartMusic()
	c.Play(EffectJump)
	c.Play(EffectWin)

	c.SetEnabled(false)

	if !c.MusicPaused() {
		t.Error("music should be paused while muted")
	}
	active := c.ActiveEffects()
	if len(active) != 2 {
		t.Fatalf("expected 2 active effects, got %d", len(active))
	}
	for _, st := range active {
		if !st.Paused {
			t.Errorf("effect %v still playing while muted", st.Effect)
		}
	}

	c.SetEnabled(true)
	for _, st := range c.ActiveEffects() {
		if st.Paused {
			t.Errorf("effect %v should resume when unmuted", st.Effect)
		}
	}
	if c.MusicPaused() {
		t.Error("music should resume when unmuted")
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	c, _ := newTestController(true)
	c.StartMusic()
	c.Play(EffectHit)

	c.SetEnabled(!c.Enabled())
	c.SetEnabled(!c.Enabled())

	if !c.Enabled() {
		t.Error("two toggles should restore enabled")
	}
	if c.MusicPaused() {
		t.Error("music should be playing again")
	}
	for _, st := range c.ActiveEffects() {
		if st.Paused {
			t.Errorf("effect %v left paused", st.Effect)
		}
	}
}

func TestPlayWhileDisabledIsDropped(t *testing.T) {
	c, _ := newTestController(false)
	c.Play(EffectGameOver)

	if n := len(c.ActiveEffects()); n != 0 {
		t.Errorf("expected no effects while disabled, got %d", n)
	}
}

func TestStopRemovesOnlyThatEffect(t *testing.T) {
	c, _ := newTestController(true)
	c.Play(EffectGameOver)
	c.Play(EffectJump)

	c.Stop(EffectGameOver)

	active := c.ActiveEffects()
	if len(active) != 1 || active[0].Effect != EffectJump {
		t.Errorf("expected only jump to remain, got %+v", active)
	}
}

func TestFinishedEffectsArePruned(t *testing.T) {
	c, out := newTestController(true)
	c.StartMusic()
	c.Play(EffectJump)

	// One second of playback is longer than any effect.
	if !out.Pull(DefaultSampleRate.N(time.Second)) {
		t.Fatal("silent output should hold the mixer")
	}

	if n := len(c.ActiveEffects()); n != 0 {
		t.Errorf("expected finished effect to be pruned, %d left", n)
	}
	if c.MusicPaused() {
		t.Error("music should keep looping")
	}
}

func TestSilentOutputFinishesEffectsOverTime(t *testing.T) {
	c, _, clock := newClockedController(true)
	c.StartMusic()

	// A jump every frame for a long session.
	frame := time.Second / 60
	for i := 0; i < 1000; i++ {
		c.Play(EffectJump)
		clock.advance(frame)
		if n := len(c.ActiveEffects()); n > 10 {
			t.Fatalf("frame %d: %d effect channels still active", i, n)
		}
	}

	clock.advance(time.Second)
	if n := len(c.ActiveEffects()); n != 0 {
		t.Errorf("all effects should be finished after a quiet second, %d left", n)
	}
	if c.MusicPaused() {
		t.Error("music should keep looping")
	}
}

func TestSilentOutputHoldsMutedEffects(t *testing.T) {
	c, _, clock := newClockedController(true)
	c.Play(EffectGameOver)
	c.SetEnabled(false)

	clock.advance(5 * time.Second)
	if n := len(c.ActiveEffects()); n != 1 {
		t.Fatalf("a paused effect must not run out while muted, got %d", n)
	}

	c.SetEnabled(true)
	clock.advance(2 * time.Second)
	if n := len(c.ActiveEffects()); n != 0 {
		t.Errorf("effect should finish once unmuted, %d left", n)
	}
}

func TestCloseReleasesOutput(t *testing.T) {
	c, out := newTestController(true)
	c.StartMusic()
	c.Play(EffectWin)

	c.Close()
	c.Close() // idempotent

	if out.Pull(16) {
		t.Error("output should be released after Close")
	}
	c.Play(EffectJump)
	if n := len(c.ActiveEffects()); n != 0 {
		t.Errorf("closed controller should not play, got %d effects", n)
	}
}

func TestSynthEffectsAreFinite(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, e := range []Effect{EffectJump, EffectHit, EffectGameOver, EffectWin} {
		s, err := Synth(e, sr)
		if err != nil {
			t.Fatalf("Synth(%v) failed: %v", e, err)
		}

		buf := make([][2]float64, 512)
		total := 0
		for i := 0; i < 100; i++ {
			n, ok := s.Stream(buf)
			total += n
			if !ok {
				break
			}
		}
		if total == 0 || total >= 512*100 {
			t.Errorf("Synth(%v) streamed %d samples, expected a short finite sound", e, total)
		}
	}
}

func TestSynthUnknownEffect(t *testing.T) {
	if _, err := Synth(Effect(99), DefaultSampleRate); err == nil {
		t.Error("expected error for unknown effect")
	}
}
