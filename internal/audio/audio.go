// Package audio synthesizes the game's sounds with beep and mixes them into a
// single streamer. It never touches an output device; see package device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every generator in this package renders at.
const SampleRate = beep.SampleRate(44100)

// hitDuration is the length of the collision cue.
const hitDuration = 220 * time.Millisecond

// Player mixes the ambient loop and the hit cue. It implements sim.Audio and is
// itself a beep.Streamer for an output device to pull from.
//
// The device pulls samples from its own goroutine while the game thread plays
// cues, so every access to the mixer goes through mu.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  *effects.Volume
	ambient *beep.Ctrl
	muted   bool
}

// NewPlayer creates a silent player.
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// PlayAmbient starts or resumes the background loop.
func (p *Player) PlayAmbient() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ambient == nil {
		p.ambient = &beep.Ctrl{Streamer: NewAmbientGenerator(SampleRate)}
		p.mixer.Add(p.ambient)
	}
	p.ambient.Paused = false
}

// PauseAmbient pauses the background loop where it is.
func (p *Player) PauseAmbient() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ambient != nil {
		p.ambient.Paused = true
	}
}

// PlayHit plays the one-shot collision cue.
func (p *Player) PlayHit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mixer.Add(beep.Take(SampleRate.N(hitDuration), NewHitGenerator(SampleRate)))
}

// SetMuted silences or restores all output. Cues keep their state while muted.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	p.volume.Silent = muted
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	p.volume.Silent = p.muted
	return p.muted
}

// Muted reports whether output is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// AmbientPlaying reports whether the background loop is audible.
func (p *Player) AmbientPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ambient != nil && !p.ambient.Paused
}

// Stream fills samples with the current mix. It never drains, so a device can
// keep pulling between cues.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n, _ = p.volume.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err always returns nil.
func (p *Player) Err() error {
	return nil
}
