package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ambientNotes is the arpeggio the background loop cycles through, in Hz.
var ambientNotes = []float64{220.00, 261.63, 329.63, 392.00, 329.63, 261.63}

// AmbientGenerator plays a soft endless arpeggio.
type AmbientGenerator struct {
	sr      beep.SampleRate
	pos     int
	noteLen int
}

// NewAmbientGenerator creates the background loop generator.
func NewAmbientGenerator(sr beep.SampleRate) *AmbientGenerator {
	return &AmbientGenerator{
		sr:      sr,
		noteLen: sr.N(250 * time.Millisecond),
	}
}

func (g *AmbientGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (g.pos / g.noteLen) % len(ambientNotes)
		inNote := g.pos % g.noteLen
		t := float64(g.pos) / float64(g.sr)

		// Pluck envelope per note
		env := math.Exp(-float64(inNote) / float64(g.noteLen) * 4)
		freq := ambientNotes[note]
		sample := 0.08 * env * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(2*math.Pi*freq*2*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *AmbientGenerator) Err() error {
	return nil
}

// HitGenerator renders a short falling thud with a burst of noise.
type HitGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

// NewHitGenerator creates a collision cue generator. It is infinite; wrap it in
// beep.Take to bound it.
func NewHitGenerator(sr beep.SampleRate) *HitGenerator {
	return &HitGenerator{sr: sr, seed: 0x2545f491}
}

func (g *HitGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 14)

		// Pitch drops from 180 Hz towards 60 Hz
		freq := 60 + 120*math.Exp(-t*20)
		tone := math.Sin(2 * math.Pi * freq * t)

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := env * (0.35*tone + 0.15*noise*math.Exp(-t*40))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HitGenerator) Err() error {
	return nil
}
