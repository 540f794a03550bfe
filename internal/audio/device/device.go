// Package device connects an audio streamer to the system speaker.
package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/audio"
)

// bufferDuration is the speaker buffer. Larger values add latency to cues.
const bufferDuration = 100 * time.Millisecond

// Speaker is an open output device. Only one can be open per process.
type Speaker struct {
	once sync.Once
}

// Open initializes the speaker and starts pulling from src.
// It fails on machines without a usable audio device; callers should fall back
// to silent play.
func Open(src beep.Streamer) (*Speaker, error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(bufferDuration)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(src)
	return &Speaker{}, nil
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.once.Do(speaker.Close)
	return nil
}
