package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrReplayDiverged is returned when re-simulating a run does not end where the
// recording says it ended.
var ErrReplayDiverged = errors.New("sim: replay diverged from recording")

// Run is a recording of one run, from the start transition to the collision.
// Together with its physics it is enough to reproduce the run exactly.
type Run struct {
	Seed     int64   `yaml:"seed"`     // Seeds obstacle recycling during the run
	Start    State   `yaml:"start"`    // State right after the start transition
	Impulses []int   `yaml:"impulses"` // Run ticks (1-based) with an impulse
	Ticks    int     `yaml:"ticks"`    // Physics ticks until the collision
	Score    int     `yaml:"score"`
	Physics  Physics `yaml:"physics"`
}

// Clone returns a deep copy of the run.
func (r Run) Clone() Run {
	c := r
	c.Impulses = append([]int(nil), r.Impulses...)
	return c
}

// Replay re-simulates a run headlessly and returns the final state.
// It fails with ErrReplayDiverged if the collision happens on a different tick or
// with a different score than recorded.
func Replay(r Run) (State, error) {
	s := r.Start
	p := r.Physics
	rng := rand.New(rand.NewSource(r.Seed))
	pb := NewPlayback(r)

	for tick := 1; tick <= r.Ticks; tick++ {
		if pb.Next().Has(core.ActionJump) {
			Impulse(&s, p, rng)
		}
		Fall(&s, p)
		Advance(&s, p, rng)
		if Check(&s, p) {
			if tick != r.Ticks || s.Score != r.Score {
				return s, fmt.Errorf("%w: collided at tick %d with score %d, recorded tick %d score %d",
					ErrReplayDiverged, tick, s.Score, r.Ticks, r.Score)
			}
			return s, nil
		}
	}

	return s, fmt.Errorf("%w: no collision after %d ticks (score %d, recorded %d)",
		ErrReplayDiverged, r.Ticks, s.Score, r.Score)
}

// Playback produces the recorded input of a run, one frame per physics tick.
type Playback struct {
	impulses map[int]bool
	ticks    int
	tick     int
}

// NewPlayback creates a playback positioned before the first tick.
func NewPlayback(r Run) *Playback {
	imp := make(map[int]bool, len(r.Impulses))
	for _, t := range r.Impulses {
		imp[t] = true
	}
	return &Playback{impulses: imp, ticks: r.Ticks}
}

// Next returns the input for the next tick.
func (p *Playback) Next() core.InputFrame {
	p.tick++
	in := core.NewInputFrame()
	if p.impulses[p.tick] {
		in.Set(core.ActionJump)
	}
	return in
}

// Done reports whether all recorded ticks have been produced.
func (p *Playback) Done() bool {
	return p.tick >= p.ticks
}

// Tick returns the number of frames produced so far.
func (p *Playback) Tick() int {
	return p.tick
}
