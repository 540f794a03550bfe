package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the random source used to draw gap heights. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// State is the complete mutable simulation state. The operations in this file take
// it by pointer; there is no hidden package-level state.
type State struct {
	BirdY     int  `yaml:"bird_y"`     // Top of the bird hitbox
	ObstacleX int  `yaml:"obstacle_x"` // Left edge of both obstacle segments
	GapTop    int  `yaml:"gap_top"`    // Height of the top segment, where the gap starts
	Score     int  `yaml:"score"`
	Running   bool `yaml:"running"`
	Ended     bool `yaml:"ended"`
}

// NewState returns the session-start state: bird centered, obstacle off the right edge.
func NewState(p Physics) State {
	return State{
		BirdY:     p.StartY(),
		ObstacleX: p.CanvasW,
		GapTop:    p.InitialGapHeight,
	}
}

// Phase derives the state-machine phase from the flags.
func (s State) Phase() core.Phase {
	return core.GameState{Running: s.Running, GameOver: s.Ended}.Phase()
}

// BottomHeight is the height of the bottom obstacle segment.
func (s State) BottomHeight(p Physics) int {
	return p.CanvasH - p.Gap - s.GapTop
}

// TopSpan is the vertical extent of the top obstacle segment.
func (s State) TopSpan() core.Span {
	return core.NewSpan(0, s.GapTop)
}

// BottomSpan is the vertical extent of the bottom obstacle segment.
func (s State) BottomSpan(p Physics) core.Span {
	return core.Span{Lo: p.CanvasH - s.BottomHeight(p), Hi: p.CanvasH}
}

// HitBand is the fixed horizontal band in which the obstacle's left edge
// puts it level with the bird.
func HitBand(p Physics) core.Span {
	return core.Span{Lo: p.BirdX, Hi: p.BirdX + p.ObstacleW}
}

// Fall applies one gravity tick. The bird only falls while running and above the
// floor, and never past it. Reports whether the bird moved.
func Fall(s *State, p Physics) bool {
	if !s.Running {
		return false
	}
	floor := p.Floor()
	if s.BirdY >= floor {
		return false
	}
	s.BirdY = core.Min(s.BirdY+p.Gravity, floor)
	return true
}

// Advance applies one obstacle tick. Once the obstacle has fully left the screen it
// is recycled and the score goes up by one. Reports whether a recycle happened.
func Advance(s *State, p Physics, rng Rand) bool {
	if !s.Running || s.ObstacleX < -p.ObstacleW {
		return false
	}
	s.ObstacleX -= p.Advance
	if s.ObstacleX >= -p.ObstacleW {
		return false
	}
	Recycle(s, p, rng)
	s.Score++
	return true
}

// Recycle moves the obstacle back to the right edge with a fresh gap height drawn
// uniformly from [0, H - gap).
func Recycle(s *State, p Physics, rng Rand) {
	s.GapTop = 0
	if n := p.GapRange(); n > 0 {
		s.GapTop = rng.Intn(n)
	}
	s.ObstacleX = p.CanvasW
}

// Start moves an idle or ended session into Running. Restarting after a game over
// resets the score and recycles the obstacle out of the crash site. The bird stays
// where it is. Returns EventStart, EventRestart, or 0 when already running.
func Start(s *State, p Physics, rng Rand) core.Event {
	if s.Running {
		return 0
	}
	s.Running = true
	if !s.Ended {
		return core.EventStart
	}
	s.Ended = false
	s.Score = 0
	Recycle(s, p, rng)
	return core.EventRestart
}

// Impulse is the player's only input. When not running it starts the session without
// moving the bird; otherwise the bird jumps up by a fixed height, landing at one bird
// height from the top if the jump would leave the canvas.
func Impulse(s *State, p Physics, rng Rand) core.Event {
	if !s.Running {
		return Start(s, p, rng)
	}
	if next := s.BirdY - p.JumpHeight; next < 0 {
		s.BirdY = p.BirdH
	} else {
		s.BirdY = next
	}
	return core.EventImpulse
}

// Collides reports whether the obstacle is level with the bird and the bird's top edge
// lies inside the top or bottom segment.
func Collides(s State, p Physics) bool {
	if !HitBand(p).ContainsClosed(s.ObstacleX) {
		return false
	}
	return s.TopSpan().Contains(s.BirdY) || s.BottomSpan(p).Contains(s.BirdY)
}

// Check ends a running session on collision. Reports whether it did.
func Check(s *State, p Physics) bool {
	if !s.Running || !Collides(*s, p) {
		return false
	}
	s.Running = false
	s.Ended = true
	return true
}
