package core

import "time"

// DefaultTickInterval is the fixed cadence of the simulation scheduler.
const DefaultTickInterval = 30 * time.Millisecond

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use it to size their output and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Output width (cells for the terminal, pixels for the window)
	ScreenH      int           // Output height
	TickInterval time.Duration // Simulation tick cadence
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState represents the current coarse state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Running  bool // Whether the simulation is advancing
	GameOver bool // Whether the last run ended in a collision
}

// Phase derives the state-machine phase from the flags.
func (s GameState) Phase() Phase {
	switch {
	case s.Running:
		return PhaseRunning
	case s.GameOver:
		return PhaseGameOver
	default:
		return PhaseIdle
	}
}

// Phase is one of the three session states.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a bit set of things that happened during one tick.
type Event uint8

const (
	EventStart     Event = 1 << iota // Idle -> Running
	EventRestart                     // GameOver -> Running
	EventImpulse                     // Entity moved by an impulse
	EventScore                       // Obstacle recycled, score incremented
	EventCollision                   // Running -> GameOver
)

// Has reports whether all bits of other are set.
func (e Event) Has(other Event) bool {
	return e&other == other && other != 0
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State  GameState
	Events Event
}
