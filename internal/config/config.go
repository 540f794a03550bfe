// Package config provides YAML-based game configuration loading and environment
// overrides for the flappy arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables of the simulation, in canvas pixels.
type FlappyConfig struct {
	Canvas   FlappyCanvas   `yaml:"canvas"`
	Physics  FlappyPhysics  `yaml:"physics"`
	Player   FlappyPlayer   `yaml:"player"`
	Obstacle FlappyObstacle `yaml:"obstacle"`
}

// FlappyCanvas defines the logical playfield size.
type FlappyCanvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyPhysics defines per-tick displacements and the tick cadence.
type FlappyPhysics struct {
	Gravity    int `yaml:"gravity"`     // Added to the bird position every tick while falling
	JumpHeight int `yaml:"jump_height"` // Subtracted from the bird position on an impulse
	Advance    int `yaml:"advance"`     // Subtracted from the obstacle position every tick
	TickMillis int `yaml:"tick_ms"`     // Scheduler cadence
}

// FlappyPlayer defines the bird hitbox.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyObstacle defines the obstacle geometry.
type FlappyObstacle struct {
	Width            int `yaml:"width"`
	Gap              int `yaml:"gap"`
	InitialGapHeight int `yaml:"initial_gap_height"`
}

// TickInterval returns the scheduler cadence as a duration.
func (c FlappyConfig) TickInterval() time.Duration {
	return time.Duration(c.Physics.TickMillis) * time.Millisecond
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		v    int
	}{
		{"canvas.width", c.Canvas.Width},
		{"canvas.height", c.Canvas.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_height", c.Physics.JumpHeight},
		{"physics.advance", c.Physics.Advance},
		{"physics.tick_ms", c.Physics.TickMillis},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"obstacle.width", c.Obstacle.Width},
		{"obstacle.gap", c.Obstacle.Gap},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.v))
		}
	}

	if c.Obstacle.Gap >= c.Canvas.Height {
		errs = append(errs, fmt.Errorf("obstacle.gap (%d) must be smaller than canvas.height (%d)",
			c.Obstacle.Gap, c.Canvas.Height))
	}
	if 2*c.Player.Height >= c.Canvas.Height {
		errs = append(errs, fmt.Errorf("player.height (%d) leaves no room to fall on a %d px canvas",
			c.Player.Height, c.Canvas.Height))
	}
	if c.Obstacle.InitialGapHeight < 0 {
		errs = append(errs, fmt.Errorf("obstacle.initial_gap_height must not be negative, got %d",
			c.Obstacle.InitialGapHeight))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
