package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Physics holds the constants the simulation operations work with, in canvas pixels.
type Physics struct {
	CanvasW int `yaml:"canvas_w"`
	CanvasH int `yaml:"canvas_h"`

	Gravity    int `yaml:"gravity"`
	JumpHeight int `yaml:"jump_height"`
	Advance    int `yaml:"advance"`

	BirdX int `yaml:"bird_x"`
	BirdW int `yaml:"bird_w"`
	BirdH int `yaml:"bird_h"`

	ObstacleW        int `yaml:"obstacle_w"`
	Gap              int `yaml:"gap"`
	InitialGapHeight int `yaml:"initial_gap_height"`
}

// PhysicsFromConfig extracts the simulation constants from a game config.
func PhysicsFromConfig(cfg config.FlappyConfig) Physics {
	return Physics{
		CanvasW:          cfg.Canvas.Width,
		CanvasH:          cfg.Canvas.Height,
		Gravity:          cfg.Physics.Gravity,
		JumpHeight:       cfg.Physics.JumpHeight,
		Advance:          cfg.Physics.Advance,
		BirdX:            cfg.Player.X,
		BirdW:            cfg.Player.Width,
		BirdH:            cfg.Player.Height,
		ObstacleW:        cfg.Obstacle.Width,
		Gap:              cfg.Obstacle.Gap,
		InitialGapHeight: cfg.Obstacle.InitialGapHeight,
	}
}

// DefaultPhysics returns the constants of the default config.
func DefaultPhysics() Physics {
	return PhysicsFromConfig(config.DefaultFlappyConfig())
}

// Floor is the lowest position the bird falls to.
func (p Physics) Floor() int {
	return p.CanvasH - 2*p.BirdH
}

// StartY is the bird position at session start (vertically centered).
func (p Physics) StartY() int {
	return p.CanvasH/2 - p.BirdH
}

// GapRange is the exclusive upper bound for a freshly drawn gap height.
func (p Physics) GapRange() int {
	return p.CanvasH - p.Gap
}
