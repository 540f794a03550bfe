package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: FlappyCanvas{
			Width:  800,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:    6,
			JumpHeight: 100,
			Advance:    15,
			TickMillis: 30,
		},
		Player: FlappyPlayer{
			X:      0,
			Width:  70,
			Height: 70,
		},
		Obstacle: FlappyObstacle{
			Width:            40,
			Gap:              200,
			InitialGapHeight: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
