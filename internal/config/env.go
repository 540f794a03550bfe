package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that can be supplied through the environment.
// Command-line flags take precedence; these provide the flag defaults.
type Env struct {
	ConfigPath  string        `env:"FLAPPY_CONFIG"`
	DBPath      string        `env:"FLAPPY_DB" envDefault:"~/.arcade/flappy.db"`
	Seed        int64         `env:"FLAPPY_SEED"`
	Mute        bool          `env:"FLAPPY_MUTE"`
	SSHAddr     string        `env:"FLAPPY_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"FLAPPY_HOST_KEY"`
	IdleTimeout time.Duration `env:"FLAPPY_IDLE_TIMEOUT" envDefault:"30m"`
	MaxSessions int           `env:"FLAPPY_MAX_SESSIONS"`
	LogLevel    string        `env:"FLAPPY_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses the FLAPPY_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
