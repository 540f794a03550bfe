package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in each search directory.
const ConfigFile = "flappy.yaml"

// LoadFlappy loads the game configuration. An explicit path must exist and parse.
// Otherwise the search paths are tried in order, skipping unreadable or invalid
// files, and the embedded defaults are used last.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		cfg, err := readFlappy(customPath)
		if err != nil {
			return FlappyConfig{}, err
		}
		return cfg, nil
	}

	for _, path := range SearchPaths() {
		if cfg, err := readFlappy(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseFlappy(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil
	}
	return cfg, nil
}

// SearchPaths lists the implicit config locations in lookup order: the user's
// ~/.arcade/configs directory, then ./configs.
func SearchPaths() []string {
	var paths []string
	if dir, err := DataPath("configs"); err == nil {
		paths = append(paths, filepath.Join(dir, ConfigFile))
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

func readFlappy(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := ParseFlappy(data)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseFlappy decodes a YAML document on top of the defaults and validates it.
// Keys missing from the document keep their default values. An empty document
// yields the defaults.
func ParseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// MarshalFlappy encodes the configuration as YAML.
func MarshalFlappy(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal flappy config: %w", err)
	}
	return data, nil
}
