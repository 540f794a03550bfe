package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArcadeDir is the per-user data directory, relative to the home directory.
const ArcadeDir = ".arcade"

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// DataPath returns a path inside the per-user data directory.
func DataPath(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot find home directory: %w", err)
	}
	return filepath.Join(append([]string{home, ArcadeDir}, elem...)...), nil
}
