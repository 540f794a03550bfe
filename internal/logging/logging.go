// Package logging builds the charmbracelet loggers used across the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// New returns a timestamped logger writing to w.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel parses a level name, falling back to info on garbage.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// File is a logger backed by an append-only file.
type File struct {
	*log.Logger
	f *os.File
}

// OpenFile opens (or creates) a log file and returns a logger writing to it.
// Used by the interactive terminal game, where stderr output would corrupt the
// alternate screen.
func OpenFile(path, prefix string, level log.Level) (*File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return &File{Logger: New(f, prefix, level), f: f}, nil
}

// Close closes the underlying file.
func (l *File) Close() error {
	return l.f.Close()
}
