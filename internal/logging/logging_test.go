package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "flappy", log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("run saved", "id", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "flappy") || !strings.Contains(out, "run saved") || !strings.Contains(out, "id=3") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"nonsense", log.InfoLevel},
		{"", log.InfoLevel},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flappy.log")

	logger, err := OpenFile(path, "flappy", log.InfoLevel)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	logger.Warn("no audio device")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "no audio device") {
		t.Errorf("log file missing message: %q", data)
	}
}
