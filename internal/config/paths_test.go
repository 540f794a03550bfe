package config

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/.arcade/flappy.db", filepath.Join(home, ".arcade", "flappy.db")},
		{"/tmp/flappy.db", "/tmp/flappy.db"},
		{"relative.db", "relative.db"},
		{"~other/x", "~other/x"},
		{"", ""},
	}

	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDataPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DataPath("screenshots")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".arcade", "screenshots"); got != want {
		t.Errorf("DataPath() = %q, expected %q", got, want)
	}
}
