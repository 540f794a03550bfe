package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// openData opens a gdata store rooted in a temporary home directory.
func openData(t *testing.T) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	data, err := gdata.Open(gdata.Config{AppName: "test_flappy_settings"})
	if err != nil {
		t.Fatalf("gdata.Open() failed: %v", err)
	}
	return data
}

func TestDefaults(t *testing.T) {
	m := NewManager(openData(t), logging.Discard())

	if got := m.Get(); got != Default() {
		t.Errorf("fresh settings = %+v, expected defaults", got)
	}
	if !m.Persistent() {
		t.Error("manager with a gdata backend should be persistent")
	}
}

func TestSaveAndReload(t *testing.T) {
	data := openData(t)

	m := NewManager(data, logging.Discard())
	if err := m.SetMuted(true); err != nil {
		t.Fatalf("SetMuted() error: %v", err)
	}
	if err := m.SetFullscreen(true); err != nil {
		t.Fatalf("SetFullscreen() error: %v", err)
	}

	reloaded := NewManager(data, logging.Discard())
	want := Settings{Muted: true, Fullscreen: true}
	if got := reloaded.Get(); got != want {
		t.Errorf("reloaded settings = %+v, expected %+v", got, want)
	}

	if err := reloaded.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if got := NewManager(data, logging.Discard()).Get(); got != Default() {
		t.Errorf("settings after reset = %+v, expected defaults", got)
	}
}

func TestCorruptSettingsFallBack(t *testing.T) {
	data := openData(t)
	if err := data.SaveObjectProp(settingsObject, settingsProperty, []byte("muted: [oops")); err != nil {
		t.Fatal(err)
	}

	m := NewManager(data, logging.Discard())
	if got := m.Get(); got != Default() {
		t.Errorf("corrupt settings should fall back to defaults, got %+v", got)
	}
	if err := m.Load(); err == nil {
		t.Error("Load() should report the decode error")
	}
}

func TestNilBackend(t *testing.T) {
	m := NewManager(nil, logging.Discard())

	if m.Persistent() {
		t.Error("manager without backend should not be persistent")
	}
	if err := m.SetMuted(true); err != nil {
		t.Fatalf("SetMuted() without backend error: %v", err)
	}
	if !m.Get().Muted {
		t.Error("setting should apply in memory")
	}
}
