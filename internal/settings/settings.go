// Package settings persists player preferences with gdata, so they survive across
// sessions on every platform gdata supports.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "tui_flappy"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the persisted player preferences.
type Settings struct {
	Muted      bool `yaml:"muted"`
	Fullscreen bool `yaml:"fullscreen"` // Window frontend only
}

// Default returns the settings used when nothing has been saved yet.
func Default() Settings {
	return Settings{}
}

// Manager loads and saves Settings. A Manager without a gdata backend keeps
// settings in memory only.
type Manager struct {
	data     *gdata.Manager
	settings Settings
	logger   *log.Logger
}

// Open opens the gdata store for AppName and loads the saved settings.
// If the store is unavailable the manager still works, without persistence.
func Open(logger *log.Logger) *Manager {
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable, preferences will not persist", "error", err)
		data = nil
	}
	return NewManager(data, logger)
}

// NewManager wraps a gdata manager, which may be nil, and loads the saved settings.
func NewManager(data *gdata.Manager, logger *log.Logger) *Manager {
	m := &Manager{
		data:     data,
		settings: Default(),
		logger:   logger,
	}
	if err := m.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "error", err)
	}
	return m
}

// Persistent reports whether changes survive the process.
func (m *Manager) Persistent() bool {
	return m.data != nil
}

// Load reads the saved settings. Missing settings are not an error.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.data == nil || !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("settings: cannot decode: %w", err)
	}
	m.settings = s
	return nil
}

// Save writes the current settings.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	m.logger.Debug("settings saved", "muted", m.settings.Muted, "fullscreen", m.settings.Fullscreen)
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SetMuted updates the mute preference and saves it.
func (m *Manager) SetMuted(muted bool) error {
	m.settings.Muted = muted
	return m.Save()
}

// SetFullscreen updates the fullscreen preference and saves it.
func (m *Manager) SetFullscreen(fullscreen bool) error {
	m.settings.Fullscreen = fullscreen
	return m.Save()
}

// Reset restores and saves the defaults.
func (m *Manager) Reset() error {
	m.settings = Default()
	return m.Save()
}
