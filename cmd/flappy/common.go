package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/audio/device"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/settings"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// logFile is where interactive terminal sessions log, away from the alt screen.
const logFile = "~/.arcade/flappy.log"

// loadGameConfig loads the game configuration named by --config.
func loadGameConfig() (config.FlappyConfig, error) {
	return config.LoadFlappy(flagConfig)
}

// stderrLogger returns a logger for commands that own no terminal UI.
func stderrLogger(prefix string) *log.Logger {
	return logging.New(os.Stderr, prefix, logging.ParseLevel(flagLogLevel))
}

// fileLogger returns a logger for terminal UI commands. It falls back to a
// discarding logger if the log file cannot be opened.
func fileLogger() (*log.Logger, io.Closer) {
	f, err := logging.OpenFile(logFile, "flappy", logging.ParseLevel(flagLogLevel))
	if err != nil {
		return logging.Discard(), io.NopCloser(nil)
	}
	return f.Logger, f
}

// openStore opens the run journal. Without it the game still works; runs are
// just not journaled.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		return nil
	}
	return store
}

// openAudio creates the audio player and connects it to the speaker.
// Returns a nil Audio when no device is available.
func openAudio(logger *log.Logger, prefs *settings.Manager) (sim.Audio, io.Closer) {
	player := audio.NewPlayer()
	player.SetMuted(prefs.Get().Muted || env.Mute)

	spk, err := device.Open(player)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil, io.NopCloser(nil)
	}
	return player, spk
}

// terminalConfig returns a runtime config sized to the controlling terminal,
// falling back to the 80x24 default.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
