package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
	"github.com/vovakirdan/tui-flappy/internal/settings"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window at canvas resolution.

Controls:
  Space/Up/W/Click - Flap (also starts and restarts)
  Enter            - Start / restart
  M                - Mute / unmute
  F                - Toggle fullscreen
  Q/Esc            - Quit

Examples:
  flappy window
  flappy window --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := stderrLogger("flappy")
	prefs := settings.Open(logger)
	audio, audioCloser := openAudio(logger, prefs)
	store := openStore(logger)

	runErr := gui.Run(sim.New(gameCfg), flagSeed, gameCfg.TickInterval(), gui.Options{
		Store:    store,
		Settings: prefs,
		Audio:    audio,
		Logger:   logger,
	})

	audioCloser.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
