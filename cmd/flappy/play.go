package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/settings"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W/Click - Flap (also starts and restarts)
  Enter            - Start / restart
  M                - Mute / unmute
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Esc/Ctrl+C     - Quit

Finished runs are journaled to --db and can be replayed with 'flappy runs replay'.
Logs go to ~/.arcade/flappy.log.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := fileLogger()
	defer logCloser.Close()

	prefs := settings.Open(logger)
	audio, audioCloser := openAudio(logger, prefs)
	store := openStore(logger)

	cfg := terminalConfig()
	cfg.TickInterval = gameCfg.TickInterval()
	cfg.Seed = flagSeed

	runErr := tui.Run(sim.New(gameCfg), cfg, tui.Options{
		Store:    store,
		Settings: prefs,
		Audio:    audio,
		Logger:   logger,
		Source:   "local",
	})

	// Release resources before potential exit
	audioCloser.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
