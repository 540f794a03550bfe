// flappy is a one-obstacle flappy arcade game for the terminal and the desktop.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy serve             - Host the game over SSH
//	flappy runs list         - List journaled runs
//	flappy runs replay [id]  - Watch a journaled run
//	flappy runs verify [id]  - Re-simulate runs headlessly
//	flappy settings          - Show or change saved preferences
//	flappy config            - Print the effective game configuration
//
// Global flags default to the FLAPPY_* environment variables:
//
//	--config <path> - Game config YAML (FLAPPY_CONFIG)
//	--seed <value>  - RNG seed for reproducible sessions (FLAPPY_SEED)
//	--db <path>     - Run journal database (FLAPPY_DB)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// env holds the FLAPPY_* variables; flags default to them
	env, envErr = loadEnv()
)

// loadEnv parses the environment. On error it keeps usable flag defaults; the
// error surfaces before any command runs.
func loadEnv() (config.Env, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return config.Env{DBPath: "~/.arcade/flappy.db", SSHAddr: ":23234", IdleTimeout: 30 * time.Minute, LogLevel: "info"}, err
	}
	return e, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide the bird through the gap",
	Long: `Flappy is a one-obstacle arcade game. The bird falls at a constant rate,
each flap lifts it by a fixed height, and every obstacle that scrolls past
scores a point. Touching an obstacle ends the run.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Host the game over SSH
  runs     - Browse, replay and verify journaled runs
  settings - Show or change saved preferences
  config   - Print the effective game configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy window
  flappy serve --ssh :2222
  flappy runs replay 12`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return envErr
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(configCmd)
}
