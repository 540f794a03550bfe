package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
	Long: `Show the saved preferences, or change one.

Examples:
  flappy settings
  flappy settings mute on
  flappy settings fullscreen off
  flappy settings reset`,
	Args: cobra.NoArgs,
	Run:  runSettingsShow,
}

var settingsMuteCmd = &cobra.Command{
	Use:       "mute <on|off>",
	Short:     "Start games muted",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	Run: func(_ *cobra.Command, args []string) {
		updateSetting(args[0], (*settings.Manager).SetMuted)
	},
}

var settingsFullscreenCmd = &cobra.Command{
	Use:       "fullscreen <on|off>",
	Short:     "Open the window frontend in fullscreen",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	Run: func(_ *cobra.Command, args []string) {
		updateSetting(args[0], (*settings.Manager).SetFullscreen)
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		prefs := settings.Open(stderrLogger("flappy"))
		if err := prefs.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printSettings(prefs)
	},
}

func init() {
	settingsCmd.AddCommand(settingsMuteCmd)
	settingsCmd.AddCommand(settingsFullscreenCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	printSettings(settings.Open(stderrLogger("flappy")))
}

// updateSetting parses an on/off argument and applies it with set.
func updateSetting(arg string, set func(*settings.Manager, bool) error) {
	on, err := parseOnOff(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prefs := settings.Open(stderrLogger("flappy"))
	if err := set(prefs, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSettings(prefs)
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func printSettings(prefs *settings.Manager) {
	s := prefs.Get()
	fmt.Printf("  muted       %s\n", onOff(s.Muted))
	fmt.Printf("  fullscreen  %s\n", onOff(s.Fullscreen))
	if !prefs.Persistent() {
		fmt.Println()
		fmt.Println("Settings storage is unavailable; changes will not persist.")
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
