package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse, replay and verify journaled runs",
	Long: `Every finished run is journaled with its seed, starting state and flap ticks,
which is enough to reproduce it exactly.

Examples:
  flappy runs list
  flappy runs replay        # pick a run interactively
  flappy runs replay 12
  flappy runs verify
  flappy runs delete 12`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	Run:   runRunsList,
}

var runsReplayCmd = &cobra.Command{
	Use:   "replay [id]",
	Short: "Watch a journaled run in the terminal",
	Args:  cobra.MaximumNArgs(1),
	Run:   runRunsReplay,
}

var runsVerifyCmd = &cobra.Command{
	Use:   "verify [id...]",
	Short: "Re-simulate runs headlessly and check they end as recorded",
	Run:   runRunsVerify,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a run from the journal",
	Args:  cobra.ExactArgs(1),
	Run:   runRunsDelete,
}

var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every journaled run",
	Args:  cobra.NoArgs,
	Run:   runRunsClear,
}

func init() {
	runsCmd.PersistentFlags().IntVar(&flagRunsLimit, "limit", 20, "Number of recent runs to show or verify")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsReplayCmd)
	runsCmd.AddCommand(runsVerifyCmd)
	runsCmd.AddCommand(runsDeleteCmd)
	runsCmd.AddCommand(runsClearCmd)
}

// mustOpenStore opens the journal or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	return store
}

func parseRunID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", arg)
		os.Exit(1)
	}
	return id
}

func runRunsList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	runs, err := store.RecentRuns(flagRunsLimit)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run Journal")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-6s  %-7s  %-14s  %s\n", "Run", "Score", "Ticks", "Source", "Date")
	fmt.Printf("  %-6s  %-6s  %-7s  %-14s  %s\n", "---", "-----", "-----", "------", "----")

	for _, r := range runs {
		fmt.Printf("  %-6s  %-6d  %-7d  %-14s  %s\n",
			fmt.Sprintf("#%d", r.ID), r.Score, r.Ticks, r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runRunsReplay(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	cfg := terminalConfig()

	var id int64
	if len(args) == 1 {
		id = parseRunID(args[0])
	} else {
		picked, ok, err := tui.BrowseRuns(store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			return
		}
		id = picked
	}

	entry, err := store.Run(id)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := fileLogger()
	defer logCloser.Close()

	if gameCfg, err := loadGameConfig(); err == nil {
		cfg.TickInterval = gameCfg.TickInterval()
	}

	if err := tui.RunReplay(sim.NewWithPhysics(entry.Run.Physics), cfg, entry, tui.Options{Logger: logger}); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}

func runRunsVerify(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	var entries []storage.RunEntry
	if len(args) == 0 {
		runs, err := store.RecentRuns(flagRunsLimit)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		entries = runs
	}
	for _, arg := range args {
		e, err := store.Run(parseRunID(arg))
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		entries = append(entries, e)
	}

	failed := 0
	for _, e := range entries {
		_, err := sim.Replay(e.Run)
		switch {
		case err == nil:
			fmt.Printf("  #%-6d ok        score %d in %d ticks\n", e.ID, e.Score, e.Ticks)
		case errors.Is(err, sim.ErrReplayDiverged):
			failed++
			fmt.Printf("  #%-6d DIVERGED  %v\n", e.ID, err)
		default:
			failed++
			fmt.Printf("  #%-6d ERROR     %v\n", e.ID, err)
		}
	}

	fmt.Printf("\n%d run(s) verified, %d failed\n", len(entries), failed)
	if failed > 0 {
		store.Close()
		os.Exit(1)
	}
}

func runRunsDelete(_ *cobra.Command, args []string) {
	id := parseRunID(args[0])

	store := mustOpenStore()
	err := store.DeleteRun(id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted run #%d\n", id)
}

func runRunsClear(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	n, err := store.CountRuns()
	if err == nil {
		err = store.ClearRuns()
	}
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %d run(s)\n", n)
}
