package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacdfa/internal/platform/tui"
	"github.com/vovakirdan/pacdfa/internal/storage"
)

const recentRunCount = 5

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show run history",
	Long: `Display clears, deaths and the best move count for each level of a pack,
followed by the three best clears of every level and the latest runs.

Examples:
  pacdfa scores
  pacdfa scores classic
  pacdfa scores --interactive
  pacdfa scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the pack's history")
}

func runScores(_ *cobra.Command, args []string) {
	logger := newLogger()
	app := loadApp(logger)

	store, err := storage.Open(dbPath(app))
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		w, h := terminalSize()
		if err := tui.RunScoreboard(store, w, h); err != nil {
			fail("%v", err)
		}
		return
	}

	pack := app.Pack
	if len(args) == 1 {
		pack = args[0]
	}

	if flagClear {
		if err := store.Clear(pack); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared history of pack %s.\n", pack)
		return
	}

	if err := writeHistory(os.Stdout, store, pack, recentRunCount); err != nil {
		fail("%v", err)
	}
}

// writeHistory prints the per-level table, the best clears of each level
// and the latest runs of pack.
func writeHistory(w io.Writer, store *storage.Store, pack string, recent int) error {
	stats, err := store.LevelStats(pack)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run history - %s\n\n", pack)
	if len(stats) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'pacdfa play --pack %s' to get on the board!\n", pack)
		return nil
	}

	fmt.Fprintf(w, "  %-3s  %-20s  %-6s  %-6s  %s\n", "#", "Level", "Clears", "Deaths", "Best")
	fmt.Fprintf(w, "  %-3s  %-20s  %-6s  %-6s  %s\n", "-", "-----", "------", "------", "----")
	for _, st := range stats {
		best := "-"
		if st.Clears > 0 {
			best = fmt.Sprintf("%d", st.BestMoves)
		}
		fmt.Fprintf(w, "  %-3d  %-20s  %-6d  %-6d  %s\n", st.Level+1, st.LevelName, st.Clears, st.Deaths, best)
	}

	for _, st := range stats {
		if st.Clears == 0 {
			continue
		}
		runs, err := store.BestClears(pack, st.Level, 3)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nBest clears - %d %s\n", st.Level+1, st.LevelName)
		for i, r := range runs {
			fmt.Fprintf(w, "  %d. %3d moves  %8s  %s\n", i+1, r.Moves, r.Duration, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	runs, err := store.RecentRuns(pack, recent)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nRecent runs\n")
	for _, r := range runs {
		fmt.Fprintf(w, "  %s  %-3d %-20s  %-7s  %3d moves\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Level+1, r.LevelName, r.Outcome, r.Moves)
	}
	return nil
}
