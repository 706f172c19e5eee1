package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacdfa/internal/core"
	"github.com/vovakirdan/pacdfa/internal/game"
	"github.com/vovakirdan/pacdfa/internal/levels"
	"github.com/vovakirdan/pacdfa/internal/platform/tui"
)

var (
	replaySource levelSource
	replayLevel  int
	replayTrace  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Feed moves through a level and print the board",
	Long: `Run a move string through the game driver without a terminal UI and
print the final board and state. Letters other than W, A, S, D and R are
ignored, exactly as unknown keys are during play. R retries after a death and
moves to the next level after a clear.

Examples:
  pacdfa replay DDDDDDD
  pacdfa replay --level 2 --trace SSDDR
  pacdfa replay --levels ./my-levels wasd`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaySource.register(replayCmd)
	replayCmd.Flags().IntVar(&replayLevel, "level", 1, "Level to start on (1-based)")
	replayCmd.Flags().BoolVar(&replayTrace, "trace", false, "Print the state key after every accepted input")
}

func runReplay(_ *cobra.Command, args []string) {
	logger := newLogger()
	app := loadApp(logger)

	pack, defs, err := replaySource.load(app, logger)
	if err != nil {
		fail("%v", err)
	}
	if replayLevel < 1 || replayLevel > len(defs) {
		fail("level %d out of range, pack %s has %d levels", replayLevel, pack, len(defs))
	}

	seq, err := levels.NewSequencer(defs)
	if err != nil {
		fail("%v", err)
	}
	for i := 0; i < replayLevel-1; i++ {
		seq.Advance()
	}

	var opts []game.Option
	if replayTrace {
		opts = append(opts, game.WithObserver(game.ObserverFunc(func(obs game.Observation) {
			fmt.Printf("%3d  %-14s %s\n", obs.Moves, obs.Key, obs.Mode)
		})))
	}
	driver, err := game.New(seq, opts...)
	if err != nil {
		fail("%v", err)
	}

	accepted, err := driver.Feed(args[0])
	if err != nil {
		fail("%v", err)
	}

	view := tui.NewBoardView(app.Theme, core.DefaultConfig())
	def := driver.Level()
	w, h := view.Size(def)
	screen := core.NewScreen(w, h)
	obs := driver.Observe()
	view.Render(screen, def, obs, "")

	if replayTrace {
		fmt.Println()
	}
	fmt.Println(screen.String())
	fmt.Println()
	fmt.Printf("accepted %d of %d inputs, mode %s, level %d/%d, state %s\n",
		accepted, len([]rune(args[0])), obs.Mode, obs.Level+1, obs.LevelCount, obs.Key)
}
