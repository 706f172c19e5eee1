package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacdfa/internal/core"
	"github.com/vovakirdan/pacdfa/internal/game"
	"github.com/vovakirdan/pacdfa/internal/levels"
	"github.com/vovakirdan/pacdfa/internal/platform/tui"
	"github.com/vovakirdan/pacdfa/internal/storage"
)

var playSource levelSource

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level pack",
	Long: `Play the levels of a pack in order, starting from the first one.

Controls (configurable in the config file):
  W/A/S/D, arrows - Move
  R               - Retry after being caught, next level after a clear
  H               - Hint: first move of a shortest winning path
  Ctrl+S          - Save a text screenshot to ~/.pacdfa/screenshots
  ?               - Show all keys
  Q/Esc/Ctrl+C    - Quit

After the last level, clearing it wraps around to the first.

Examples:
  pacdfa play
  pacdfa play --pack classic
  pacdfa play --levels ./my-levels
  pacdfa play --config ./pacdfa.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playSource.register(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()
	app := loadApp(logger)

	pack, defs, err := playSource.load(app, logger)
	if err != nil {
		fail("%v", err)
	}

	seq, err := levels.NewSequencer(defs)
	if err != nil {
		fail("%v", err)
	}
	driver, err := game.New(seq)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(dbPath(app))
	if err != nil {
		logger.Warn("could not open run history, runs will not be recorded", "error", err)
		store = nil
	}

	width, height := terminalSize()
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height

	runErr := tui.Run(driver, tui.Options{
		Pack:    pack,
		App:     app,
		Runtime: rc,
		Store:   store,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("%v", runErr)
	}
}
