package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/config"
	"github.com/vovakirdan/pacdfa/internal/levels"
	"github.com/vovakirdan/pacdfa/internal/registry"
)

// levelSource holds the --pack and --levels flags of commands that play levels.
type levelSource struct {
	pack string
	dir  string
}

func (s *levelSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.pack, "pack", "", "Level pack to use (default from config)")
	cmd.Flags().StringVar(&s.dir, "levels", "", "Directory or file of levels; overrides --pack")
}

// load resolves the flags against the config and returns the pack name and
// its validated levels.
func (s *levelSource) load(app config.App, logger *log.Logger) (string, []*automaton.Definition, error) {
	dir := s.dir
	if dir == "" && s.pack == "" {
		dir = app.LevelsDir
	}
	if dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return "", nil, err
		}
		defs, err := levels.LoadPath(expanded, logger)
		if err != nil {
			return "", nil, err
		}
		return filepath.Base(filepath.Clean(expanded)), defs, nil
	}

	pack := s.pack
	if pack == "" {
		pack = app.Pack
	}
	if pack == "" {
		pack = levels.DefaultPack
	}
	defs, err := registry.Load(pack)
	if err != nil {
		return "", nil, err
	}
	return pack, defs, nil
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacdfa",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadApp reads the config or exits with an error.
func loadApp(logger *log.Logger) config.App {
	app, source, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("config loaded", "source", source)
	return app
}

// dbPath returns the --db flag or the configured database path.
func dbPath(app config.App) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return app.DBPath
}

func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
