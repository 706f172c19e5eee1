package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|dir>",
	Short: "Validate level files",
	Long: `Load level files (JSON, YAML or the legacy mapa_N bundle) and validate
every automaton: state keys, board bounds, walls, pellet masks and symbols.
Also reports whether each level can be won at all.

Exits with status 1 when any level is invalid.

Examples:
  pacdfa check ./levels/level01.json
  pacdfa check ./levels`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	logger := newLogger()

	defs, err := levels.LoadPath(args[0], logger)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("%d levels OK\n\n", len(defs))
	for i, def := range defs {
		var status string
		if path, err := automaton.Solve(def); err != nil {
			status = "cannot be won"
		} else {
			status = fmt.Sprintf("winnable in %d moves", len(path))
		}
		fmt.Printf("  %-3d  %-20s  %d states, %s\n", i+1, def.Name, def.StateCount(), status)
	}
}
