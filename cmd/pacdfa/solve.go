package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacdfa/internal/automaton"
)

var (
	solveSource levelSource
	solveLevel  int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the shortest winning moves per level",
	Long: `Search each level automaton breadth-first for the shortest move sequence
that eats every pellet and ends on a final state, never passing through death.

Examples:
  pacdfa solve
  pacdfa solve --level 4
  pacdfa solve --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveSource.register(solveCmd)
	solveCmd.Flags().IntVar(&solveLevel, "level", 0, "Only solve this level (1-based)")
}

func runSolve(_ *cobra.Command, _ []string) {
	logger := newLogger()
	app := loadApp(logger)

	pack, defs, err := solveSource.load(app, logger)
	if err != nil {
		fail("%v", err)
	}
	if solveLevel < 0 || solveLevel > len(defs) {
		fail("level %d out of range, pack %s has %d levels", solveLevel, pack, len(defs))
	}

	for i, def := range defs {
		if solveLevel != 0 && i != solveLevel-1 {
			continue
		}
		path, err := automaton.Solve(def)
		switch {
		case errors.Is(err, automaton.ErrUnsolvable):
			fmt.Printf("%d  %-20s  unsolvable\n", i+1, def.Name)
		case err != nil:
			fail("%v", err)
		default:
			fmt.Printf("%d  %-20s  %s (%d moves)\n", i+1, def.Name, automaton.JoinSymbols(path), len(path))
		}
	}
}
