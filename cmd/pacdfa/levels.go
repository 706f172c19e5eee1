package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [pack]",
	Short: "List packs and their levels",
	Long: `Shows every registered level pack, or the levels of one pack with
their board size, pellet count and number of automaton states.

Examples:
  pacdfa levels
  pacdfa levels classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		defs, err := registry.Load(args[0])
		if err != nil {
			fail("%v", err)
		}
		printLevels(args[0], defs)
		return
	}

	packs := registry.List()
	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	maxLen := 4 // "Pack" header
	for _, p := range packs {
		maxLen = max(maxLen, len(p.Name))
	}

	fmt.Println("Available packs:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxLen, "Pack", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")
	for _, p := range packs {
		fmt.Printf("  %-*s  %s\n", maxLen, p.Name, p.Description)
	}
	fmt.Println()
	fmt.Println("Run 'pacdfa levels <pack>' to see its levels.")
}

func printLevels(pack string, defs []*automaton.Definition) {
	fmt.Printf("Pack %s, %d levels:\n\n", pack, len(defs))
	fmt.Printf("  %-3s  %-20s  %-7s  %-7s  %s\n", "#", "Name", "Board", "Pellets", "States")
	fmt.Printf("  %-3s  %-20s  %-7s  %-7s  %s\n", "-", "----", "-----", "-------", "------")
	for i, def := range defs {
		b := def.Board
		fmt.Printf("  %-3d  %-20s  %-7s  %-7d  %d\n",
			i+1, def.Name, fmt.Sprintf("%dx%d", b.Width, b.Height), len(b.Pellets), def.StateCount())
	}
}
