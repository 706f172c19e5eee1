// pacdfa is a Pac-Man style puzzle for the terminal where every level is a
// precomputed finite automaton over the moves W, A, S, D and the reset R.
//
// Usage:
//
//	pacdfa play              - Play a level pack
//	pacdfa levels [pack]     - List packs and their levels
//	pacdfa check <path>      - Validate level files
//	pacdfa solve             - Print the shortest winning moves per level
//	pacdfa replay <moves>    - Feed moves through a level and print the board
//	pacdfa scores [pack]     - Show run history
//	pacdfa serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.pacdfa/config.yaml, ./configs/pacdfa.yaml)
//	--db <path>         - Run history database (default from config: ~/.pacdfa/runs.db)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacdfa",
	Short: "pacdfa - a DFA-driven Pac-Man puzzle for your terminal",
	Long: `pacdfa plays Pac-Man style puzzle levels whose every rule is a
precomputed finite automaton. Eat every pellet, reach the goal, avoid the ghosts.

Available commands:
  play     - Play a level pack
  levels   - List packs and their levels
  check    - Validate level files
  solve    - Print the shortest winning moves per level
  replay   - Feed moves through a level and print the board
  scores   - Show run history
  serve    - Start SSH server for remote play

Examples:
  pacdfa play
  pacdfa play --levels ./my-levels
  pacdfa solve --level 3
  pacdfa replay DDDDDDD
  pacdfa serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
