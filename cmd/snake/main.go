// snake is a terminal snake game drawn with relative cursor moves below the
// current prompt.
//
// Usage:
//
//	snake                    - Play with the configured board
//	snake play -r 15 -c 30   - Play on a 15x30 board
//	snake config             - Print the effective configuration
//	snake config --default   - Print the embedded default YAML
//
// Global flags:
//
//	-r, --row <n>       - Board rows
//	-c, --col <n>       - Board columns
//	--tick <ms>         - Sleep per loop iteration
//	--seed <value>      - RNG seed for reproducible food placement
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagRows     int
	flagCols     int
	flagTick     int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake draws a small board below your prompt and plays in place.

Controls:
  Arrow keys  - Steer
  q / Ctrl+C  - Quit

The snake speeds up as it grows. Fill the board to win.

Examples:
  snake
  snake -r 10 -c 40
  snake play --seed 42
  snake config --default > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVarP(&flagRows, "row", "r", 20, "Board rows")
	rootCmd.PersistentFlags().IntVarP(&flagCols, "col", "c", 20, "Board columns")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 50, "Sleep per loop iteration in milliseconds")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
