// snake is a terminal Snake game.
//
// Usage:
//
//	snake play               - Play (Bubble Tea frontend by default)
//	snake menu               - Pick a preset from a menu, then play
//	snake presets            - List available presets
//	snake config             - Print the effective configuration as YAML
//	snake simulate           - Run a scripted game headlessly and print the board
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a square grid: steer the snake to the food, grow, and avoid the
walls and your own body. Reach the winning score or fill the board to win.

Available commands:
  play      - Start a game
  menu      - Pick a preset from a menu
  presets   - Show built-in presets
  config    - Print the effective configuration
  simulate  - Replay a scripted list of moves without a terminal UI

Examples:
  snake play
  snake play --preset small
  snake play --frontend tcell --sound
  snake config --preset large
  snake simulate --moves "RRRDDL" --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger. Without --log-file logs are discarded,
// since the game owns the terminal.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
