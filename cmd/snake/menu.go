package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a preset from a menu and play",
	Long: `Start Snake with a preset picker.

After a session ends you return to the menu. Session history is kept
across games until the menu is closed.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected preset
  Q/Esc        - Quit

Examples:
  snake menu
  snake menu --tick 100 --sound`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addOverrideFlags(menuCmd)
	menuCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend: tui (Bubble Tea) or tcell")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runMenu(_ *cobra.Command, _ []string) {
	checkFrontend()

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	exitOnError(err)
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rc := terminalConfig()
	played := map[string]bool{}

	for {
		result, err := tui.RunMenu(store, rc.ScreenW, rc.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rc.ScreenW, rc.ScreenH = result.Width, result.Height

		if result.Quit {
			break
		}

		cfg, preset, err := resolveConfig("", result.PresetID, flagOverrides)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		rules, err := snake.NewRules(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if err := playSession(logger, store, rules, preset, rc); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		played[preset.ID] = true
	}

	if store != nil {
		for _, p := range registry.List() {
			if played[p.ID] {
				printSummary(store, p.ID)
			}
		}
	}
}
