package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/sound"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagFrontend string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start a game of Snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  Enter/Space       - Start or restart
  P                 - Pause
  Tab               - Session history (tui frontend)
  Q/Esc/Ctrl+C      - Quit

Examples:
  snake play
  snake play --preset large
  snake play --board-size 12 --tick 100
  snake play --config ./my-snake.yaml --frontend tcell`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addRulesFlags(playCmd)
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend: tui (Bubble Tea) or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(cmd *cobra.Command, args []string) {
	checkFrontend()

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	exitOnError(err)
	defer closeLog()

	rules, preset, err := resolveRules()
	exitOnError(err)

	// Session history lives in memory only; the game works without it.
	store := openStore()

	rc := terminalConfig()
	runErr := playSession(logger, store, rules, preset, rc)

	if store != nil {
		printSummary(store, preset.ID)
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func checkFrontend() {
	if flagFrontend != "tui" && flagFrontend != "tcell" {
		exitOnError(fmt.Errorf("unknown frontend %q (use tui or tcell)", flagFrontend))
	}
}

func openStore() *storage.Store {
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: session history unavailable: %v\n", err)
		return nil
	}
	return store
}

// terminalConfig reads the current terminal size, falling back to 80x24.
func terminalConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	return rc
}

// playSession runs one game session on the selected frontend until the
// player quits.
func playSession(logger *log.Logger, store *storage.Store, rules snake.Rules, preset registry.Preset, rc core.RuntimeConfig) error {
	rc.TickInterval = rules.TickInterval

	if reqW, reqH := snake.RequiredSize(rules.BoardSize); reqW > rc.ScreenW || reqH > rc.ScreenH {
		fmt.Fprintf(os.Stderr, "Warning: board needs a %dx%d terminal, current size is %dx%d\n",
			reqW, reqH, rc.ScreenW, rc.ScreenH)
	}

	player := sound.NewPlayer(flagSound, logger)
	defer player.Close()

	engine, err := snake.NewEngine(rules, newRand(),
		snake.WithLogger(logger),
		snake.WithEventHandler(player.HandleEvent),
	)
	if err != nil {
		return err
	}

	logger.Info("session started",
		"preset", preset.ID,
		"frontend", flagFrontend,
		"board", rules.BoardSize,
		"tick", rc.TickInterval,
		"seed", rc.Seed,
	)
	defer logger.Info("session ended", "preset", preset.ID)

	if flagFrontend == "tcell" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return tcellui.Run(ctx, tcellui.Options{
			Engine: engine,
			Preset: preset,
			Store:  store,
			Logger: logger,
		})
	}

	return tui.Run(tui.Options{
		Engine: engine,
		Preset: preset,
		Store:  store,
		Logger: logger,
		Width:  rc.ScreenW,
		Height: rc.ScreenH,
	})
}

// printSummary prints the session's results after the terminal is restored.
func printSummary(store *storage.Store, presetID string) {
	stats, err := store.Stats(presetID)
	if err != nil || stats.Runs == 0 {
		return
	}

	fmt.Printf("Session summary (%s)\n", presetID)
	fmt.Printf("  Games played: %d\n", stats.Runs)
	fmt.Printf("  Wins:         %d\n", stats.Wins)
	fmt.Printf("  Best score:   %d\n", stats.BestScore)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
}
