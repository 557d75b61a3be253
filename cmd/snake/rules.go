package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Flags shared by play, config and simulate.
var (
	flagPreset    string
	flagConfig    string
	flagOverrides config.Overrides
)

func addRulesFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Preset: classic, small, large (see 'snake presets')")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML (overrides --preset)")
	addOverrideFlags(cmd)
}

func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagOverrides.BoardSize, "board-size", 0, "Board side length")
	cmd.Flags().IntVar(&flagOverrides.TickIntervalMs, "tick", 0, "Tick interval in milliseconds")
	cmd.Flags().IntVar(&flagOverrides.PointsPerFood, "points", 0, "Points per food")
	cmd.Flags().IntVar(&flagOverrides.WinningScore, "win-score", 0, "Score that wins the game")
	cmd.Flags().IntVar(&flagOverrides.InitialLength, "length", 0, "Initial snake length")
}

// resolveConfig picks the configuration source: --config, then --preset, then
// the config search path. Flag overrides are applied last.
func resolveConfig(configPath, presetID string, o config.Overrides) (config.SnakeConfig, registry.Preset, error) {
	var (
		cfg    config.SnakeConfig
		preset registry.Preset
		err    error
	)

	switch {
	case configPath != "":
		cfg, err = config.LoadSnake(configPath)
		preset = registry.Preset{ID: "custom", Title: "Custom"}
	case presetID != "":
		preset, err = registry.Create(presetID)
		cfg = preset.Config
	default:
		cfg, err = config.LoadSnake("")
		preset, _ = registry.Create(snake.DefaultPreset)
	}
	if err != nil {
		return config.SnakeConfig{}, registry.Preset{}, err
	}

	cfg = o.Apply(cfg)
	preset.Config = cfg
	return cfg, preset, nil
}

func resolveRules() (snake.Rules, registry.Preset, error) {
	cfg, preset, err := resolveConfig(flagConfig, flagPreset, flagOverrides)
	if err != nil {
		return snake.Rules{}, registry.Preset{}, err
	}
	rules, err := snake.NewRules(cfg)
	if err != nil {
		return snake.Rules{}, registry.Preset{}, err
	}
	return rules, preset, nil
}

func newRand() *rand.Rand {
	seed := core.RuntimeConfig{Seed: flagSeed}.SeedOrNow()
	return rand.New(rand.NewSource(seed))
}
