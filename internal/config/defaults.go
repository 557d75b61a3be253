package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Size: 20,
		},
		Timing: SnakeTiming{
			TickIntervalMs: 150,
		},
		Scoring: SnakeScoring{
			PointsPerFood: 3,
			WinningScore:  30,
		},
		Snake: SnakeBody{
			InitialLength: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
