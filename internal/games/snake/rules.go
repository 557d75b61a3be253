package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Rules holds the fixed parameters of a game. They never change while a
// game is running; a different board size needs a new Engine.
type Rules struct {
	BoardSize     int
	TickInterval  time.Duration
	PointsPerFood int
	WinningScore  int
	InitialLength int
}

// DefaultRules returns the rules built from config.DefaultSnakeConfig.
func DefaultRules() Rules {
	return rulesFromConfig(config.DefaultSnakeConfig())
}

// NewRules validates cfg and converts it to Rules.
func NewRules(cfg config.SnakeConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, fmt.Errorf("snake: invalid rules: %w", err)
	}
	return rulesFromConfig(cfg), nil
}

func rulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		BoardSize:     cfg.Board.Size,
		TickInterval:  cfg.TickInterval(),
		PointsPerFood: cfg.Scoring.PointsPerFood,
		WinningScore:  cfg.Scoring.WinningScore,
		InitialLength: cfg.Snake.InitialLength,
	}
}

// Config converts the rules back to their YAML form.
// Intervals are truncated to whole milliseconds.
func (r Rules) Config() config.SnakeConfig {
	return config.SnakeConfig{
		Board:   config.SnakeBoard{Size: r.BoardSize},
		Timing:  config.SnakeTiming{TickIntervalMs: int(r.TickInterval / time.Millisecond)},
		Scoring: config.SnakeScoring{PointsPerFood: r.PointsPerFood, WinningScore: r.WinningScore},
		Snake:   config.SnakeBody{InitialLength: r.InitialLength},
	}
}

// Validate applies the same checks as config.SnakeConfig.Validate, so
// hand-built rules are rejected before they can produce an overlapping snake.
func (r Rules) Validate() error {
	if err := r.Config().Validate(); err != nil {
		return fmt.Errorf("snake: invalid rules: %w", err)
	}
	return nil
}
