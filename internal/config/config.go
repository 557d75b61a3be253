// Package config provides YAML-based configuration loading and validation
// for the Snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for a Snake game.
type SnakeConfig struct {
	Board   SnakeBoard   `yaml:"board"`
	Timing  SnakeTiming  `yaml:"timing"`
	Scoring SnakeScoring `yaml:"scoring"`
	Snake   SnakeBody    `yaml:"snake"`
}

// SnakeBoard defines the playing field.
type SnakeBoard struct {
	Size int `yaml:"size"` // Side length of the square grid
}

// SnakeTiming defines the fixed tick interval.
type SnakeTiming struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
}

// SnakeScoring defines how points are awarded and when the game is won.
type SnakeScoring struct {
	PointsPerFood int `yaml:"points_per_food"`
	WinningScore  int `yaml:"winning_score"`
}

// SnakeBody defines the snake created on start.
type SnakeBody struct {
	InitialLength int `yaml:"initial_length"`
}

// Validation errors.
var (
	ErrInitialLength = errors.New("config: snake.initial_length must be at least 1")
	ErrBoardTooSmall = errors.New("config: board.size must be at least snake.initial_length")
	ErrNoRoomForFood = errors.New("config: board has no free cell for food after placing the snake")
	ErrTickInterval  = errors.New("config: timing.tick_interval_ms must be positive")
	ErrPoints        = errors.New("config: scoring.points_per_food must be positive")
	ErrWinningScore  = errors.New("config: scoring.winning_score must be positive")
)

// TickInterval returns the tick interval as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMs) * time.Millisecond
}

// Validate checks the configuration for values that would produce a corrupt
// initial game. All violations are joined into the returned error.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Snake.InitialLength < 1 {
		errs = append(errs, ErrInitialLength)
	}
	if c.Board.Size < c.Snake.InitialLength || c.Board.Size < 1 {
		errs = append(errs, fmt.Errorf("%w (size %d, length %d)", ErrBoardTooSmall, c.Board.Size, c.Snake.InitialLength))
	} else if c.Board.Size*c.Board.Size <= c.Snake.InitialLength {
		errs = append(errs, ErrNoRoomForFood)
	}
	if c.Timing.TickIntervalMs <= 0 {
		errs = append(errs, ErrTickInterval)
	}
	if c.Scoring.PointsPerFood <= 0 {
		errs = append(errs, ErrPoints)
	}
	if c.Scoring.WinningScore <= 0 {
		errs = append(errs, ErrWinningScore)
	}

	return errors.Join(errs...)
}

// Overrides holds optional command-line overrides. Zero values are ignored.
type Overrides struct {
	BoardSize      int
	TickIntervalMs int
	PointsPerFood  int
	WinningScore   int
	InitialLength  int
}

// Apply returns a copy of cfg with every non-zero override applied.
func (o Overrides) Apply(cfg SnakeConfig) SnakeConfig {
	if o.BoardSize != 0 {
		cfg.Board.Size = o.BoardSize
	}
	if o.TickIntervalMs != 0 {
		cfg.Timing.TickIntervalMs = o.TickIntervalMs
	}
	if o.PointsPerFood != 0 {
		cfg.Scoring.PointsPerFood = o.PointsPerFood
	}
	if o.WinningScore != 0 {
		cfg.Scoring.WinningScore = o.WinningScore
	}
	if o.InitialLength != 0 {
		cfg.Snake.InitialLength = o.InitialLength
	}
	return cfg
}
