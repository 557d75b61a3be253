package core

import "time"

// RuntimeConfig contains configuration passed to a frontend at startup.
// Frontends use this to size the screen and to seed the food placement RNG.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Interval between simulation ticks
	Seed         int64         // RNG seed for reproducible food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 150 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// SeedOrNow returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
