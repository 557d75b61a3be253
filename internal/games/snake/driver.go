package snake

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// Driver calls Engine.Tick at a fixed interval and publishes each resulting
// state. It is the timer half of a frontend; input goes straight to the
// engine.
type Driver struct {
	engine   *Engine
	interval time.Duration
	publish  func(GameState)
	paused   atomic.Bool
}

// NewDriver creates a driver. publish may be nil.
func NewDriver(engine *Engine, interval time.Duration, publish func(GameState)) (*Driver, error) {
	if engine == nil {
		return nil, errors.New("snake: driver needs an engine")
	}
	if interval <= 0 {
		return nil, errors.New("snake: driver interval must be positive")
	}
	return &Driver{
		engine:   engine,
		interval: interval,
		publish:  publish,
	}, nil
}

// Run ticks until ctx is done. It returns nil on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	logger := d.engine.logger
	logger.Debug("driver started", "interval", d.interval)
	defer logger.Debug("driver stopped")

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.Step()
		}
	}
}

// Step performs one timer firing: it ticks the engine unless paused or the
// game is not playing, and publishes the new state. It reports whether a tick
// was applied.
func (d *Driver) Step() bool {
	if d.paused.Load() {
		return false
	}
	if d.engine.Status() != StatusPlaying {
		return false
	}

	state := d.engine.Tick()
	if d.publish != nil {
		d.publish(state)
	}
	return true
}

// Pause suspends ticking without changing the game state.
func (d *Driver) Pause() {
	d.paused.Store(true)
}

// Resume continues ticking after Pause.
func (d *Driver) Resume() {
	d.paused.Store(false)
}

// TogglePause flips the paused flag and returns the new value.
func (d *Driver) TogglePause() bool {
	for {
		old := d.paused.Load()
		if d.paused.CompareAndSwap(old, !old) {
			d.engine.logger.Debug("pause toggled", "paused", !old)
			return !old
		}
	}
}

// Paused reports whether ticking is suspended.
func (d *Driver) Paused() bool {
	return d.paused.Load()
}
