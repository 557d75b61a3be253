package snake

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewDriverValidation(t *testing.T) {
	e := newTestEngine(t, DefaultRules(), seeded(1))
	if _, err := NewDriver(nil, time.Millisecond, nil); err == nil {
		t.Error("expected error for nil engine")
	}
	if _, err := NewDriver(e, 0, nil); err == nil {
		t.Error("expected error for zero interval")
	}
}

func TestDriverStep(t *testing.T) {
	e := newTestEngine(t, DefaultRules(), seeded(1))

	var published int
	d, err := NewDriver(e, time.Millisecond, func(GameState) { published++ })
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}

	if d.Step() {
		t.Error("Step should not tick before the game starts")
	}

	e.Start()
	if !d.Step() {
		t.Error("Step should tick a playing game")
	}
	if published != 1 {
		t.Errorf("published %d states, expected 1", published)
	}

	d.Pause()
	if d.Step() {
		t.Error("Step should not tick while paused")
	}
	if e.Ticks() != 1 {
		t.Errorf("Ticks = %d, expected 1", e.Ticks())
	}

	d.Resume()
	if !d.Step() {
		t.Error("Step should tick after Resume")
	}
}

func TestDriverTogglePause(t *testing.T) {
	e := newTestEngine(t, DefaultRules(), seeded(1))
	d, err := NewDriver(e, time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}

	if !d.TogglePause() || !d.Paused() {
		t.Error("first toggle should pause")
	}
	if d.TogglePause() || d.Paused() {
		t.Error("second toggle should resume")
	}
}

func TestDriverRunStopsOnCancel(t *testing.T) {
	rules := testRules(10)
	rules.WinningScore = 1 << 20
	e := newTestEngine(t, rules, seeded(1))
	e.Start()

	var published atomic.Int32
	d, err := NewDriver(e, time.Millisecond, func(GameState) { published.Add(1) })
	if err != nil {
		t.Fatalf("NewDriver() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for e.Status() == StatusPlaying {
		select {
		case <-deadline:
			t.Fatal("driver did not tick the game to an end")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned %v, expected nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// The snake heads right from (5,5) and crashes on the 5th tick; nothing
	// ticks after that.
	if e.Ticks() != 5 {
		t.Errorf("Ticks = %d, expected 5", e.Ticks())
	}
	if published.Load() != 5 {
		t.Errorf("published %d states, expected 5", published.Load())
	}
}
