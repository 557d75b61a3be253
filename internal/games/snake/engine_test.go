package snake

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestEngine(t *testing.T, rules Rules, rng Source, opts ...EngineOption) *Engine {
	t.Helper()
	e, err := NewEngine(rules, rng, opts...)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

func TestNewEngineValidation(t *testing.T) {
	bad := DefaultRules()
	bad.WinningScore = 0
	if _, err := NewEngine(bad, seeded(1)); err == nil {
		t.Error("expected error for invalid rules")
	}
	if _, err := NewEngine(DefaultRules(), nil); err == nil {
		t.Error("expected error for nil random source")
	}
}

func TestEngineLifecycle(t *testing.T) {
	e := newTestEngine(t, DefaultRules(), seeded(5))

	if e.Status() != StatusNotStarted {
		t.Fatalf("Status = %s, expected not_started", e.Status())
	}

	// Ticks before start do nothing.
	before := e.State()
	after := e.Tick()
	if !sameSnake(before.Snake, after.Snake) || e.Ticks() != 0 {
		t.Error("tick before start should not move the snake")
	}

	s := e.Start()
	if s.Status != StatusPlaying {
		t.Fatalf("Status = %s after Start, expected playing", s.Status)
	}

	e.Tick()
	e.Tick()
	if e.Ticks() != 2 {
		t.Errorf("Ticks = %d, expected 2", e.Ticks())
	}

	e.Start()
	if e.Ticks() != 0 {
		t.Errorf("Start should reset the tick counter, got %d", e.Ticks())
	}
}

func TestEngineRunsIntoWall(t *testing.T) {
	rules := testRules(10)
	e := newTestEngine(t, rules, fixedSource(0))
	e.Start()

	// Food sits at (0,0), far from the path, so the snake crashes into the right wall.
	for i := 0; i < 20 && e.Status() == StatusPlaying; i++ {
		e.Tick()
	}

	s := e.State()
	if s.Status != StatusGameOver {
		t.Fatalf("Status = %s, expected game_over", s.Status)
	}
	if s.Head() != (Position{X: 9, Y: 5}) {
		t.Errorf("head = %s, expected (9,5)", s.Head())
	}
	// Head starts at x=5 and needs 4 moves to reach x=9, the 5th tick crashes.
	if e.Ticks() != 5 {
		t.Errorf("Ticks = %d, expected 5", e.Ticks())
	}
}

func TestEngineEvents(t *testing.T) {
	var got []EventKind
	handler := func(ev Event) {
		got = append(got, ev.Kind)
	}

	rules := testRules(10)
	rules.WinningScore = 3
	e := newTestEngine(t, rules, fixedSource(0), WithEventHandler(handler))

	s := e.Start()
	// Food is at (0,0); steer the snake there: up to y=0 then left.
	for i := 0; i < 40 && e.Status() == StatusPlaying; i++ {
		head := e.State().Head()
		switch {
		case head.Y > 0:
			e.RequestDirection(DirUp)
		default:
			e.RequestDirection(DirLeft)
		}
		s = e.Tick()
	}

	if s.Status != StatusWon {
		t.Fatalf("Status = %s, expected won\n%s", s.Status, Dump(s))
	}
	want := []EventKind{EventStarted, EventAte, EventWon}
	if len(got) != len(want) {
		t.Fatalf("events = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %s, expected %s", i, got[i], want[i])
		}
	}
}

func TestEngineHandlerMayReenter(t *testing.T) {
	var e *Engine
	var status Status
	handler := func(ev Event) {
		status = e.Status()
	}
	e = newTestEngine(t, DefaultRules(), seeded(1), WithEventHandler(handler))

	e.Start()
	if status != StatusPlaying {
		t.Errorf("handler saw %s, expected playing", status)
	}
}

func TestEngineDeterministic(t *testing.T) {
	moves := []Direction{DirUp, DirUp, DirLeft, DirLeft, DirDown, DirDown, DirDown, DirRight}

	run := func() []Snapshot {
		e := newTestEngine(t, DefaultRules(), seeded(1234))
		e.Start()
		var snaps []Snapshot
		for i := 0; i < 60; i++ {
			e.RequestDirection(moves[i%len(moves)])
			e.Tick()
			snaps = append(snaps, e.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at step %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestEngineStateIsACopy(t *testing.T) {
	e := newTestEngine(t, DefaultRules(), seeded(1))
	e.Start()

	s := e.State()
	s.Snake[0] = Position{X: -5, Y: -5}
	s.Score = 999

	again := e.State()
	if again.Head() == (Position{X: -5, Y: -5}) || again.Score == 999 {
		t.Error("modifying a returned state changed the engine")
	}
}

func TestEngineConcurrentAccess(t *testing.T) {
	rules := DefaultRules()
	rules.WinningScore = 1 << 20
	e := newTestEngine(t, rules, seeded(9))
	e.Start()

	var wg sync.WaitGroup
	dirs := []Direction{DirUp, DirLeft, DirDown, DirRight}
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				e.RequestDirection(dirs[(g+i)%len(dirs)])
				_ = e.State()
			}
		}(g)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			e.Tick()
		}
	}()
	wg.Wait()

	s := e.State()
	if s.Status == StatusPlaying {
		assertValid(t, s)
	}
}

func TestEngineLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	e := newTestEngine(t, testRules(10), fixedSource(0), WithLogger(logger))
	e.Start()
	e.RequestDirection(DirLeft) // reversal
	e.RequestDirection(DirDown)
	for e.Status() == StatusPlaying {
		e.Tick()
	}

	out := buf.String()
	for _, want := range []string{"game started", "direction rejected", "direction queued", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
