package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestParseMoves(t *testing.T) {
	moves, err := parseMoves("RD. l u")
	if err != nil {
		t.Fatalf("parseMoves() failed: %v", err)
	}

	want := []move{
		{snake.DirRight, true},
		{snake.DirDown, true},
		{0, false},
		{snake.DirLeft, true},
		{snake.DirUp, true},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, expected %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %+v, expected %+v", i, moves[i], want[i])
		}
	}

	if _, err := parseMoves("RRX"); err == nil {
		t.Error("expected error for unknown move letter")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	moves, err := parseMoves("UUULLLDDDDRRRRR")
	if err != nil {
		t.Fatalf("parseMoves() failed: %v", err)
	}

	run := func() string {
		engine, err := snake.NewEngine(snake.DefaultRules(), rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("NewEngine() failed: %v", err)
		}
		var buf bytes.Buffer
		simulate(&buf, engine, moves, true)
		return buf.String()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed produced different output:\n%s\n---\n%s", a, b)
	}
}

func TestSimulateStopsAtWall(t *testing.T) {
	rules := snake.DefaultRules()
	rules.BoardSize = 10

	engine, err := snake.NewEngine(rules, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	var buf bytes.Buffer
	state := simulate(&buf, engine, make([]move, 20), false)

	if state.Status != snake.StatusGameOver {
		t.Fatalf("Status = %s, expected game_over", state.Status)
	}
	if engine.Ticks() != 5 {
		t.Errorf("Ticks = %d, expected the run to stop after the crash on tick 5", engine.Ticks())
	}
	if !strings.Contains(buf.String(), "Status: game_over") {
		t.Errorf("output missing final status:\n%s", buf.String())
	}
}

func TestResolveConfig(t *testing.T) {
	cfg, preset, err := resolveConfig("", "small", config.Overrides{TickIntervalMs: 90})
	if err != nil {
		t.Fatalf("resolveConfig() failed: %v", err)
	}
	if preset.ID != "small" || cfg.Board.Size != 10 || cfg.Timing.TickIntervalMs != 90 {
		t.Errorf("unexpected config %+v for preset %q", cfg, preset.ID)
	}
	if preset.Config != cfg {
		t.Error("preset should carry the effective config")
	}

	if _, _, err := resolveConfig("", "nope", config.Overrides{}); err == nil {
		t.Error("expected error for unknown preset")
	}
}
