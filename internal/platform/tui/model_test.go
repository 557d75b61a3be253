package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	rules := snake.DefaultRules()
	rules.BoardSize = 10

	engine, err := snake.NewEngine(rules, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	m, err := NewModel(Options{
		Engine: engine,
		Preset: registry.Preset{ID: "test", Title: "Test"},
		Store:  store,
		Width:  80,
		Height: 24,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestNewModelRequiresEngine(t *testing.T) {
	if _, err := NewModel(Options{}); err == nil {
		t.Error("expected error without an engine")
	}
}

func TestModelWaitsForStart(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, TickMsg{})
	if m.State().Status != snake.StatusNotStarted {
		t.Fatalf("Status = %s, expected not_started", m.State().Status)
	}
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("start screen should prompt for Enter")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().Status != snake.StatusPlaying {
		t.Fatalf("Status = %s after Enter, expected playing", m.State().Status)
	}
}

func TestModelDirectionAndTick(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	head := m.State().Head()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if next, ok := m.State().Pending(); !ok || next != snake.DirDown {
		t.Fatalf("down should be queued, got (%s, %v)", next, ok)
	}

	m = update(t, m, TickMsg{})
	if got := m.State().Head(); got.X != head.X || got.Y != head.Y+1 {
		t.Errorf("head = %s after tick, expected one cell below %s", got, head)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	head := m.State().Head()
	m = update(t, m, TickMsg{})
	if m.State().Head() != head {
		t.Error("snake moved while paused")
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("paused overlay missing")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg{})
	if m.State().Head() == head {
		t.Error("snake should move after unpausing")
	}
}

func TestModelRecordsFinishedRunOnce(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Heading right from the center of a 10 board hits the wall on tick 5.
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.State().Status != snake.StatusGameOver {
		t.Fatalf("Status = %s, expected game_over", m.State().Status)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Preset != "test" || runs[0].Status != "game_over" || runs[0].Ticks != 5 {
		t.Errorf("unexpected run: %+v", runs[0])
	}
}

func TestModelHistoryToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "SESSION HISTORY") {
		t.Fatal("tab should open the history")
	}
	head := m.State().Head()
	m = update(t, m, TickMsg{})
	if m.State().Head() != head {
		t.Error("game should pause while the history is open")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "SESSION HISTORY") {
		t.Fatal("esc should close the history")
	}
	m = update(t, m, TickMsg{})
	if m.State().Head() == head {
		t.Error("game should resume after closing the history")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
