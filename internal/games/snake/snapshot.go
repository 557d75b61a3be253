package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures a flat summary of the game for determinism tests and logs.
type Snapshot struct {
	Ticks    uint64
	Status   Status
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
}

// TakeSnapshot summarizes s.
func TakeSnapshot(s GameState, ticks uint64) Snapshot {
	head := s.Head()
	return Snapshot{
		Ticks:    ticks,
		Status:   s.Status,
		Score:    s.Score,
		SnakeLen: s.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      s.Direction,
		FoodX:    s.Food.X,
		FoodY:    s.Food.Y,
	}
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return TakeSnapshot(e.state, e.ticks)
}

// DebugState returns a short multi-line description of s.
func DebugState(s GameState, ticks uint64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", ticks, s.Score, s.Status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s", s.Len(), s.Direction)
	if next, ok := s.Pending(); ok {
		fmt.Fprintf(&b, ", Queued: %s", next)
	}
	b.WriteString("\n")
	if s.Len() > 0 {
		fmt.Fprintf(&b, "Head: %s, Food: %s\n", s.Head(), s.Food)
	}
	return b.String()
}

// Dump draws the board as text: 'H' head, 'o' body, '*' food, '.' empty.
// Rows run top to bottom, matching screen coordinates.
func Dump(s GameState) string {
	grid := make([][]byte, s.BoardSize)
	for y := range grid {
		grid[y] = make([]byte, s.BoardSize)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}

	put := func(p Position, c byte) {
		if InBounds(p, s.BoardSize) {
			grid[p.Y][p.X] = c
		}
	}
	if !s.Occupies(s.Food) {
		put(s.Food, '*')
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Snake[i], 'H')
		} else {
			put(s.Snake[i], 'o')
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
