package snake

import (
	"errors"
	"testing"
)

func TestPickEmptyCellForcedIndex(t *testing.T) {
	occupied := map[Position]bool{
		{X: 0, Y: 0}: true,
		{X: 1, Y: 0}: true,
	}

	// Free cells in row-major order on a 3x3 board: (2,0), (0,1), (1,1), ...
	tests := []struct {
		index int
		want  Position
	}{
		{0, Position{X: 2, Y: 0}},
		{1, Position{X: 0, Y: 1}},
		{6, Position{X: 2, Y: 2}},
	}

	for _, tc := range tests {
		got, err := PickEmptyCell(3, occupied, fixedSource(tc.index))
		if err != nil {
			t.Fatalf("PickEmptyCell() failed: %v", err)
		}
		if got != tc.want {
			t.Errorf("index %d picked %s, expected %s", tc.index, got, tc.want)
		}
	}
}

func TestPickEmptyCellNeverOccupied(t *testing.T) {
	rng := seeded(7)
	occupied := map[Position]bool{}
	for x := 0; x < 10; x++ {
		occupied[Position{X: x, Y: 3}] = true
	}

	for i := 0; i < 500; i++ {
		p, err := PickEmptyCell(10, occupied, rng)
		if err != nil {
			t.Fatalf("PickEmptyCell() failed: %v", err)
		}
		if occupied[p] {
			t.Fatalf("picked occupied cell %s", p)
		}
		if !InBounds(p, 10) {
			t.Fatalf("picked out-of-bounds cell %s", p)
		}
	}
}

func TestPickEmptyCellLastFreeCell(t *testing.T) {
	occupied := map[Position]bool{}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			occupied[Position{X: x, Y: y}] = true
		}
	}
	delete(occupied, Position{X: 3, Y: 1})

	got, err := PickEmptyCell(4, occupied, seeded(1))
	if err != nil {
		t.Fatalf("PickEmptyCell() failed: %v", err)
	}
	if got != (Position{X: 3, Y: 1}) {
		t.Errorf("expected the only free cell (3,1), got %s", got)
	}
}

func TestPickEmptyCellBoardFull(t *testing.T) {
	occupied := map[Position]bool{
		{X: 0, Y: 0}: true,
		{X: 1, Y: 0}: true,
		{X: 0, Y: 1}: true,
		{X: 1, Y: 1}: true,
	}

	_, err := PickEmptyCell(2, occupied, fixedSource(0))
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("expected ErrBoardFull, got %v", err)
	}
}

func TestPickEmptyCellUniform(t *testing.T) {
	const (
		size  = 3
		draws = 9000
	)
	rng := seeded(42)
	counts := map[Position]int{}

	for i := 0; i < draws; i++ {
		p, err := PickEmptyCell(size, nil, rng)
		if err != nil {
			t.Fatalf("PickEmptyCell() failed: %v", err)
		}
		counts[p]++
	}

	if len(counts) != size*size {
		t.Fatalf("expected all %d cells to be picked, got %d", size*size, len(counts))
	}
	expected := draws / (size * size)
	for p, n := range counts {
		// Loose bound; a biased selector would be far outside it.
		if n < expected*7/10 || n > expected*13/10 {
			t.Errorf("cell %s picked %d times, expected about %d", p, n, expected)
		}
	}
}
