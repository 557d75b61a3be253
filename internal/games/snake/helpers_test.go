package snake

import (
	"math/rand"
	"testing"
)

// fixedSource always returns the same index, clamped to the valid range.
type fixedSource int

func (f fixedSource) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// playing builds a PLAYING state from explicit parts.
func playing(size int, dir Direction, food Position, segments ...Position) GameState {
	return GameState{
		Snake:     segments,
		Direction: dir,
		Food:      food,
		Status:    StatusPlaying,
		BoardSize: size,
	}
}

func testRules(size int) Rules {
	r := DefaultRules()
	r.BoardSize = size
	return r
}

// assertValid checks the invariants every PLAYING state must hold.
func assertValid(t *testing.T, s GameState) {
	t.Helper()
	if s.Len() < 1 {
		t.Fatalf("snake must have at least one segment\n%s", Dump(s))
	}
	seen := make(map[Position]bool, s.Len())
	for i, p := range s.Snake {
		if !InBounds(p, s.BoardSize) {
			t.Fatalf("segment %d %s out of bounds\n%s", i, p, Dump(s))
		}
		if seen[p] {
			t.Fatalf("segment %d %s overlaps another\n%s", i, p, Dump(s))
		}
		seen[p] = true
		if i > 0 {
			prev := s.Snake[i-1]
			if abs(prev.X-p.X)+abs(prev.Y-p.Y) != 1 {
				t.Fatalf("segments %d and %d are not adjacent\n%s", i-1, i, Dump(s))
			}
		}
	}
	if s.Status == StatusPlaying && seen[s.Food] {
		t.Fatalf("food %s lies on the snake\n%s", s.Food, Dump(s))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sameSnake(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
