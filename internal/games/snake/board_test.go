package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNextPosition(t *testing.T) {
	origin := Position{X: 5, Y: 5}

	tests := []struct {
		dir  Direction
		want Position
	}{
		{DirUp, Position{X: 5, Y: 4}},
		{DirDown, Position{X: 5, Y: 6}},
		{DirLeft, Position{X: 4, Y: 5}},
		{DirRight, Position{X: 6, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := NextPosition(origin, tc.dir); got != tc.want {
				t.Errorf("NextPosition(%s, %s) = %s, expected %s", origin, tc.dir, got, tc.want)
			}
		})
	}
}

func TestNextPositionDoesNotWrap(t *testing.T) {
	if got := NextPosition(Position{X: 0, Y: 0}, DirLeft); got != (Position{X: -1, Y: 0}) {
		t.Errorf("moving left from x=0 should give x=-1, got %s", got)
	}
	if got := NextPosition(Position{X: 0, Y: 0}, DirUp); got != (Position{X: 0, Y: -1}) {
		t.Errorf("moving up from y=0 should give y=-1, got %s", got)
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"origin", Position{0, 0}, true},
		{"far corner", Position{4, 4}, true},
		{"x too large", Position{5, 2}, false},
		{"y too large", Position{2, 5}, false},
		{"x negative", Position{-1, 2}, false},
		{"y negative", Position{2, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InBounds(tc.pos, 5); got != tc.want {
				t.Errorf("InBounds(%s, 5) = %v, expected %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestIsOpposite(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	opposite := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	for _, a := range dirs {
		for _, b := range dirs {
			want := opposite[a] == b
			if got := IsOpposite(a, b); got != want {
				t.Errorf("IsOpposite(%s, %s) = %v, expected %v", a, b, got, want)
			}
			if IsOpposite(a, b) != IsOpposite(b, a) {
				t.Errorf("IsOpposite should be symmetric for %s/%s", a, b)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", DirUp},
		{"U", DirUp},
		{"Down", DirDown},
		{"l", DirLeft},
		{"RIGHT", DirRight},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDirection(%q) = %s, expected %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestDirectionForAction(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionStart, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tc := range tests {
		got, ok := DirectionForAction(tc.action)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("DirectionForAction(%v) = (%s, %v), expected (%s, %v)", tc.action, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDirectionForKeyName(t *testing.T) {
	// Key names from the frontends flow through core.ActionForKey.
	dir, ok := DirectionForAction(core.ActionForKey("h"))
	if !ok || dir != DirLeft {
		t.Errorf("key h should map to left, got (%s, %v)", dir, ok)
	}
	if _, ok := DirectionForAction(core.ActionForKey("x")); ok {
		t.Error("non-directional keys should be ignored")
	}
}
