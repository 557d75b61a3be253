// Package snake implements the Snake simulation: board geometry, food
// placement, the direction-intent queue and the per-tick transition function,
// plus the mutex-guarded Engine and fixed-interval Driver that frontends use.
//
// The transition functions are pure: they take a GameState by value and
// return a new one without touching the input.
package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Position is a cell on the board. (0, 0) is the top-left corner.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names ("up") or single letters ("U"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("snake: unknown direction %q", s)
}

// DirectionForAction converts a directional input action.
// Non-directional actions report false and are ignored by callers.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// NextPosition returns pos shifted one cell in dir. It never wraps; callers
// detect leaving the board with InBounds.
func NextPosition(pos Position, dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: pos.X + dx, Y: pos.Y + dy}
}

// InBounds reports whether pos lies on a boardSize×boardSize grid.
func InBounds(pos Position, boardSize int) bool {
	return pos.X >= 0 && pos.X < boardSize && pos.Y >= 0 && pos.Y < boardSize
}

// IsOpposite checks if two directions are opposite. A direction is not
// opposite to itself.
func IsOpposite(a, b Direction) bool {
	return (a == DirUp && b == DirDown) ||
		(a == DirDown && b == DirUp) ||
		(a == DirLeft && b == DirRight) ||
		(a == DirRight && b == DirLeft)
}
