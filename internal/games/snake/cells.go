package snake

import "errors"

// ErrBoardFull is returned by PickEmptyCell when no cell is free.
var ErrBoardFull = errors.New("snake: board is full")

// Source is the random provider used for food placement.
// *math/rand.Rand satisfies it; tests substitute a fixed source.
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// PickEmptyCell chooses a uniformly random cell of the boardSize×boardSize
// grid that is not in occupied.
//
// All free cells are enumerated first and one index is drawn, so the call
// terminates in O(boardSize²) however crowded the board is. Cells are
// enumerated row by row, which makes a given Intn result map to a predictable
// cell.
func PickEmptyCell(boardSize int, occupied map[Position]bool, rng Source) (Position, error) {
	free := make([]Position, 0, max(boardSize*boardSize-len(occupied), 0))
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			p := Position{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Position{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}

// occupancy returns the set of cells covered by segments.
func occupancy(segments []Position) map[Position]bool {
	set := make(map[Position]bool, len(segments))
	for _, p := range segments {
		set[p] = true
	}
	return set
}
