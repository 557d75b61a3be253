package snake

import "errors"

// RequestDirection queues dir for the next tick.
//
// The request is ignored unless the game is playing, and when dir reverses
// the queued direction (or the active one if nothing is queued). Checking
// against the queued intent stops two quick presses, e.g. Up then Left while
// moving right, from turning the snake back onto itself within one tick.
// A later accepted request replaces the queued one.
func RequestDirection(s GameState, dir Direction) GameState {
	if s.Status != StatusPlaying {
		return s
	}

	reference := s.Direction
	if s.HasNext {
		reference = s.NextDirection
	}
	if IsOpposite(reference, dir) {
		return s
	}

	s.NextDirection = dir
	s.HasNext = true
	return s
}

// Tick advances a playing game by one cell and returns the resulting state.
// States that are not playing are returned unchanged.
//
// Order matters: the wall check comes first, then the food check, because
// whether the tail cell is free depends on whether the snake grows this tick.
// Board-full after eating is a win, not an error.
func (r Rules) Tick(s GameState, rng Source) GameState {
	if s.Status != StatusPlaying || len(s.Snake) == 0 {
		return s
	}

	dir := s.Direction
	if s.HasNext {
		dir = s.NextDirection
	}

	next := s
	next.Direction = dir
	next.NextDirection = 0
	next.HasNext = false

	newHead := NextPosition(s.Head(), dir)
	if !InBounds(newHead, s.BoardSize) {
		next.Status = StatusGameOver
		return next
	}

	ateFood := newHead == s.Food

	// The tail moves out of the way unless the snake grows.
	body := s.Snake
	if !ateFood {
		body = body[:len(body)-1]
	}
	if contains(body, newHead) {
		next.Status = StatusGameOver
		return next
	}

	moved := make([]Position, 0, len(body)+1)
	moved = append(moved, newHead)
	moved = append(moved, body...)
	next.Snake = moved

	if !ateFood {
		return next
	}

	next.Score = s.Score + r.PointsPerFood
	if next.Score >= r.WinningScore {
		next.Status = StatusWon
		return next
	}

	food, err := PickEmptyCell(s.BoardSize, occupancy(moved), rng)
	if errors.Is(err, ErrBoardFull) {
		next.Status = StatusWon
		return next
	}
	next.Food = food
	return next
}
