package snake

// Status is the lifecycle stage of a game.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusGameOver
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the game has ended. Only a new start leaves a
// terminal status.
func (s Status) IsTerminal() bool {
	return s == StatusGameOver || s == StatusWon
}

// GameState is the complete simulation state.
//
// Snake segments are ordered head first. While Status is StatusPlaying the
// segments are distinct and Food is not on any of them. The slice is never
// modified in place, so copies of a GameState may share it.
type GameState struct {
	Snake         []Position
	Direction     Direction // Direction applied on the last tick
	NextDirection Direction // Queued direction, valid only when HasNext
	HasNext       bool
	Food          Position
	Score         int
	Status        Status
	BoardSize     int
}

// Head returns the first segment.
func (s GameState) Head() Position {
	if len(s.Snake) == 0 {
		return Position{}
	}
	return s.Snake[0]
}

// Tail returns the last segment.
func (s GameState) Tail() Position {
	if len(s.Snake) == 0 {
		return Position{}
	}
	return s.Snake[len(s.Snake)-1]
}

// Len returns the number of segments.
func (s GameState) Len() int {
	return len(s.Snake)
}

// Pending returns the queued direction, if any.
func (s GameState) Pending() (Direction, bool) {
	return s.NextDirection, s.HasNext
}

// Occupies reports whether any segment covers p.
func (s GameState) Occupies(p Position) bool {
	return contains(s.Snake, p)
}

// Clone returns a copy that shares no memory with s.
func (s GameState) Clone() GameState {
	c := s
	c.Snake = append([]Position(nil), s.Snake...)
	return c
}

// NewGame returns a fresh game waiting for its first start: a centered snake
// heading right and food on a random free cell.
func (r Rules) NewGame(rng Source) GameState {
	return r.initialState(rng, StatusNotStarted)
}

// Start returns a freshly initialized game in StatusPlaying. Nothing from a
// previous game is carried over.
func (r Rules) Start(rng Source) GameState {
	return r.initialState(rng, StatusPlaying)
}

func (r Rules) initialState(rng Source, status Status) GameState {
	s := GameState{
		Snake:     r.initialSnake(),
		Direction: DirRight,
		Status:    status,
		BoardSize: r.BoardSize,
	}

	food, err := PickEmptyCell(r.BoardSize, occupancy(s.Snake), rng)
	if err != nil {
		// Validated rules always leave a free cell; a full board is a win
		// everywhere else, so treat it the same here.
		s.Status = StatusWon
		return s
	}
	s.Food = food
	return s
}

// initialSnake lays the snake out horizontally, head on the right, with the
// whole body centered on the board. A 3-segment snake on a 20 board has its
// head at (10,10).
func (r Rules) initialSnake() []Position {
	length := max(r.InitialLength, 1)
	y := r.BoardSize / 2
	tailX := (r.BoardSize - length) / 2
	headX := tailX + length - 1

	segments := make([]Position, length)
	for i := range segments {
		segments[i] = Position{X: headX - i, Y: y}
	}
	return segments
}

func contains(segments []Position, p Position) bool {
	for _, seg := range segments {
		if seg == p {
			return true
		}
	}
	return false
}
