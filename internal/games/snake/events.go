package snake

// EventKind identifies something noteworthy that happened during a transition.
type EventKind int

const (
	EventStarted EventKind = iota
	EventAte
	EventCrashed
	EventWon
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventAte:
		return "ate"
	case EventCrashed:
		return "crashed"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event is delivered to the Engine's event handler after a transition.
type Event struct {
	Kind  EventKind
	State GameState // State after the transition
	Ticks uint64    // Ticks applied since the last start
}

// tickEvents derives events from a tick's before and after states.
// A tick that eats the winning food yields both EventAte and EventWon.
func tickEvents(before, after GameState) []EventKind {
	if before.Status != StatusPlaying {
		return nil
	}

	var kinds []EventKind
	if after.Score > before.Score {
		kinds = append(kinds, EventAte)
	}
	switch after.Status {
	case StatusGameOver:
		kinds = append(kinds, EventCrashed)
	case StatusWon:
		kinds = append(kinds, EventWon)
	}
	return kinds
}
