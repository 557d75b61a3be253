package snake

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Engine owns the single GameState of a session and serializes every
// mutation behind a mutex, so ticks from a timer and direction requests from
// an input goroutine never observe each other half-applied.
type Engine struct {
	mu      sync.Mutex
	rules   Rules
	rng     Source
	state   GameState
	ticks   uint64
	logger  *log.Logger
	onEvent func(Event)
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for lifecycle and input events.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithEventHandler registers fn to receive events. fn runs on the calling
// goroutine after the engine lock is released, so it may call back into the
// engine.
func WithEventHandler(fn func(Event)) EngineOption {
	return func(e *Engine) {
		e.onEvent = fn
	}
}

// NewEngine validates rules and creates an engine holding a not-yet-started game.
// rng is only used while the engine lock is held, so it need not be safe for
// concurrent use.
func NewEngine(rules Rules, rng Source, opts ...EngineOption) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("snake: random source is required")
	}

	e := &Engine{
		rules:  rules,
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.state = rules.NewGame(rng)
	return e, nil
}

// Rules returns the engine's fixed rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Start discards the current game and begins a new one, whatever the
// previous status was.
func (e *Engine) Start() GameState {
	e.mu.Lock()
	e.state = e.rules.Start(e.rng)
	e.ticks = 0
	state := e.state.Clone()
	e.mu.Unlock()

	e.logger.Info("game started",
		"board", e.rules.BoardSize,
		"length", state.Len(),
		"food", state.Food,
	)
	e.emit(Event{Kind: EventStarted, State: state})
	return state
}

// Tick applies one simulation step.
func (e *Engine) Tick() GameState {
	e.mu.Lock()
	before := e.state
	e.state = e.rules.Tick(before, e.rng)
	if before.Status == StatusPlaying {
		e.ticks++
	}
	state := e.state.Clone()
	ticks := e.ticks
	e.mu.Unlock()

	kinds := tickEvents(before, state)
	for _, kind := range kinds {
		switch kind {
		case EventAte:
			e.logger.Debug("food eaten", "score", state.Score, "length", state.Len(), "food", state.Food)
		case EventCrashed:
			e.logger.Info("game over", "score", state.Score, "length", state.Len(), "ticks", ticks)
		case EventWon:
			e.logger.Info("game won", "score", state.Score, "length", state.Len(), "ticks", ticks)
		}
		e.emit(Event{Kind: kind, State: state, Ticks: ticks})
	}
	return state
}

// RequestDirection queues a direction change for the next tick.
func (e *Engine) RequestDirection(dir Direction) GameState {
	e.mu.Lock()
	before := e.state
	e.state = RequestDirection(before, dir)
	state := e.state.Clone()
	e.mu.Unlock()

	if before.Status == StatusPlaying {
		if next, ok := state.Pending(); ok && next == dir {
			e.logger.Debug("direction queued", "dir", dir)
		} else {
			e.logger.Debug("direction rejected", "dir", dir, "current", before.Direction)
		}
	}
	return state
}

// State returns a copy of the current state.
func (e *Engine) State() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Status returns the current status.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Status
}

// Ticks returns the number of ticks applied since the last start.
func (e *Engine) Ticks() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ticks
}

func (e *Engine) emit(ev Event) {
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}
