// Package tcellui is an alternate terminal frontend drawn directly with tcell.
// The snake.Driver ticks on its own goroutine; key events go straight to the
// engine.
package tcellui

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures the tcell frontend.
type Options struct {
	Engine *snake.Engine
	Preset registry.Preset
	Store  *storage.Store // Optional session history
	Logger *log.Logger
}

var palette = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:         tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorMagenta:      tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightRed:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorBrightGreen:  tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// KeyName converts a tcell key event to the key names used by
// core.ActionForKey.
func KeyName(ev *tcell.EventKey) string {
	return keyName(ev.Key(), ev.Rune())
}

func keyName(k tcell.Key, r rune) string {
	switch k {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(r)
	}
	return ""
}

// Draw copies a core.Screen into a tcell screen.
func Draw(dst tcell.Screen, src *core.Screen) {
	dst.Clear()
	for y := range src.Height() {
		for x := range src.Width() {
			cell := src.GetCell(x, y)
			style, ok := palette[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			dst.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	dst.Show()
}

// Run opens the terminal and plays until the player quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	return RunScreen(ctx, screen, opts)
}

// RunScreen plays on an initialized screen and finalizes it on return.
func RunScreen(ctx context.Context, screen tcell.Screen, opts Options) error {
	if opts.Engine == nil {
		screen.Fini()
		return errors.New("tcellui: engine is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ui := &session{
		engine: opts.Engine,
		preset: opts.Preset,
		store:  opts.Store,
		logger: logger,
		screen: screen,
		redraw: make(chan struct{}, 1),
		events: make(chan tcell.Event, 16),
	}

	driver, err := snake.NewDriver(opts.Engine, opts.Engine.Rules().TickInterval, ui.published)
	if err != nil {
		screen.Fini()
		return err
	}
	ui.driver = driver

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return driver.Run(gctx)
	})
	g.Go(func() error {
		ui.poll(gctx)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return ui.loop(gctx)
	})

	// PollEvent only returns after Fini.
	<-gctx.Done()
	ui.fini()
	return g.Wait()
}

type session struct {
	engine *snake.Engine
	driver *snake.Driver
	preset registry.Preset
	store  *storage.Store
	logger *log.Logger
	screen tcell.Screen
	redraw chan struct{}
	events chan tcell.Event

	finiOnce  sync.Once
	startedAt time.Time
	recorded  bool
	best      int
}

func (s *session) fini() {
	s.finiOnce.Do(s.screen.Fini)
}

// published runs on the driver goroutine after every tick.
func (s *session) published(snake.GameState) {
	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

// poll forwards terminal events until the screen is finalized.
func (s *session) poll(ctx context.Context) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// loop owns drawing and input handling.
func (s *session) loop(ctx context.Context) error {
	if s.store != nil {
		if best, err := s.store.BestScore(s.preset.ID); err == nil {
			s.best = best
		}
	}
	s.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-s.redraw:
			state := s.engine.State()
			if state.Status.IsTerminal() {
				s.record(state)
			}
			s.draw()

		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(KeyName(ev)) {
					return nil
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
			s.draw()
		}
	}
}

// handleKey applies a key press by name. It returns false when the player
// quits.
func (s *session) handleKey(name string) bool {
	action := core.ActionForKey(name)

	switch action {
	case core.ActionQuit:
		return false
	case core.ActionStart:
		s.engine.Start()
		s.driver.Resume()
		s.startedAt = time.Now()
		s.recorded = false
	case core.ActionPause:
		if s.engine.Status() == snake.StatusPlaying {
			s.driver.TogglePause()
		}
	default:
		if dir, ok := snake.DirectionForAction(action); ok && !s.driver.Paused() {
			s.engine.RequestDirection(dir)
		}
	}
	return true
}

func (s *session) record(state snake.GameState) {
	if s.recorded || s.store == nil {
		return
	}
	s.recorded = true

	_, err := s.store.SaveRun(storage.Run{
		Preset:    s.preset.ID,
		Score:     state.Score,
		Length:    state.Len(),
		Status:    state.Status.String(),
		Ticks:     s.engine.Ticks(),
		StartedAt: s.startedAt,
		EndedAt:   time.Now(),
	})
	if err != nil {
		s.logger.Warn("could not record run", "error", err)
		return
	}
	s.best = max(s.best, state.Score)
}

func (s *session) draw() {
	w, h := s.screen.Size()
	buf := core.NewScreen(w, h)
	snake.Render(s.engine.State(), snake.View{
		Title:        s.preset.Title,
		WinningScore: s.engine.Rules().WinningScore,
		Best:         s.best,
		Paused:       s.driver.Paused(),
	}, buf)
	Draw(s.screen, buf)
}
