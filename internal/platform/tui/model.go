package tui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures the Bubble Tea frontend.
type Options struct {
	Engine *snake.Engine
	Preset registry.Preset
	Store  *storage.Store // Optional session history
	Logger *log.Logger
	Width  int
	Height int
}

// Model is the Bubble Tea model for a Snake session.
type Model struct {
	engine  *snake.Engine
	driver  *snake.Driver
	preset  registry.Preset
	store   *storage.Store
	logger  *log.Logger
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	history history

	state       snake.GameState
	startedAt   time.Time
	recorded    bool // Current run already saved
	best        int
	showHistory bool
	autoPaused  bool // Paused by opening the history, not by the player
	showHelp    bool
	width       int
	height      int
	quitting    bool
}

// NewModel creates a new Bubble Tea model around an engine.
func NewModel(opts Options) (Model, error) {
	if opts.Engine == nil {
		return Model{}, errors.New("tui: engine is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// The driver is stepped from tea.Tick; Run is never called here.
	driver, err := snake.NewDriver(opts.Engine, opts.Engine.Rules().TickInterval, nil)
	if err != nil {
		return Model{}, err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		cfg := core.DefaultConfig()
		width, height = cfg.ScreenW, cfg.ScreenH
	}

	m := Model{
		engine:  opts.Engine,
		driver:  driver,
		preset:  opts.Preset,
		store:   opts.Store,
		logger:  logger,
		screen:  core.NewScreen(width, height),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		history: newHistory(opts.Store, opts.Preset.ID, width, height),
		state:   opts.Engine.State(),
		width:   width,
		height:  height,
	}
	m.layout()
	m.loadBest()
	return m, nil
}

// layout sizes the board screen. The help bar gets the last row only when the
// board still fits above it.
func (m *Model) layout() {
	_, reqH := snake.RequiredSize(m.engine.Rules().BoardSize)
	m.showHelp = m.height > reqH
	h := m.height
	if m.showHelp {
		h--
	}
	m.screen.Resize(m.width, h)
	m.help.Width = m.width
}

// Init starts the tick loop. The game waits for the start key.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.engine.Rules().TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHistory {
			return m.handleHistoryKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		m.startGame()

	case core.ActionPause:
		if m.state.Status == snake.StatusPlaying {
			m.driver.TogglePause()
		}

	case core.ActionHistory:
		m.openHistory()

	default:
		if dir, ok := snake.DirectionForAction(action); ok && !m.driver.Paused() {
			m.state = m.engine.RequestDirection(dir)
		}
	}

	return m, nil
}

// handleHistoryKey processes keys while the history table is shown.
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, "ctrl+c", "q"):
		m.quitting = true
		return m, tea.Quit
	case isKey(msg, "tab", "esc"):
		m.closeHistory()
		return m, nil
	}

	var cmd tea.Cmd
	m.history.table, cmd = m.history.table.Update(msg)
	return m, cmd
}

func isKey(msg tea.KeyMsg, names ...string) bool {
	s := msg.String()
	for _, n := range names {
		if s == n {
			return true
		}
	}
	return false
}

func (m *Model) startGame() {
	m.state = m.engine.Start()
	m.driver.Resume()
	m.startedAt = time.Now()
	m.recorded = false
}

func (m *Model) openHistory() {
	m.history.reload()
	m.showHistory = true
	if m.state.Status == snake.StatusPlaying && !m.driver.Paused() {
		m.driver.Pause()
		m.autoPaused = true
	}
}

func (m *Model) closeHistory() {
	m.showHistory = false
	if m.autoPaused {
		m.driver.Resume()
		m.autoPaused = false
	}
}

// handleResize processes window resize events. The game keeps running; the
// renderer shows a notice while the board does not fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	m.history.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.driver.Step() {
		m.state = m.engine.State()
		if m.state.Status.IsTerminal() {
			m.recordRun()
		}
	}
	return m, tickCmd(m.engine.Rules().TickInterval)
}

// recordRun saves the finished run once. Storage is best-effort.
func (m *Model) recordRun() {
	if m.recorded || m.store == nil {
		return
	}
	m.recorded = true

	id, err := m.store.SaveRun(storage.Run{
		Preset:    m.preset.ID,
		Score:     m.state.Score,
		Length:    m.state.Len(),
		Status:    m.state.Status.String(),
		Ticks:     m.engine.Ticks(),
		StartedAt: m.startedAt,
		EndedAt:   time.Now(),
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", id, "score", m.state.Score)
	m.best = max(m.best, m.state.Score)
}

func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.BestScore(m.preset.ID)
	if err != nil {
		m.logger.Warn("could not load best score", "error", err)
		return
	}
	m.best = best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHistory {
		return m.history.view(m.width) + "\n" + m.helpView()
	}

	snake.Render(m.state, snake.View{
		Title:        m.preset.Title,
		WinningScore: m.engine.Rules().WinningScore,
		Best:         m.best,
		Paused:       m.driver.Paused(),
	}, m.screen)

	if !m.showHelp {
		return RenderScreen(m.screen)
	}
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

func (m Model) helpView() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.showHistory {
		return helpStyle.Render(" ↑/↓ scroll • tab/esc back • q quit")
	}
	return helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state the model has seen.
func (m Model) State() snake.GameState {
	return m.state
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
