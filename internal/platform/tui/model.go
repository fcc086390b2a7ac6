package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-crab/internal/core"
	"github.com/vovakirdan/flappy-crab/internal/games/crab"
)

// EventHandler consumes the events of each tick, usually to play sounds.
type EventHandler interface {
	Handle(events []core.Event)
}

type nopHandler struct{}

func (nopHandler) Handle([]core.Event) {}

// Options configures the frame driver.
type Options struct {
	Runtime core.RuntimeConfig
	Events  EventHandler
	Logger  *log.Logger
}

// Model is the Bubble Tea model driving one game.
//
// Terminals report key presses but not releases, so a pressed action is held
// for exactly one tick. The next tick sees it released, which re-arms the
// crab's jump.
type Model struct {
	game      *crab.Game
	events    EventHandler
	logger    *log.Logger
	screen    *core.Screen
	raster    Rasterizer
	keys      KeyMap
	help      help.Model
	config    core.RuntimeConfig
	timeScale float32

	inputFrame core.InputFrame
	gameState  core.GameState
	start      time.Time
	last       time.Time
	quitting   bool
}

// NewModel creates a model for game.
func NewModel(game *crab.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Events == nil {
		opts.Events = nopHandler{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	gc := game.Config()
	return Model{
		game:       game,
		events:     opts.Events,
		logger:     opts.Logger,
		screen:     core.NewScreen(cfg.ScreenW, footerless(cfg.ScreenH)),
		raster:     Rasterizer{WorldW: gc.World.Width, WorldH: gc.World.Height},
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		timeScale:  gc.Physics.TimeScale,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// footerless returns the rows left for the playfield after the help footer.
func footerless(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(a)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, footerless(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick converts wall time into a frame and steps the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = now.Add(-m.interval())
		m.last = m.start
	}

	frame := crab.Frame{
		Delta: float32(now.Sub(m.last).Seconds()) * m.timeScale,
		Now:   now.Sub(m.start),
		Input: m.inputFrame,
	}
	m.last = now

	result := m.game.Step(frame)
	m.gameState = result.State
	if len(result.Events) > 0 {
		m.logger.Debug("events", "events", result.Events, "score", result.State.Score)
		m.events.Handle(result.Events)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) interval() time.Duration {
	return time.Second / time.Duration(m.config.TickRate)
}

// State returns the state reported by the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.raster.Draw(m.screen, m.game.Draw())
	DrawHUD(m.screen, m.gameState)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *crab.Game, opts Options) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
