package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-shark/internal/core"
	"github.com/vovakirdan/flappy-shark/internal/platform"
	"github.com/vovakirdan/flappy-shark/internal/registry"
)

// helpStyle dims the key help footer.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
// Key and mouse messages received between two ticks are collected into one
// input frame and handed to the game on the next tick.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    core.Clock
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The screen keeps one row free for the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, clock core.Clock, logger *log.Logger) Model {
	if clock == nil {
		clock = core.NewSystemClock()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		clock:  clock,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick. Quit leaves at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "score", m.state.Score)
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleMouse records a left press in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil // Footer
	}
	m.input.Press(m.viewport().ToWorld(msg.X, msg.Y))
	return m, nil
}

// handleResize resizes the screen buffer. The game keeps running: its world
// is independent of the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick with the collected input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input, m.clock.Now())
	m.state = result.State
	m.input.Clear()

	platform.LogEvents(m.logger, m.game.ID(), result)

	if m.state.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) viewport() core.Viewport {
	world := m.game.World()
	return core.NewViewport(world.W, world.H, m.screen.Width(), m.screen.Height())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for game and returns the final state.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, core.NewSystemClock(), logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
