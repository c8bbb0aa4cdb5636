package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/breakout"
)

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig
	Theme   config.Theme

	// HoldTicks is how many ticks one key press keeps the paddle moving.
	// Terminals report presses, not held keys; auto-repeat refreshes the
	// counter while a key stays down.
	HoldTicks int

	Logger *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	palette    Palette
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	holdTicks  int
	leftHeld   int
	rightHeld  int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *breakout.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, core.Max(1, opts.Runtime.ScreenH-1)),
		config:     opts.Runtime,
		palette:    NewPalette(opts.Theme),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		holdTicks:  core.Max(1, opts.HoldTicks),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	p := m.game.Params()
	m.logger.Info("game started",
		"columns", p.Columns,
		"rows", p.Rows,
		"lives", p.Lives,
		"blocks", m.game.Level().BlockCount(),
	)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.logger.Info("quit", "score", m.gameState.Score, "lives", m.gameState.Lives)
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		m.leftHeld, m.rightHeld = m.holdTicks, 0
	case core.ActionRight:
		m.rightHeld, m.leftHeld = m.holdTicks, 0
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The board is in its own units, so a resize only rescales the drawing.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.leftHeld > 0 {
		m.inputFrame.Set(core.ActionLeft)
		m.leftHeld--
	}
	if m.rightHeld > 0 {
		m.inputFrame.Set(core.ActionRight)
		m.rightHeld--
	}

	before := m.game.Phase()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.inputFrame.Has(core.ActionRestart) {
		m.logger.Info("game reset")
		m.leftHeld, m.rightHeld = 0, 0
	}
	m.logEvents()
	if after := m.game.Phase(); after != before {
		m.logger.Debug("phase changed", "from", before, "to", after)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logEvents reports the gameplay events of the last tick.
func (m Model) logEvents() {
	for _, e := range m.game.Events() {
		switch e.Type {
		case breakout.EventLifeLost, breakout.EventGameOver, breakout.EventPlayerWon:
			m.logger.Info(e.Type.String(), "score", e.Score, "lives", e.Lives)
		default:
			m.logger.Debug(e.Type.String(), "score", e.Score, "lives", e.Lives)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.palette.Base().Width(m.config.ScreenW).Render(m.help.View(m.keyMapper.Keys()))
	boardH := core.Max(1, m.config.ScreenH-lipgloss.Height(helpView))
	if m.screen.Height() != boardH {
		m.screen.Resize(m.config.ScreenW, boardH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.palette) + "\n" + helpView
}

// Game returns the running game.
func (m Model) Game() *breakout.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game *breakout.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
