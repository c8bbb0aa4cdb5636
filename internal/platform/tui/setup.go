package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/breakout"
)

// Setup value ranges
const (
	maxColumns = 30
	maxRows    = 20
	maxLives   = 99
)

type setupField int

const (
	fieldColumns setupField = iota
	fieldRows
	fieldLives
	fieldBackground
	fieldStart
)

var setupLabels = []string{
	"Columns",
	"Rows",
	"Lives",
	"Background",
	"Start game",
}

// SetupModel lets users adjust the block grid, lives and background before
// a game starts.
type SetupModel struct {
	cfg       config.BreakoutConfig
	cursor    setupField
	width     int
	height    int
	keyMapper *KeyMapper
	err       error
	done      bool
	quitting  bool
}

// NewSetupModel creates a setup screen starting from the given configuration.
func NewSetupModel(cfg config.BreakoutConfig, width, height int) SetupModel {
	m := SetupModel{
		cfg:       cfg,
		cursor:    fieldStart,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	m.err = m.validate()
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, nil
	case MenuActionUp:
		if m.cursor > fieldColumns {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < fieldStart {
			m.cursor++
		}
	case MenuActionDecrease:
		m.adjust(-1)
	case MenuActionIncrease:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor != fieldStart {
			m.cursor = fieldStart
			return m, nil
		}
		if m.err == nil {
			m.done = true
		}
	}
	return m, nil
}

// adjust steps the selected value and revalidates.
func (m *SetupModel) adjust(delta int) {
	board := &m.cfg.Board
	switch m.cursor {
	case fieldColumns:
		board.Columns = core.Clamp(board.Columns+delta, 1, maxColumns)
	case fieldRows:
		board.Rows = core.Clamp(board.Rows+delta, 1, maxRows)
	case fieldLives:
		board.Lives = core.Clamp(board.Lives+delta, 1, maxLives)
	case fieldBackground:
		m.cfg.Display.Background = cycle(config.ThemeNames(), m.cfg.Display.Background, delta)
	case fieldStart:
		return
	}
	m.err = m.validate()
}

func (m SetupModel) validate() error {
	if err := m.cfg.Validate(); err != nil {
		return err
	}
	return breakout.ParamsFromConfig(m.cfg).Validate()
}

// cycle returns the name delta steps away from current, wrapping around.
func cycle(names []string, current string, delta int) string {
	i := slices.Index(names, current)
	if i < 0 {
		return names[0]
	}
	n := len(names)
	return names[((i+delta)%n+n)%n]
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(breakout.Banner(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Game setup", m.width))
	b.WriteString("\n\n")

	values := []string{
		fmt.Sprintf("< %d >", m.cfg.Board.Columns),
		fmt.Sprintf("< %d >", m.cfg.Board.Rows),
		fmt.Sprintf("< %d >", m.cfg.Board.Lives),
		fmt.Sprintf("< %s >", m.cfg.Display.Background),
		"",
	}

	for i, label := range setupLabels {
		cursor := "  "
		if setupField(i) == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-12s%12s", cursor, label, values[i]), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(centerText(m.err.Error(), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText("↑/↓: Move  |  ←/→: Change  |  Enter: Start  |  Q: Quit", m.width))

	return b.String()
}

// Config returns the configuration with the chosen values.
func (m SetupModel) Config() config.BreakoutConfig {
	return m.cfg
}

// Err returns the validation error of the current values, if any.
func (m SetupModel) Err() error {
	return m.err
}

// Done returns true once the user started the game with valid values.
func (m SetupModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// setupProgram ends the standalone program once setup is finished.
type setupProgram struct {
	SetupModel
}

func (p setupProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.SetupModel.Update(msg)
	if sm, ok := next.(SetupModel); ok {
		p.SetupModel = sm
	}
	if p.Done() || p.IsQuitting() {
		return p, tea.Quit
	}
	return p, cmd
}

// RunSetup runs the setup screen. It returns the chosen configuration and
// false if the user quit instead of starting a game.
func RunSetup(cfg config.BreakoutConfig, width, height int) (config.BreakoutConfig, bool, error) {
	p := tea.NewProgram(
		setupProgram{NewSetupModel(cfg, width, height)},
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return cfg, false, err
	}

	m, ok := finalModel.(setupProgram)
	if !ok || !m.Done() {
		return cfg, false, nil
	}
	return m.Config(), true, nil
}
