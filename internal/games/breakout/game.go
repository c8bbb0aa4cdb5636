package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar     = '='
	BallChar       = '●'
	BlockChar      = '█'
	DelimiterChar  = '─'
	minScreenW     = 30
	minScreenH     = 12
	hudRow         = 0
	overlayPadding = 4
)

// Title is the display name of the game.
const Title = "Arkanoid"

// Banner returns the title in spaced capitals for menu headings.
func Banner() string {
	return strings.Join(strings.Split(strings.ToUpper(Title), ""), " ")
}

// Phase is the session state around the level simulation.
type Phase int

const (
	PhaseMenu      Phase = iota // Start menu, shown initially and after a reset
	PhaseRunning                // Level is stepping
	PhasePaused                 // Stepping suspended by the player
	PhaseGameOver               // No lives left; terminal until reset
	PhasePlayerWon              // All blocks destroyed; terminal until reset
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhasePlayerWon:
		return "won"
	default:
		return "unknown"
	}
}

// Menu text shown on the start and pause overlays.
var menuLines = []string{
	"SPACE  start / pause / resume",
	"A D or arrows  move the paddle",
	"X or ENTER  release the ball",
	"DEL or R  reset the game",
	"Q  quit",
}

// Game is one play session: a level plus the menu/pause state machine.
// Only construction parameters survive a reset.
type Game struct {
	params    Params
	level     *Level
	phase     Phase
	tickCount int
	events    []Event
}

// New validates the parameters and creates a game showing the start menu.
func New(p Params) (*Game, error) {
	level, err := NewLevel(p)
	if err != nil {
		return nil, err
	}
	return &Game{
		params: p,
		level:  level,
		phase:  PhaseMenu,
	}, nil
}

// ParamsFromConfig maps the loaded configuration onto level parameters.
func ParamsFromConfig(cfg config.BreakoutConfig) Params {
	return Params{
		BoardWidth:   cfg.Board.Width,
		BoardHeight:  cfg.Board.Height,
		Columns:      cfg.Board.Columns,
		Rows:         cfg.Board.Rows,
		Lives:        cfg.Board.Lives,
		PaddleWidth:  cfg.Paddle.Width,
		PaddleHeight: cfg.Paddle.Height,
		PaddleSpeed:  cfg.Paddle.Speed,
		BallSize:     cfg.Ball.Size,
		BlockHeight:  cfg.Blocks.Height,
		LaunchSpeed:  cfg.Ball.LaunchSpeed,
		Rules: Rules{
			ScorePerBlock: cfg.Rules.ScorePerBlock,
			SpeedUp:       cfg.Rules.SpeedUp,
			MaxBallSpeed:  cfg.Rules.MaxBallSpeed,
		},
	}
}

// NewFromConfig creates a game from a loaded configuration.
func NewFromConfig(cfg config.BreakoutConfig) (*Game, error) {
	return New(ParamsFromConfig(cfg))
}

// Params returns the construction parameters.
func (g *Game) Params() Params {
	return g.params
}

// Level returns the current level. It is replaced on every reset.
func (g *Game) Level() *Level {
	return g.level
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Events returns the events produced by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// Reset discards the level and builds a fresh one from the same parameters,
// returning to the start menu.
func (g *Game) Reset() {
	level, err := NewLevel(g.params)
	if err != nil {
		// Params were validated in New and never change.
		panic(fmt.Sprintf("breakout: rebuilding level: %v", err))
	}
	g.level = level
	g.phase = PhaseMenu
	g.tickCount = 0
	g.events = g.events[:0]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) {
		g.Reset()
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseMenu, PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = PhaseRunning
		}
		return core.StepResult{State: g.State()}
	case PhaseGameOver, PhasePlayerWon:
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.phase = PhasePaused
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.events = append(g.events, g.level.Step(Intent{
		MoveLeft:    in.Has(core.ActionLeft),
		MoveRight:   in.Has(core.ActionRight),
		ReleaseBall: in.Has(core.ActionRelease),
	})...)

	st := g.level.State()
	switch {
	case st.GameOver:
		g.phase = PhaseGameOver
	case st.PlayerWon:
		g.phase = PhasePlayerWon
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.level.State()
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		GameOver: g.phase == PhaseGameOver || g.phase == PhasePlayerWon,
		Won:      g.phase == PhasePlayerWon,
		Paused:   g.phase == PhaseMenu || g.phase == PhasePaused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.Snapshot()
	view := newViewport(g.params, dst)

	g.renderHUD(dst, snap, view)
	if snap.Phase == PhaseMenu || snap.Phase == PhasePaused {
		g.renderOverlay(dst, snap)
		return
	}
	for _, s := range snap.Sprites {
		cell := view.toCells(s.Rect)
		switch s.Kind {
		case SpriteBlock:
			dst.DrawRectColored(cell, BlockChar, s.Color)
		case SpritePaddle:
			dst.DrawRectColored(cell, PaddleChar, s.Color)
		case SpriteBall:
			dst.DrawRectColored(cell, BallChar, s.Color)
		}
	}
	g.renderOverlay(dst, snap)
}

// viewport maps board units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(p Params, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / float64(p.BoardWidth),
		sy: float64(dst.Height()) / float64(p.BoardHeight),
	}
}

func (v viewport) cellX(x float64) int { return int(math.Round(x * v.sx)) }
func (v viewport) cellY(y float64) int { return int(math.Round(y * v.sy)) }

// toCells converts a board rectangle to cells, never smaller than one cell.
func (v viewport) toCells(r Rect) core.Rect {
	x0, y0 := v.cellX(r.Left()), v.cellY(r.Top())
	w := core.Max(1, v.cellX(r.Right())-x0)
	h := core.Max(1, v.cellY(r.Bottom())-y0)
	return core.NewRect(x0, y0, w, h)
}

// renderHUD draws score and lives above the delimiter line at the boundary top.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, view viewport) {
	dst.DrawText(dst.Width()/4, hudRow, fmt.Sprintf("Lifes: %d", snap.Lives))
	dst.DrawText(dst.Width()*2/3, hudRow, fmt.Sprintf("Score: %d", snap.Score))

	row := core.Max(hudRow+1, view.cellY(g.level.Boundary().Top())-1)
	dst.DrawHLine(0, row, dst.Width(), DelimiterChar)
}

// renderOverlay draws the menu or end-of-game message box.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case PhaseMenu:
		drawCenteredBox(dst, Banner(), menuLines...)
	case PhasePaused:
		drawCenteredBox(dst, "PAUSE", menuLines...)
	case PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case PhasePlayerWon:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawCenteredBox draws a centered message box with a title and body lines.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	textW := len(title)
	for _, line := range lines {
		textW = core.Max(textW, len(line))
	}
	boxW := core.Min(textW+overlayPadding, w)
	boxH := core.Min(len(lines)+4, h)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, line := range lines {
		dst.DrawText(boxX+2, boxY+3+i, line)
	}
}
