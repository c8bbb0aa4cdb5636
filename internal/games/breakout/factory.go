package breakout

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ErrInvalidParams is wrapped by every construction parameter error.
var ErrInvalidParams = errors.New("breakout: invalid level parameters")

// ConfigError describes a rejected construction parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("breakout: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParams.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidParams
}

func invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// RowPalette is the rainbow cycled through by block rows.
var RowPalette = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorMagenta,
}

// Layout ratios, relative to board or ball size.
const (
	hMarginRatio     = 0.03  // Horizontal margin between blocks, of board width
	vMarginRatio     = 0.06  // Row pitch, of board height
	topMarginBalls   = 3.0   // HUD height, in ball sizes
	firstRowBalls    = 2.2   // Gap between HUD and first row, in ball sizes
	paddleYRatio     = 0.75  // Paddle top, of board height
	launchSpeedRatio = 0.005 // Launch speed per axis, of board height
)

// Params are the construction parameters of a level.
type Params struct {
	BoardWidth  int
	BoardHeight int
	Columns     int
	Rows        int
	Lives       int

	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64
	BallSize     float64
	BlockHeight  float64

	// LaunchSpeed is the per-axis launch speed. Zero derives it from the
	// board height.
	LaunchSpeed float64

	Rules Rules
}

// DefaultParams returns the classic 700x500 board with 10 columns, 5 rows
// and 4 lives.
func DefaultParams() Params {
	return Params{
		BoardWidth:   700,
		BoardHeight:  500,
		Columns:      10,
		Rows:         5,
		Lives:        4,
		PaddleWidth:  65,
		PaddleHeight: 20,
		PaddleSpeed:  5,
		BallSize:     15,
		BlockHeight:  20,
		Rules:        DefaultRules(),
	}
}

// Layout is the geometry derived from Params.
type Layout struct {
	HMargin     float64 // Gap left of the first block and between blocks
	VMargin     float64 // Distance between row tops
	BlockWidth  float64
	TopMargin   float64 // Boundary top; the HUD lives above it
	FirstRowY   float64
	PerRow      int // Blocks that fit in one row
	LaunchSpeed float64
}

// roundHalfEven rounds to the nearest integer, ties to even.
func roundHalfEven(x float64) float64 {
	return math.RoundToEven(x)
}

// ComputeLayout derives block and HUD geometry from the parameters without
// validating them.
func (p Params) ComputeLayout() Layout {
	w := float64(p.BoardWidth)
	h := float64(p.BoardHeight)

	lay := Layout{
		HMargin:   roundHalfEven(w * hMarginRatio),
		VMargin:   roundHalfEven(h * vMarginRatio),
		TopMargin: p.BallSize * topMarginBalls,
	}
	if p.Columns > 0 {
		cols := float64(p.Columns)
		lay.BlockWidth = roundHalfEven((w - 2*lay.HMargin - lay.HMargin*cols) / cols)
	}
	lay.FirstRowY = roundHalfEven(p.BallSize*firstRowBalls + lay.TopMargin)

	// A block fits when it and the gap after it stay clear of the right margin.
	if pitch := lay.BlockWidth + lay.HMargin; lay.BlockWidth > 0 && pitch > 0 {
		lay.PerRow = int(math.Floor((w - 2*lay.HMargin) / pitch))
	}

	lay.LaunchSpeed = p.LaunchSpeed
	if lay.LaunchSpeed == 0 {
		lay.LaunchSpeed = roundHalfEven(h * launchSpeedRatio)
	}
	return lay
}

// Validate checks the parameters and returns a *ConfigError for the first
// problem found.
func (p Params) Validate() error {
	switch {
	case p.BoardWidth <= 0:
		return invalid("board.width", "must be positive, got %d", p.BoardWidth)
	case p.BoardHeight <= 0:
		return invalid("board.height", "must be positive, got %d", p.BoardHeight)
	case p.Columns <= 0:
		return invalid("board.columns", "must be positive, got %d", p.Columns)
	case p.Rows <= 0:
		return invalid("board.rows", "must be positive, got %d", p.Rows)
	case p.Lives <= 0:
		return invalid("board.lives", "must be positive, got %d", p.Lives)
	case p.PaddleWidth <= 0 || p.PaddleHeight <= 0:
		return invalid("paddle", "size must be positive, got %gx%g", p.PaddleWidth, p.PaddleHeight)
	case p.PaddleWidth >= float64(p.BoardWidth):
		return invalid("paddle.width", "must be narrower than the board (%d), got %g", p.BoardWidth, p.PaddleWidth)
	case p.PaddleSpeed <= 0:
		return invalid("paddle.speed", "must be positive, got %g", p.PaddleSpeed)
	case p.BallSize <= 0:
		return invalid("ball.size", "must be positive, got %g", p.BallSize)
	case p.BlockHeight <= 0:
		return invalid("blocks.height", "must be positive, got %g", p.BlockHeight)
	case p.LaunchSpeed < 0:
		return invalid("ball.launch_speed", "must not be negative, got %g", p.LaunchSpeed)
	case p.Rules.ScorePerBlock < 0:
		return invalid("rules.score_per_block", "must not be negative, got %d", p.Rules.ScorePerBlock)
	case p.Rules.SpeedUp < 1:
		return invalid("rules.speed_up", "must be at least 1, got %g", p.Rules.SpeedUp)
	case p.Rules.MaxBallSpeed < 0:
		return invalid("rules.max_ball_speed", "must not be negative, got %g", p.Rules.MaxBallSpeed)
	}

	lay := p.ComputeLayout()
	if lay.BlockWidth <= 0 {
		return invalid("board.columns", "%d columns leave no room for blocks on a %d wide board", p.Columns, p.BoardWidth)
	}
	if lay.PerRow <= 0 {
		return invalid("board.columns", "no block fits in a row of width %d", p.BoardWidth)
	}
	if lay.LaunchSpeed <= 0 {
		return invalid("board.height", "height %d is too small to derive a launch speed", p.BoardHeight)
	}

	paddleTop := float64(p.BoardHeight) * paddleYRatio
	lastRowBottom := lay.FirstRowY + float64(p.Rows-1)*lay.VMargin + p.BlockHeight
	if lastRowBottom > paddleTop-p.BallSize {
		return invalid("board.rows", "%d rows reach below the paddle line", p.Rows)
	}
	return nil
}

// NewLevel validates the parameters and builds a fresh level.
func NewLevel(p Params) (*Level, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	lay := p.ComputeLayout()
	w := float64(p.BoardWidth)
	h := float64(p.BoardHeight)

	boundary := NewRect(0, lay.TopMargin, w, h)

	paddle := Paddle{
		Rect:  NewRect(w/2-p.PaddleWidth/2, h*paddleYRatio, p.PaddleWidth, p.PaddleHeight),
		Speed: p.PaddleSpeed,
	}
	ball := Ball{Rect: NewRect(0, 0, p.BallSize, p.BallSize)}

	blocks := layoutBlocks(p, lay)
	launch := Velocity{DX: lay.LaunchSpeed, DY: -lay.LaunchSpeed}

	return newLevel(boundary, paddle, ball, blocks, p.Lives, launch, p.Rules), nil
}

// layoutBlocks places rows of blocks left to right, top to bottom.
func layoutBlocks(p Params, lay Layout) []Block {
	blocks := make([]Block, 0, lay.PerRow*p.Rows)
	pitch := lay.BlockWidth + lay.HMargin
	y := lay.FirstRowY
	for row := range p.Rows {
		x := lay.HMargin
		for range lay.PerRow {
			blocks = append(blocks, Block{
				Rect:  NewRect(x, y, lay.BlockWidth, p.BlockHeight),
				Row:   row,
				Color: RowPalette[row%len(RowPalette)],
			})
			x += pitch
		}
		y += lay.VMargin
	}
	return blocks
}
