// Package config provides YAML/TOML game configuration loading for the
// Arkanoid board, paddle, ball, scoring rules and display theme.
package config

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Board   BoardConfig   `yaml:"board" toml:"board"`
	Paddle  PaddleConfig  `yaml:"paddle" toml:"paddle"`
	Ball    BallConfig    `yaml:"ball" toml:"ball"`
	Blocks  BlocksConfig  `yaml:"blocks" toml:"blocks"`
	Rules   RulesConfig   `yaml:"rules" toml:"rules"`
	Display DisplayConfig `yaml:"display" toml:"display"`
}

// BoardConfig defines the board size, block grid and starting lives.
type BoardConfig struct {
	Width   int `yaml:"width" toml:"width"`
	Height  int `yaml:"height" toml:"height"`
	Columns int `yaml:"columns" toml:"columns"`
	Rows    int `yaml:"rows" toml:"rows"`
	Lives   int `yaml:"lives" toml:"lives"`
}

// PaddleConfig defines the paddle size and speed in board units.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// BallConfig defines the ball size and launch speed.
type BallConfig struct {
	Size        float64 `yaml:"size" toml:"size"`
	LaunchSpeed float64 `yaml:"launch_speed" toml:"launch_speed"` // 0 = derived from board height
}

// BlocksConfig defines the block height; block width follows from columns.
type BlocksConfig struct {
	Height float64 `yaml:"height" toml:"height"`
}

// RulesConfig defines scoring and the ball speed-up ramp.
type RulesConfig struct {
	ScorePerBlock int     `yaml:"score_per_block" toml:"score_per_block"`
	SpeedUp       float64 `yaml:"speed_up" toml:"speed_up"`
	MaxBallSpeed  float64 `yaml:"max_ball_speed" toml:"max_ball_speed"` // 0 = uncapped
}

// DisplayConfig defines how the terminal front end draws and samples input.
type DisplayConfig struct {
	Background string `yaml:"background" toml:"background"`
	FPS        int    `yaml:"fps" toml:"fps"`
	HoldTicks  int    `yaml:"hold_ticks" toml:"hold_ticks"` // Ticks a key press keeps the paddle moving
}

// Overrides carries command-line values. Nil fields are left untouched.
type Overrides struct {
	Columns    *int
	Rows       *int
	Lives      *int
	Background *string
	FPS        *int
}

// ApplyOverrides copies every set override into the config.
// Values are not checked here; invalid ones are reported by validation.
func (c *BreakoutConfig) ApplyOverrides(o Overrides) {
	if o.Columns != nil {
		c.Board.Columns = *o.Columns
	}
	if o.Rows != nil {
		c.Board.Rows = *o.Rows
	}
	if o.Lives != nil {
		c.Board.Lives = *o.Lives
	}
	if o.Background != nil {
		c.Display.Background = *o.Background
	}
	if o.FPS != nil {
		c.Display.FPS = *o.FPS
	}
}
