package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
// It mirrors defaults/breakout.yaml and is used if the embedded file is unreadable.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Board: BoardConfig{
			Width:   700,
			Height:  500,
			Columns: 10,
			Rows:    5,
			Lives:   4,
		},
		Paddle: PaddleConfig{
			Width:  65,
			Height: 20,
			Speed:  5,
		},
		Ball: BallConfig{
			Size: 15,
		},
		Blocks: BlocksConfig{
			Height: 20,
		},
		Rules: RulesConfig{
			ScorePerBlock: 100,
			SpeedUp:       1.02,
		},
		Display: DisplayConfig{
			Background: ThemeBlack,
			FPS:        60,
			HoldTicks:  8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
