package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const configName = "breakout"

// Load loads the game configuration.
// Search order: customPath -> ~/.arkanoid/configs/breakout.{yaml,toml} ->
// ./configs/breakout.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; the rest keep default values.
func Load(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	candidates := make([]string, 0, 4)
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates,
			filepath.Join(dir, configName+".yaml"),
			filepath.Join(dir, configName+".toml"),
		)
	}
	candidates = append(candidates,
		filepath.Join("configs", configName+".yaml"),
		filepath.Join("configs", configName+".toml"),
	)

	for _, path := range candidates {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single config file on top of the defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, picking the format from the file name.
func Decode(name string, data []byte, cfg *BreakoutConfig) error {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Marshal renders the config as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigDir returns ~/.arkanoid/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", "configs")
}

// Validate checks the display section. Board, paddle, ball and rules are
// validated when the level is built.
func (c BreakoutConfig) Validate() error {
	if _, ok := LookupTheme(c.Display.Background); !ok {
		return fmt.Errorf("config: display.background: unknown theme %q (want one of %s)",
			c.Display.Background, strings.Join(ThemeNames(), ", "))
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: display.fps: must be positive, got %d", c.Display.FPS)
	}
	if c.Display.HoldTicks < 0 {
		return fmt.Errorf("config: display.hold_ticks: must not be negative, got %d", c.Display.HoldTicks)
	}
	return nil
}
