package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if err := Decode("breakout.yaml", DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML should parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig():\n got %+v\nwant %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadFileYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "board:\n  rows: 3\ndisplay:\n  background: darkcyan\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Board.Rows != 3 {
		t.Errorf("Rows = %d, expected 3", cfg.Board.Rows)
	}
	if cfg.Board.Columns != 10 {
		t.Errorf("Columns = %d, expected default 10", cfg.Board.Columns)
	}
	if cfg.Display.Background != ThemeDarkCyan {
		t.Errorf("Background = %q, expected %q", cfg.Display.Background, ThemeDarkCyan)
	}
}

func TestLoadFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	data := "[board]\ncolumns = 8\nlives = 2\n\n[rules]\nmax_ball_speed = 12.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Board.Columns != 8 || cfg.Board.Lives != 2 {
		t.Errorf("board = %+v, expected columns 8 and lives 2", cfg.Board)
	}
	if cfg.Rules.MaxBallSpeed != 12.5 {
		t.Errorf("MaxBallSpeed = %v, expected 12.5", cfg.Rules.MaxBallSpeed)
	}
	if cfg.Rules.SpeedUp != 1.02 {
		t.Errorf("SpeedUp = %v, expected default 1.02", cfg.Rules.SpeedUp)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("board: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() error = %v, expected parse failure", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	rows, lives := 7, 0
	bg := ThemeWhite

	cfg.ApplyOverrides(Overrides{Rows: &rows, Lives: &lives, Background: &bg})

	if cfg.Board.Rows != 7 {
		t.Errorf("Rows = %d, expected 7", cfg.Board.Rows)
	}
	// Zero is applied, not skipped, so the level factory can reject it.
	if cfg.Board.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", cfg.Board.Lives)
	}
	if cfg.Board.Columns != 10 {
		t.Errorf("Columns should be untouched, got %d", cfg.Board.Columns)
	}
	if cfg.Display.Background != ThemeWhite {
		t.Errorf("Background = %q, expected white", cfg.Display.Background)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BreakoutConfig)
		wantErr string
	}{
		{"defaults", func(*BreakoutConfig) {}, ""},
		{"unknown theme", func(c *BreakoutConfig) { c.Display.Background = "pink" }, "unknown theme"},
		{"zero fps", func(c *BreakoutConfig) { c.Display.FPS = 0 }, "display.fps"},
		{"negative hold", func(c *BreakoutConfig) { c.Display.HoldTicks = -1 }, "display.hold_ticks"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestThemes(t *testing.T) {
	names := ThemeNames()
	expected := []string{ThemeBlack, ThemeDarkCyan, ThemeWhite}
	if strings.Join(names, ",") != strings.Join(expected, ",") {
		t.Errorf("ThemeNames() = %v, expected %v", names, expected)
	}

	white, ok := LookupTheme(ThemeWhite)
	if !ok {
		t.Fatal("white theme should exist")
	}
	if white.Foreground != "#000000" {
		t.Errorf("white theme foreground = %q, expected black", white.Foreground)
	}
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "score_per_block: 100") {
		t.Errorf("marshalled YAML should contain score_per_block, got:\n%s", out)
	}
}
