package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/games/breakout"
)

// loadConfig loads the config file and applies the flags the user set.
// Defaults of unset flags never override the file.
func loadConfig(cmd *cobra.Command) (config.BreakoutConfig, error) {
	cfg, err := config.Load(expandHome(flagConfig))
	if err != nil {
		return cfg, err
	}

	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("columns") {
		o.Columns = &flagColumns
	}
	if flags.Changed("rows") {
		o.Rows = &flagRows
	}
	if flags.Changed("lives") {
		o.Lives = &flagLives
	}
	if flags.Changed("background") {
		o.Background = &flagBackground
	}
	if flags.Changed("fps") {
		o.FPS = &flagFPS
	}
	cfg.ApplyOverrides(o)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := breakout.ParamsFromConfig(cfg).Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger opens the log destination. The returned close function is
// always safe to call.
func newLogger(path string, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "-" {
		path = expandHome(path)
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o700); mkErr != nil {
			return nil, closeFn, fmt.Errorf("cannot create log directory: %w", mkErr)
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
