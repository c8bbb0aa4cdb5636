package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~/.arkanoid/arkanoid.log", filepath.Join(home, ".arkanoid", "arkanoid.log")},
		{"/tmp/arkanoid.log", "/tmp/arkanoid.log"},
		{"relative.log", "relative.log"},
		{"-", "-"},
	}
	for _, tc := range tests {
		if got := expandHome(tc.in); got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestLoadConfigAppliesChangedFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("board:\n  columns: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&flagColumns, "columns", 10, "")
	cmd.Flags().IntVar(&flagRows, "rows", 5, "")
	if err := cmd.Flags().Parse([]string{"--rows", "3"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Board.Rows != 3 {
		t.Errorf("Rows = %d, expected 3 from the flag", cfg.Board.Rows)
	}
	if cfg.Board.Columns != 8 {
		t.Errorf("Columns = %d, expected 8 from the file", cfg.Board.Columns)
	}
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	flagConfig = ""
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&flagLives, "lives", 4, "")
	if err := cmd.Flags().Parse([]string{"--lives", "0"}); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(cmd); err == nil {
		t.Error("loadConfig() should reject zero lives")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	flagLogLevel = "debug"
	path := filepath.Join(t.TempDir(), "logs", "arkanoid.log")

	logger, closeLog, err := newLogger(path, "test")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("block_destroyed", "score", 100)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}

	flagLogLevel = "loud"
	if _, _, err := newLogger("-", "test"); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
	flagLogLevel = "info"
}
