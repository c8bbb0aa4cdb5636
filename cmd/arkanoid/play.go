package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/breakout"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var flagQuick bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

A setup screen lets you adjust columns, rows, lives and background first;
--quick skips it.

Controls:
  Space        - Start / pause / resume
  A/D, arrows  - Move the paddle
  X/Enter      - Release the ball
  Del/R        - Reset the game
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Examples:
  arkanoid play
  arkanoid play --quick
  arkanoid play --columns 12 --rows 6 --lives 2
  arkanoid play --config ./my-board.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagQuick, "quick", false, "Skip the setup screen")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogPath, "arkanoid")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size early for the setup screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if !flagQuick {
		chosen, ok, setupErr := tui.RunSetup(cfg, width, height)
		if setupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", setupErr)
			os.Exit(1)
		}
		// User quit
		if !ok {
			return
		}
		cfg = chosen
	}

	game, err := breakout.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	theme, _ := config.LookupTheme(cfg.Display.Background)
	runErr := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Display.FPS,
		},
		Theme:     theme,
		HoldTicks: cfg.Display.HoldTicks,
		Logger:    logger,
	})

	st := game.State()
	logger.Info("game finished", "score", st.Score, "lives", st.Lives, "won", st.Won)

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
