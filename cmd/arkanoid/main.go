// arkanoid is a terminal brick breaker: one paddle, one ball and a wall of
// blocks to clear.
//
// Usage:
//
//	arkanoid play            - Play in this terminal
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid config show     - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Config file (YAML, or TOML with a .toml extension)
//	--columns, --rows     - Block grid (default: 10 x 5)
//	--lives <n>           - Starting lives (default: 4)
//	--background <theme>  - black, white or darkcyan
//	--fps <rate>          - Tick rate (default: 60)
//	--log <path>          - Log file, "-" for stderr
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagColumns    int
	flagRows       int
	flagLives      int
	flagBackground string
	flagFPS        int
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break blocks in your terminal",
	Long: `Arkanoid is a terminal brick breaker. Bounce the ball off your paddle
and clear every block before you run out of lives.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Inspect the configuration

Examples:
  arkanoid play
  arkanoid play --columns 8 --rows 4 --lives 3
  arkanoid play --background darkcyan
  arkanoid serve --ssh :2222
  arkanoid config show --config ./my-board.toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to a config file (.yaml or .toml)")
	flags.IntVar(&flagColumns, "columns", 10, "Number of block columns")
	flags.IntVar(&flagRows, "rows", 5, "Number of block rows")
	flags.IntVar(&flagLives, "lives", 4, "Number of lives")
	flags.StringVar(&flagBackground, "background", "black", "Background theme: black, white, darkcyan")
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.StringVar(&flagLogPath, "log", "~/.arkanoid/arkanoid.log", `Log file path ("-" for stderr)`)
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
