// pong is a two-player Pong game: you against a computer paddle that never
// misses, in the terminal, in a desktop window or over SSH.
//
// Usage:
//
//	pong play              - Play in this terminal
//	pong window            - Play in a desktop window
//	pong serve             - Start SSH server for remote play
//	pong config            - Print the effective configuration
//	pong glyphs <number>   - Print a number in the scoreboard font
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible serves
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - beat the computer paddle",
	Long: `Pong is the classic two-paddle game. Your paddle on the left follows
the mouse; the computer's paddle on the right follows the ball.
Every paddle hit makes the ball a little faster.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  glyphs   - Print a number in the scoreboard font

Examples:
  pong play
  pong play --seed 42 --trace rallies.csv
  pong window --scale 2
  pong serve --ssh :2222
  pong config --format toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(glyphsCmd)
}
