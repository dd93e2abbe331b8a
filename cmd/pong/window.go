package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/window"
	"github.com/vovakirdan/tui-pong/internal/storage"
	"github.com/vovakirdan/tui-pong/internal/telemetry"
)

var (
	flagScale       float64
	flagWindowTrace string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and play with the mouse.

Controls:
  Mouse        - Move your paddle
  Click/Space  - Serve the ball
  Up/Down, W/S - Move your paddle
  P/Esc        - Pause
  Q            - Quit

The arena follows the window size divided by the scale.

Examples:
  pong window
  pong window --scale 2
  pong window --trace rallies.csv`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window pixels per arena unit (0 = from config)")
	windowCmd.Flags().StringVar(&flagWindowTrace, "trace", "", "Write every finished rally to this CSV file")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if flagScale > 0 {
		cfg.Window.Scale = flagScale
	}
	render, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr, "pong")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("rally log unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	trace, err := telemetry.CreateTrace(flagWindowTrace)
	if err != nil {
		return err
	}
	defer trace.Close()

	sum, err := window.Run(window.Options{
		Runtime: cfg.Runtime(flagSeed),
		Render:  render,
		Scale:   cfg.Window.Scale,
		Title:   cfg.Window.Title,
		Store:   store,
		Trace:   trace,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Println(sum)
	return nil
}
