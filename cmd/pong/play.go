package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
	"github.com/vovakirdan/tui-pong/internal/telemetry"
)

var flagTrace string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Mouse        - Move your paddle
  Click/Space  - Serve the ball
  Up/Down, W/S - Nudge your paddle
  P/Esc        - Pause
  Tab          - Rallies of this session
  ?            - More help
  Q/Ctrl+C     - Quit

Examples:
  pong play
  pong play --seed 42
  pong play --trace rallies.csv
  pong play --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTrace, "trace", "", "Write every finished rally to this CSV file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	render, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	// The game owns the terminal; logs only go to a file
	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "pong")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: rally log unavailable: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	trace, err := telemetry.CreateTrace(flagTrace)
	if err != nil {
		return err
	}
	defer trace.Close()

	sum, err := tui.Run(tui.Options{
		Runtime: cfg.Runtime(flagSeed),
		Render:  render,
		Width:   width,
		Height:  height,
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
