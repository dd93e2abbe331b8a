package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	flagOn  string
	flagOff string
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs <number>",
	Short: "Print a number in the scoreboard font",
	Long: `Print a non-negative number the way the scoreboard draws it.

Examples:
  pong glyphs 42
  pong glyphs 1234567890 --on '#' --off '.'`,
	Args: cobra.ExactArgs(1),
	RunE: runGlyphs,
}

func init() {
	glyphsCmd.Flags().StringVar(&flagOn, "on", "█", "Character for lit pixels")
	glyphsCmd.Flags().StringVar(&flagOff, "off", " ", "Character for dark pixels")
}

func runGlyphs(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("not a non-negative number: %q", args[0])
	}
	on, err := singleRune(flagOn)
	if err != nil {
		return fmt.Errorf("--on: %w", err)
	}
	off, err := singleRune(flagOff)
	if err != nil {
		return fmt.Errorf("--off: %w", err)
	}

	for _, row := range pong.Banner(n, on, off) {
		fmt.Println(row)
	}
	return nil
}

func singleRune(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("want exactly one character, got %q", s)
	}
	return r[0], nil
}
