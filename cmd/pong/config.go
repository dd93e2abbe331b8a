package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration pong would run with, after the config file
and the global flags are applied. The output is a valid config file.

Examples:
  pong config
  pong config --format toml > ~/.pong/pong.toml
  pong config --config ./my-pong.yaml --fps 30`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", config.FormatYAML, "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	return config.Encode(os.Stdout, cfg, flagFormat)
}
