package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in configuration. It matches defaults/pong.yaml.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  600,
			Height: 400,
		},
		Render: RenderConfig{
			Pixel:      10,
			ScoreTop:   20,
			Foreground: "white",
			Background: "black",
		},
		Clock: ClockConfig{
			TickRate: 60,
		},
		Window: WindowConfig{
			Scale: 1,
			Title: "Pong",
		},
		Server: ServerConfig{
			Address:     ":23234",
			HostKey:     ".ssh/pong_ed25519",
			IdleTimeout: "10m",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
