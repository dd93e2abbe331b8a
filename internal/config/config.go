// Package config provides YAML/TOML host configuration for the pong binary.
// Gameplay rules are fixed in the engine; only the arena size, presentation
// and hosting settings live here.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Config is the complete host configuration.
type Config struct {
	Arena  ArenaConfig  `yaml:"arena" toml:"arena"`
	Render RenderConfig `yaml:"render" toml:"render"`
	Clock  ClockConfig  `yaml:"clock" toml:"clock"`
	Window WindowConfig `yaml:"window" toml:"window"`
	Server ServerConfig `yaml:"server" toml:"server"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// ArenaConfig is the logical playfield size in arena units.
type ArenaConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// RenderConfig controls how the arena is painted.
type RenderConfig struct {
	Pixel      int     `yaml:"pixel" toml:"pixel"`         // Scoreboard glyph pixel size
	ScoreTop   float64 `yaml:"score_top" toml:"score_top"` // Y of the score glyphs
	Foreground string  `yaml:"foreground" toml:"foreground"`
	Background string  `yaml:"background" toml:"background"`
}

// ClockConfig controls the host frame clock.
type ClockConfig struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"` // Frames per second
}

// WindowConfig is used by the pixel window host.
type WindowConfig struct {
	Scale float64 `yaml:"scale" toml:"scale"`
	Title string  `yaml:"title" toml:"title"`
}

// ServerConfig is used by the SSH host.
type ServerConfig struct {
	Address     string `yaml:"address" toml:"address"`
	HostKey     string `yaml:"host_key" toml:"host_key"`
	IdleTimeout string `yaml:"idle_timeout" toml:"idle_timeout"` // Go duration, e.g. "10m"
}

// LogConfig selects the log level and an optional log file.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %dx%d", c.Arena.Width, c.Arena.Height))
	} else if c.Arena.Width < pong.MinArenaWidth {
		errs = append(errs, fmt.Errorf("arena width must be at least %d, got %d", int(pong.MinArenaWidth), c.Arena.Width))
	}
	if c.Render.Pixel <= 0 {
		errs = append(errs, fmt.Errorf("render.pixel must be positive, got %d", c.Render.Pixel))
	}
	if _, err := core.ParseColor(c.Render.Foreground); err != nil {
		errs = append(errs, fmt.Errorf("render.foreground: %w", err))
	}
	if _, err := core.ParseColor(c.Render.Background); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}
	if c.Clock.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("clock.tick_rate must be positive, got %d", c.Clock.TickRate))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %g", c.Window.Scale))
	}
	if _, err := c.Server.Idle(); err != nil {
		errs = append(errs, fmt.Errorf("server.idle_timeout: %w", err))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// Idle parses the idle timeout. An empty value disables it.
func (s ServerConfig) Idle() (time.Duration, error) {
	if s.IdleTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.IdleTimeout)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", d)
	}
	return d, nil
}

// Runtime converts the config into the simulation's runtime settings.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ArenaW:   c.Arena.Width,
		ArenaH:   c.Arena.Height,
		TickRate: c.Clock.TickRate,
		Seed:     seed,
	}
}

// RenderOptions converts the render section for pong.NewRenderer.
func (c Config) RenderOptions() (pong.RenderOptions, error) {
	fg, err := core.ParseColor(c.Render.Foreground)
	if err != nil {
		return pong.RenderOptions{}, fmt.Errorf("render.foreground: %w", err)
	}
	bg, err := core.ParseColor(c.Render.Background)
	if err != nil {
		return pong.RenderOptions{}, fmt.Errorf("render.background: %w", err)
	}
	return pong.RenderOptions{
		Pixel:      c.Render.Pixel,
		ScoreTop:   c.Render.ScoreTop,
		Foreground: fg,
		Background: bg,
	}, nil
}
