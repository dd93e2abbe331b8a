package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(defaultPongYAML, FormatYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n %+v\n %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "pong.yaml", `
arena:
  width: 800
render:
  foreground: bright-green
log:
  level: debug
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Arena.Width != 800 {
		t.Errorf("arena width = %d, expected 800", cfg.Arena.Width)
	}
	if cfg.Arena.Height != 400 {
		t.Errorf("missing keys should keep defaults, height = %d", cfg.Arena.Height)
	}
	if cfg.Render.Foreground != "bright-green" || cfg.Log.Level != "debug" {
		t.Errorf("unexpected render/log section: %+v %+v", cfg.Render, cfg.Log)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "pong.toml", `
[arena]
width = 320
height = 200

[clock]
tick_rate = 30

[server]
idle_timeout = "90s"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Arena.Width != 320 || cfg.Arena.Height != 200 {
		t.Errorf("arena = %+v, expected 320x200", cfg.Arena)
	}
	if cfg.Clock.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", cfg.Clock.TickRate)
	}
	if d, _ := cfg.Server.Idle(); d.Seconds() != 90 {
		t.Errorf("idle timeout = %v, expected 90s", d)
	}
	if cfg.Render.Pixel != 10 {
		t.Errorf("missing keys should keep defaults, pixel = %d", cfg.Render.Pixel)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown extension", "pong.json", `{}`},
		{"bad yaml", "pong.yaml", "arena: [\n"},
		{"bad toml", "pong.toml", "[arena\n"},
		{"zero width", "pong.yaml", "arena:\n  width: 0\n"},
		{"narrower than the paddles", "pong.yaml", "arena:\n  width: 100\n"},
		{"unknown color", "pong.yaml", "render:\n  background: mauve\n"},
		{"bad timeout", "pong.toml", "[server]\nidle_timeout = \"soon\"\n"},
		{"bad log level", "pong.yaml", "log:\n  level: loud\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, tc.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadCustomPathMustExist(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit config path that does not exist should fail")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".pong")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pong.toml"), []byte("[window]\ntitle = \"Mine\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Mine" {
		t.Errorf("window title = %q, expected the user config's", cfg.Window.Title)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Arena.Width = 1024
	cfg.Log.File = "pong.log"

	for _, format := range []string{FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, cfg, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Parse(buf.Bytes(), format)
			if err != nil {
				t.Fatalf("Parse: %v\n%s", err, buf.String())
			}
			if got != cfg {
				t.Errorf("round trip mismatch:\n %+v\n %+v", got, cfg)
			}
		})
	}

	err := Encode(&bytes.Buffer{}, cfg, "ini")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(ini) error = %v, expected ErrUnknownFormat", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Arena.Height = -1
	cfg.Clock.TickRate = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "arena") || !strings.Contains(msg, "tick_rate") {
		t.Errorf("error should mention every invalid field, got %q", msg)
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	cfg.Render.Foreground = "green"

	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatalf("RenderOptions: %v", err)
	}
	if opts.Foreground != core.ColorGreen || opts.Background != core.ColorBlack {
		t.Errorf("colors = %v on %v", opts.Foreground, opts.Background)
	}
	if opts.Pixel != 10 || opts.ScoreTop != 20 {
		t.Errorf("pixel/score top = %d/%f", opts.Pixel, opts.ScoreTop)
	}

	rt := cfg.Runtime(42)
	if rt.ArenaW != 600 || rt.ArenaH != 400 || rt.TickRate != 60 || rt.Seed != 42 {
		t.Errorf("runtime = %+v", rt)
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
