package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestFontGlyphs(t *testing.T) {
	f := NewFont(10, core.ColorWhite)

	tests := []struct {
		digit  int
		pixels int // filled pattern cells
	}{
		{0, 12},
		{1, 5},
		{7, 7},
		{8, 13},
	}
	for _, tc := range tests {
		g := f.Glyph(tc.digit)
		if g.Width() != 30 || g.Height() != 50 {
			t.Errorf("glyph %d is %dx%d, expected 30x50", tc.digit, g.Width(), g.Height())
		}
		if got := g.Count(core.ColorWhite); got != tc.pixels*100 {
			t.Errorf("glyph %d has %d lit pixels, expected %d", tc.digit, got, tc.pixels*100)
		}
		if got := g.Count(core.ColorDefault); got != (15-tc.pixels)*100 {
			t.Errorf("glyph %d has %d transparent pixels, expected %d", tc.digit, got, (15-tc.pixels)*100)
		}
	}
}

func TestFontDefaultPixel(t *testing.T) {
	f := NewFont(0, core.ColorWhite)
	if f.Pixel() != DefaultPixel {
		t.Errorf("Pixel() = %d, expected %d", f.Pixel(), DefaultPixel)
	}
	if f.CharWidth() != 4*DefaultPixel {
		t.Errorf("CharWidth() = %d, expected %d", f.CharWidth(), 4*DefaultPixel)
	}
}

func TestFontLayout(t *testing.T) {
	f := NewFont(10, core.ColorWhite)

	tests := []struct {
		name  string
		score int
		side  int
		want  []Placement
	}{
		{"zero left", 0, Human, []Placement{{0, 185, 20}}},
		{"zero right", 0, Computer, []Placement{{0, 385, 20}}},
		{"two digits right", 12, Computer, []Placement{{1, 365, 20}, {2, 405, 20}}},
		{"negative clamps", -3, Human, []Placement{{0, 185, 20}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Layout(tc.score, tc.side, 600, 20)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d placements, expected %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("placement %d = %+v, expected %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestBanner(t *testing.T) {
	got := Banner(10, '#', '.')
	want := []string{
		".#..###",
		".#..#.#",
		".#..#.#",
		".#..#.#",
		".#..###",
	}

	if len(got) != len(want) {
		t.Fatalf("got %d rows, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, got[i], want[i])
		}
	}
}
