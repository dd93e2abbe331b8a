package pong

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Glyph grid dimensions in pixel units.
const (
	glyphCols = 3
	glyphRows = 5
)

// digitPatterns are the scoreboard digits 0-9 as 3×5 grids, row-major,
// '1' marks a filled pixel.
var digitPatterns = [10]string{
	"111101101101111", // 0
	"010010010010010", // 1
	"111001111100111", // 2
	"111001111001111", // 3
	"101101111001001", // 4
	"111100111001111", // 5
	"111100111101111", // 6
	"111001001001001", // 7
	"111101111101111", // 8
	"111101111001111", // 9
}

// Font holds the rasterized scoreboard digits.
type Font struct {
	pixel  int
	glyphs [10]*core.Canvas
}

// NewFont rasterizes the ten digit glyphs once, each pattern pixel scaled to
// pixel×pixel arena units. Non-positive sizes fall back to DefaultPixel.
func NewFont(pixel int, c core.Color) *Font {
	if pixel <= 0 {
		pixel = DefaultPixel
	}

	f := &Font{pixel: pixel}
	for d, pattern := range digitPatterns {
		glyph := core.NewCanvas(glyphCols*pixel, glyphRows*pixel)
		for i, fill := range pattern {
			if fill != '1' {
				continue
			}
			x := float64((i % glyphCols) * pixel)
			y := float64((i / glyphCols) * pixel)
			glyph.FillRect(x, y, float64(pixel), float64(pixel), c)
		}
		f.glyphs[d] = glyph
	}
	return f
}

// Pixel returns the size of one glyph pixel in arena units.
func (f *Font) Pixel() int {
	return f.pixel
}

// CharWidth returns the horizontal advance per digit: glyph width plus a
// one-pixel gap.
func (f *Font) CharWidth() int {
	return f.pixel * (glyphCols + 1)
}

// Glyph returns the bitmap for a single decimal digit.
func (f *Font) Glyph(digit int) *core.Canvas {
	return f.glyphs[digit]
}

// Placement is one digit glyph positioned in the arena.
type Placement struct {
	Digit int
	X, Y  float64
}

// Layout positions the digits of a score for the paddle at index side.
// The digit group is centered on the line at (side+1)/3 of the arena width,
// drawn left to right at the given top.
func (f *Font) Layout(score, side int, arenaWidth, top float64) []Placement {
	digits := strconv.Itoa(max(score, 0))

	align := arenaWidth / 3
	charWidth := float64(f.CharWidth())
	offset := align*float64(side+1) - charWidth*float64(len(digits))/2 + float64(f.pixel)/2

	placements := make([]Placement, 0, len(digits))
	for i, ch := range digits {
		placements = append(placements, Placement{
			Digit: int(ch - '0'),
			X:     offset + float64(i)*charWidth,
			Y:     top,
		})
	}
	return placements
}

// Banner renders a number with the glyph patterns as text rows, one
// character per pattern pixel.
func Banner(n int, on, off rune) []string {
	digits := strconv.Itoa(max(n, 0))
	rows := make([]string, glyphRows)

	for r := 0; r < glyphRows; r++ {
		var sb strings.Builder
		for i, ch := range digits {
			if i > 0 {
				sb.WriteRune(off)
			}
			pattern := digitPatterns[ch-'0']
			for c := 0; c < glyphCols; c++ {
				if pattern[r*glyphCols+c] == '1' {
					sb.WriteRune(on)
				} else {
					sb.WriteRune(off)
				}
			}
		}
		rows[r] = sb.String()
	}
	return rows
}
