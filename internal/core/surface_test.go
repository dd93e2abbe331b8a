package core

import "testing"

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Clear(ColorBlack)
	c.FillRect(2, 3, 4, 2, ColorWhite)

	if got := c.Count(ColorWhite); got != 8 {
		t.Errorf("filled %d pixels, expected 8", got)
	}
	if c.At(2, 3) != ColorWhite || c.At(5, 4) != ColorWhite {
		t.Error("rectangle corners not filled")
	}
	if c.At(6, 3) != ColorBlack || c.At(2, 5) != ColorBlack {
		t.Error("rectangle overflowed its right/bottom edge")
	}
}

func TestCanvasFillRectClips(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(-5, -5, 8, 8, ColorWhite) // Should not panic
	c.FillRect(8, 8, 10, 10, ColorRed)   // Should not panic

	if got := c.Count(ColorWhite); got != 9 {
		t.Errorf("clipped top-left fill = %d pixels, expected 9", got)
	}
	if got := c.Count(ColorRed); got != 4 {
		t.Errorf("clipped bottom-right fill = %d pixels, expected 4", got)
	}
}

func TestCanvasDrawImageSkipsTransparent(t *testing.T) {
	img := NewCanvas(2, 2)
	img.Set(0, 0, ColorWhite)
	img.Set(1, 1, ColorWhite)

	dst := NewCanvas(5, 5)
	dst.Clear(ColorBlack)
	dst.DrawImage(img, 2, 2)

	if dst.At(2, 2) != ColorWhite || dst.At(3, 3) != ColorWhite {
		t.Error("opaque pixels not copied")
	}
	if dst.At(3, 2) != ColorBlack || dst.At(2, 3) != ColorBlack {
		t.Error("transparent pixels overwrote the destination")
	}
}

func TestScaledSurfaceKeepsSmallRectsVisible(t *testing.T) {
	target := NewCanvas(60, 40)
	s := NewScaledSurface(target, 600, 400)

	if s.Width() != 600 || s.Height() != 400 {
		t.Fatalf("logical size = %dx%d, expected 600x400", s.Width(), s.Height())
	}

	s.Clear(ColorBlack)
	s.FillRect(295, 195, 1, 1, ColorWhite) // much smaller than one target pixel

	if got := target.Count(ColorWhite); got != 1 {
		t.Errorf("sub-pixel rect covered %d target pixels, expected 1", got)
	}
	if target.At(29, 19) != ColorWhite {
		t.Error("sub-pixel rect landed in the wrong target pixel")
	}
}

func TestScaledSurfaceScalesRects(t *testing.T) {
	target := NewCanvas(60, 40)
	s := NewScaledSurface(target, 600, 400)
	s.FillRect(0, 0, 100, 50, ColorWhite)

	if got := target.Count(ColorWhite); got != 10*5 {
		t.Errorf("scaled rect covered %d pixels, expected 50", got)
	}
}
