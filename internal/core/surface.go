package core

import "math"

// Surface is the drawing capability the renderer paints onto.
// Hosts own the pixel output; the simulation reads Width and Height to bound
// the arena. Coordinates are arena units with the origin at the top-left.
type Surface interface {
	Width() int
	Height() int
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	DrawImage(img *Canvas, x, y float64)
}

// Canvas is an in-memory raster. It is both a Surface and the bitmap type
// passed to DrawImage; pixels left at ColorDefault are transparent when blitted.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

// Ensure Canvas implements Surface
var _ Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// At returns the color at (x, y), or ColorDefault outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorDefault
	}
	return c.pix[y*c.width+x]
}

// Set colors a single pixel. Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = col
}

// Clear fills the whole canvas with one color.
func (c *Canvas) Clear(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// FillRect fills the pixels covered by the rectangle, rounding edges to the
// nearest pixel boundary and clipping to the canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0 := max(int(math.Round(x)), 0)
	y0 := max(int(math.Round(y)), 0)
	x1 := min(int(math.Round(x+w)), c.width)
	y1 := min(int(math.Round(y+h)), c.height)

	for py := y0; py < y1; py++ {
		row := c.pix[py*c.width : (py+1)*c.width]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

// DrawImage copies the opaque pixels of img with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img *Canvas, x, y float64) {
	ox := int(math.Round(x))
	oy := int(math.Round(y))
	for py := 0; py < img.height; py++ {
		for px := 0; px < img.width; px++ {
			if col := img.pix[py*img.width+px]; col != ColorDefault {
				c.Set(ox+px, oy+py, col)
			}
		}
	}
}

// Count returns how many pixels hold the given color.
func (c *Canvas) Count(col Color) int {
	n := 0
	for _, p := range c.pix {
		if p == col {
			n++
		}
	}
	return n
}

// ScaledSurface presents a logical arena of fixed size and maps every draw
// call onto a smaller (or larger) target surface. Rectangles always cover at
// least one target pixel so small entities stay visible.
type ScaledSurface struct {
	target Surface
	width  int
	height int
}

// Ensure ScaledSurface implements Surface
var _ Surface = (*ScaledSurface)(nil)

// NewScaledSurface wraps target so that callers draw in a width×height space.
func NewScaledSurface(target Surface, width, height int) *ScaledSurface {
	return &ScaledSurface{target: target, width: width, height: height}
}

// Retarget swaps the target surface, e.g. after a terminal resize.
func (s *ScaledSurface) Retarget(target Surface) {
	s.target = target
}

// Width returns the logical width.
func (s *ScaledSurface) Width() int {
	return s.width
}

// Height returns the logical height.
func (s *ScaledSurface) Height() int {
	return s.height
}

func (s *ScaledSurface) scale() (sx, sy float64) {
	if s.width <= 0 || s.height <= 0 {
		return 0, 0
	}
	return float64(s.target.Width()) / float64(s.width),
		float64(s.target.Height()) / float64(s.height)
}

// Clear clears the target.
func (s *ScaledSurface) Clear(c Color) {
	s.target.Clear(c)
}

// FillRect scales the rectangle onto the target.
func (s *ScaledSurface) FillRect(x, y, w, h float64, c Color) {
	sx, sy := s.scale()
	if sx == 0 || sy == 0 {
		return
	}
	tx, ty := math.Floor(x*sx), math.Floor(y*sy)
	tw := max(math.Ceil((x+w)*sx)-tx, 1)
	th := max(math.Ceil((y+h)*sy)-ty, 1)
	s.target.FillRect(tx, ty, tw, th, c)
}

// DrawImage scales each opaque pixel of img onto the target.
func (s *ScaledSurface) DrawImage(img *Canvas, x, y float64) {
	for py := 0; py < img.Height(); py++ {
		for px := 0; px < img.Width(); px++ {
			if col := img.At(px, py); col != ColorDefault {
				s.FillRect(x+float64(px), y+float64(py), 1, 1, col)
			}
		}
	}
}
