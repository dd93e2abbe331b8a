package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// palette maps core.Color to RGB. ColorDefault is transparent.
var palette = map[core.Color]color.RGBA{
	core.ColorBlack:         {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// RGBA returns the window color for c.
func RGBA(c core.Color) color.RGBA {
	return palette[c]
}

type opKind int

const (
	opFill opKind = iota
	opRect
	opImage
)

// drawOp is one recorded draw call, in window pixels.
type drawOp struct {
	kind       opKind
	x, y, w, h float32
	color      color.RGBA
	img        *core.Canvas
}

// frameSurface records the draw calls of a frame. The controller draws while
// Ebiten runs Update; the recorded frame is replayed onto the screen in Draw.
type frameSurface struct {
	width  int
	height int
	ops    []drawOp

	images map[*core.Canvas]*ebiten.Image
}

// Ensure frameSurface implements core.Surface
var _ core.Surface = (*frameSurface)(nil)

func newFrameSurface(width, height int) *frameSurface {
	return &frameSurface{
		width:  width,
		height: height,
		images: make(map[*core.Canvas]*ebiten.Image),
	}
}

func (s *frameSurface) Width() int  { return s.width }
func (s *frameSurface) Height() int { return s.height }

func (s *frameSurface) resize(width, height int) {
	s.width = width
	s.height = height
}

// Clear starts a new frame.
func (s *frameSurface) Clear(c core.Color) {
	s.ops = s.ops[:0]
	s.ops = append(s.ops, drawOp{kind: opFill, color: RGBA(c)})
}

func (s *frameSurface) FillRect(x, y, w, h float64, c core.Color) {
	s.ops = append(s.ops, drawOp{
		kind:  opRect,
		x:     float32(x),
		y:     float32(y),
		w:     float32(w),
		h:     float32(h),
		color: RGBA(c),
	})
}

func (s *frameSurface) DrawImage(img *core.Canvas, x, y float64) {
	s.ops = append(s.ops, drawOp{
		kind: opImage,
		x:    float32(x),
		y:    float32(y),
		img:  img,
	})
}

// replay paints the recorded frame onto screen.
func (s *frameSurface) replay(screen *ebiten.Image) {
	for _, op := range s.ops {
		switch op.kind {
		case opFill:
			screen.Fill(op.color)
		case opRect:
			vector.DrawFilledRect(screen, op.x, op.y, op.w, op.h, op.color, false)
		case opImage:
			geo := ebiten.GeoM{}
			geo.Translate(float64(op.x), float64(op.y))
			screen.DrawImage(s.image(op.img), &ebiten.DrawImageOptions{GeoM: geo})
		}
	}
}

// image uploads a bitmap once; glyph canvases are reused for every frame.
func (s *frameSurface) image(c *core.Canvas) *ebiten.Image {
	if img, ok := s.images[c]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(toRGBA(c))
	s.images[c] = img
	return img
}

// toRGBA converts a canvas to an image, leaving ColorDefault pixels transparent.
func toRGBA(c *core.Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if col := c.At(x, y); col != core.ColorDefault {
				img.SetRGBA(x, y, RGBA(col))
			}
		}
	}
	return img
}
