package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Presentation defaults.
const (
	DefaultPixel    = 10 // Glyph pixel size in arena units
	DefaultScoreTop = 20 // Y of the score glyphs' top edge
)

// RenderOptions configures the look of the arena.
type RenderOptions struct {
	Pixel      int
	ScoreTop   float64
	Foreground core.Color
	Background core.Color
}

// DefaultRenderOptions returns white-on-black with the default glyph size.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Pixel:      DefaultPixel,
		ScoreTop:   DefaultScoreTop,
		Foreground: core.ColorWhite,
		Background: core.ColorBlack,
	}
}

// Renderer paints simulation state onto a surface. It keeps no entity state
// between calls, only the prebuilt font.
type Renderer struct {
	opts RenderOptions
	font *Font
}

// NewRenderer builds the scoreboard font and returns a renderer.
func NewRenderer(opts RenderOptions) *Renderer {
	if opts.Pixel <= 0 {
		opts.Pixel = DefaultPixel
	}
	return &Renderer{
		opts: opts,
		font: NewFont(opts.Pixel, opts.Foreground),
	}
}

// Font returns the scoreboard font.
func (r *Renderer) Font() *Font {
	return r.font
}

// Draw clears the surface and paints the ball, both paddles and the scores.
func (r *Renderer) Draw(dst core.Surface, sim *Simulation) {
	dst.Clear(r.opts.Background)

	r.drawBox(dst, sim.Ball().Box)
	for _, p := range sim.Paddles() {
		r.drawBox(dst, p.Box)
	}

	r.drawScore(dst, sim)
}

func (r *Renderer) drawBox(dst core.Surface, b core.Box) {
	dst.FillRect(b.Left(), b.Top(), b.Size.X, b.Size.Y, r.opts.Foreground)
}

func (r *Renderer) drawScore(dst core.Surface, sim *Simulation) {
	width := float64(dst.Width())
	for i, p := range sim.Paddles() {
		for _, pl := range r.font.Layout(p.Score, i, width, r.opts.ScoreTop) {
			dst.DrawImage(r.font.Glyph(pl.Digit), pl.X, pl.Y)
		}
	}
}
