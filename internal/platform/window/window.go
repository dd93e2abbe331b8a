// Package window runs pong in a desktop window using Ebiten.
// The window is resizable; the arena follows the window size divided by the
// configured scale.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
	"github.com/vovakirdan/tui-pong/internal/telemetry"
)

// nudgeStep is how far a held key moves the paddle per frame, as a share of
// the arena height.
const nudgeStep = 0.02

// keyActions binds window keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:   core.ActionUp,
	ebiten.KeyW:         core.ActionUp,
	ebiten.KeyArrowDown: core.ActionDown,
	ebiten.KeyS:         core.ActionDown,
	ebiten.KeySpace:     core.ActionLaunch,
	ebiten.KeyEnter:     core.ActionLaunch,
	ebiten.KeyP:         core.ActionPause,
	ebiten.KeyEscape:    core.ActionPause,
	ebiten.KeyQ:         core.ActionQuit,
}

// Options configures a windowed game.
type Options struct {
	Runtime core.RuntimeConfig
	Render  pong.RenderOptions
	Scale   float64 // Window pixels per arena unit; <= 0 means 1
	Title   string

	Store  *storage.Store         // Rally log, optional
	Trace  *telemetry.TraceWriter // CSV trace, optional
	Logger *log.Logger            // Discarded when nil
}

// Game adapts a pong controller to ebiten.Game.
type Game struct {
	ctl     *pong.Controller
	clock   *pong.ManualClock
	surface *frameSurface
	session *telemetry.Session
	logger  *log.Logger

	scale float64
}

// Ensure Game implements ebiten.Game
var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game sized to the configured arena.
func NewGame(opts Options) *Game {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	session := telemetry.NewSession(opts.Store, opts.Trace, logger)
	sim := pong.New(float64(cfg.ArenaW), float64(cfg.ArenaH), cfg.Seed)
	w, h := sim.Size()
	surface := newFrameSurface(int(w), int(h))
	ctl := pong.NewController(sim, pong.NewRenderer(opts.Render), surface)
	ctl.Subscribe(session.Recorder())

	g := &Game{
		ctl:     ctl,
		clock:   &pong.ManualClock{},
		surface: surface,
		session: session,
		logger:  logger,
		scale:   scale,
	}
	logger.Info("game started", "session", session.ID, "seed", cfg.Seed)
	ctl.Start(g.clock)
	return g
}

// Controller returns the controller driving the game.
func (g *Game) Controller() *pong.Controller {
	return g.ctl
}

// Session returns the telemetry session of this game.
func (g *Game) Session() *telemetry.Session {
	return g.session
}

// Update reads input and runs one frame.
func (g *Game) Update() error {
	for _, action := range justPressed() {
		if g.apply(action) {
			return ebiten.Termination
		}
	}
	for k, action := range keyActions {
		if ebiten.IsKeyPressed(k) && (action == core.ActionUp || action == core.ActionDown) {
			g.apply(action)
		}
	}

	if _, y := ebiten.CursorPosition(); y >= 0 && y < g.surface.height {
		g.ctl.PointerMove(float64(y) / float64(g.surface.height))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctl.Activate()
	}

	g.clock.Fire(float64(time.Now().UnixNano()) / 1e6)
	return nil
}

// apply performs an action and reports whether the game should end.
func (g *Game) apply(action core.Action) bool {
	switch action {
	case core.ActionQuit:
		g.ctl.Stop()
		return true
	case core.ActionUp:
		g.ctl.NudgePaddle(-nudgeStep)
	case core.ActionDown:
		g.ctl.NudgePaddle(nudgeStep)
	case core.ActionLaunch:
		g.ctl.Activate()
	case core.ActionPause:
		g.ctl.TogglePause()
	}
	return false
}

// justPressed returns the actions of the keys pressed since the last frame.
// Held movement keys are handled separately.
func justPressed() []core.Action {
	var actions []core.Action
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch a := keyActions[k]; a {
		case core.ActionNone, core.ActionUp, core.ActionDown:
		default:
			actions = append(actions, a)
		}
	}
	return actions
}

// Draw replays the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.replay(screen)

	switch {
	case g.ctl.Paused():
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.surface.width/2-18, g.surface.height/2-8)
	case g.ctl.Simulation().Phase() == pong.PhaseIdle:
		ebitenutil.DebugPrintAt(screen, "click or press space to serve", g.surface.width/2-87, g.surface.height-24)
	}
}

// Layout sizes the arena to the window. A size change re-bounds the
// simulation and redraws.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	w, h := g.arenaSize(outsideWidth, outsideHeight)
	if w != g.surface.width || h != g.surface.height {
		g.surface.resize(w, h)
		g.ctl.Simulation().Resize(float64(w), float64(h))
		g.ctl.Redraw()
		g.logger.Debug("arena resized", "width", w, "height", h)
	}
	return w, h
}

// arenaSize converts a window size to arena units. The width never drops
// below pong.MinArenaWidth; a narrower window shows the arena scaled down.
func (g *Game) arenaSize(outsideWidth, outsideHeight int) (int, int) {
	w := max(int(float64(outsideWidth)/g.scale), int(pong.MinArenaWidth))
	h := max(int(float64(outsideHeight)/g.scale), 1)
	return w, h
}

// Run opens the window and blocks until it is closed. It returns the session
// summary.
func Run(opts Options) (telemetry.Summary, error) {
	g := NewGame(opts)

	title := opts.Title
	if title == "" {
		title = "Pong"
	}
	ebiten.SetWindowSize(int(float64(g.surface.width)*g.scale), int(float64(g.surface.height)*g.scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err := ebiten.RunGame(g)
	g.ctl.Stop()
	sum, endErr := g.session.End()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return sum, err
	}
	return sum, endErr
}
