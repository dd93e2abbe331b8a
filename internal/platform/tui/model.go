package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
	"github.com/vovakirdan/tui-pong/internal/telemetry"
)

// nudgeStep is how far one key press moves the paddle, as a share of the
// arena height.
const nudgeStep = 0.05

// Fallback terminal size until the first WindowSizeMsg arrives.
const (
	defaultCols = 80
	defaultRows = 24
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a terminal game.
type Options struct {
	Runtime core.RuntimeConfig
	Render  pong.RenderOptions
	Width   int // Initial terminal size; 0 means 80x24
	Height  int

	Store   *storage.Store         // Rally log, optional
	Trace   *telemetry.TraceWriter // CSV trace, optional
	Session *telemetry.Session     // Created from Store/Trace when nil
	Logger  *log.Logger            // Discarded when nil
}

// Model is the Bubble Tea model running one game of pong in a terminal.
// The arena is drawn on a half-block canvas: each terminal cell shows two
// vertically stacked pixels.
type Model struct {
	ctl     *pong.Controller
	clock   *tickClock
	surface *core.ScaledSurface
	canvas  *core.Canvas
	screen  *core.Screen

	session *telemetry.Session
	store   *storage.Store
	logger  *log.Logger

	keys        KeyMap
	help        help.Model
	rallies     RallyTable
	showRallies bool
	wasPaused   bool // Pause state before the rally table opened

	config    core.RuntimeConfig
	width     int
	height    int
	arenaRows int

	summary  *telemetry.Summary
	quitting bool
}

// NewModel creates a Bubble Tea model for a new game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session := opts.Session
	if session == nil {
		session = telemetry.NewSession(opts.Store, opts.Trace, logger)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = defaultCols, defaultRows
	}

	sim := pong.New(float64(cfg.ArenaW), float64(cfg.ArenaH), cfg.Seed)
	canvas := core.NewCanvas(width, 2*height)
	surface := core.NewScaledSurface(canvas, cfg.ArenaW, cfg.ArenaH)
	ctl := pong.NewController(sim, pong.NewRenderer(opts.Render), surface)
	ctl.Subscribe(session.Recorder())

	h := help.New()
	h.ShowAll = false

	m := Model{
		ctl:     ctl,
		clock:   &tickClock{},
		surface: surface,
		canvas:  canvas,
		screen:  core.NewScreen(width, height),
		session: session,
		store:   opts.Store,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
	}
	m.layout(width, height)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "session", m.session.ID, "seed", m.config.Seed)
	m.ctl.Start(m.clock)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if m.showRallies && (action == core.ActionUp || action == core.ActionDown) {
		var cmd tea.Cmd
		m.rallies, cmd = m.rallies.Update(msg)
		return m, cmd
	}

	switch action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionUp:
		m.ctl.NudgePaddle(-nudgeStep)
	case core.ActionDown:
		m.ctl.NudgePaddle(nudgeStep)
	case core.ActionLaunch:
		m.ctl.Activate()
	case core.ActionPause:
		if !m.showRallies {
			m.ctl.TogglePause()
		}
	case core.ActionRallies:
		m.toggleRallies()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout(m.width, m.height)
	}

	return m, nil
}

// handleMouse maps pointer motion to the paddle and a left click to a serve.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showRallies || m.arenaRows <= 0 || msg.Y >= m.arenaRows {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.ctl.PointerMove(m.pointerY(msg.Y))
	case tea.MouseActionPress:
		m.ctl.PointerMove(m.pointerY(msg.Y))
		if msg.Button == tea.MouseButtonLeft {
			m.ctl.Activate()
		}
	}
	return m, nil
}

// pointerY converts a terminal row to a normalized arena position, aiming at
// the middle of the cell.
func (m Model) pointerY(row int) float64 {
	return (float64(row) + 0.5) / float64(m.arenaRows)
}

// handleTick runs one frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.clock.fire(t)
	if !m.ctl.Running() {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) toggleRallies() {
	m.showRallies = !m.showRallies
	if !m.showRallies {
		if !m.wasPaused {
			m.ctl.Resume()
		}
		return
	}

	m.wasPaused = m.ctl.Paused()
	if !m.wasPaused {
		m.ctl.Pause()
	}
	if m.store == nil {
		m.rallies.SetRallies(nil)
		return
	}
	rallies, err := m.store.Rallies(m.session.ID)
	if err != nil {
		m.logger.Warn("could not load rallies", "error", err)
	}
	m.rallies.SetRallies(rallies)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.ctl.Stop()
	sum, err := m.session.End()
	if err != nil {
		m.logger.Warn("could not summarize session", "error", err)
	}
	m.summary = &sum
	m.quitting = true
	return m, tea.Quit
}

// layout resizes the screen and canvas to fit the terminal. The help bar
// takes the bottom rows; the arena gets the rest.
func (m *Model) layout(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	helpRows := lipgloss.Height(m.help.View(m.keys))
	m.arenaRows = max(height-helpRows, 1)

	m.screen.Resize(width, m.arenaRows)
	m.canvas = core.NewCanvas(width, 2*m.arenaRows)
	m.surface.Retarget(m.canvas)
	m.ctl.Redraw()

	m.rallies = NewRallyTable(m.arenaRows)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showRallies {
		body = lipgloss.Place(m.width, m.arenaRows, lipgloss.Center, lipgloss.Center, m.rallies.View())
	} else {
		m.screen.BlitHalfBlocks(m.canvas)
		m.drawOverlay()
		body = RenderScreen(m.screen)
	}

	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawOverlay writes status text over the arena.
func (m Model) drawOverlay() {
	switch {
	case m.ctl.Paused():
		const text = "PAUSED"
		w := len(text) + 4
		x := (m.width - w) / 2
		y := m.arenaRows/2 - 1
		m.screen.DrawRect(core.NewRect(x, y, w, 3), ' ')
		m.screen.DrawBox(core.NewRect(x, y, w, 3))
		m.screen.DrawText(x+2, y+1, text)
	case m.ctl.Simulation().Phase() == pong.PhaseIdle:
		m.screen.DrawTextCentered(m.arenaRows-1, " click or press space to serve ")
	}
}

// Summary returns the session summary once the game has quit.
func (m Model) Summary() (telemetry.Summary, bool) {
	if m.summary == nil {
		return telemetry.Summary{}, false
	}
	return *m.summary, true
}

// Session returns the telemetry session of this game.
func (m Model) Session() *telemetry.Session {
	return m.session
}

// Run starts the Bubble Tea program and returns the session summary.
func Run(opts Options) (telemetry.Summary, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion drives the paddle
	)

	final, err := p.Run()
	if err != nil {
		return telemetry.Summary{}, err
	}

	if m, ok := final.(Model); ok {
		if sum, done := m.Summary(); done {
			return sum, nil
		}
	}
	// Program ended without a quit key, e.g. killed
	return model.session.End()
}
