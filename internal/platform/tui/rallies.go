package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Rally table layout constants
const (
	rallyTableMinHeight = 3
	rallyTableChrome    = 6 // Title, border and help lines around the table
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
)

// RallyTable shows the current session's rallies.
type RallyTable struct {
	table   table.Model
	rallies []storage.Rally
	height  int
}

// NewRallyTable creates an empty table sized for a terminal of the given height.
func NewRallyTable(height int) RallyTable {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Point", Width: 10},
		{Title: "Score", Width: 6},
		{Title: "Hits", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Peak", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-rallyTableChrome, rallyTableMinHeight)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return RallyTable{table: t, height: height}
}

// SetRallies replaces the rows and moves the cursor to the latest rally.
func (r *RallyTable) SetRallies(rallies []storage.Rally) {
	r.rallies = rallies
	rows := make([]table.Row, len(rallies))
	for i, ra := range rallies {
		rows[i] = table.Row{
			fmt.Sprintf("%d", ra.Number),
			sideName(ra.Scorer),
			fmt.Sprintf("%d", ra.ScorerScore),
			fmt.Sprintf("%d", ra.Hits),
			ra.Duration.Round(100 * time.Millisecond).String(),
			fmt.Sprintf("%.0f", ra.PeakSpeed),
		}
	}
	r.table.SetRows(rows)
	r.table.GotoBottom()
}

// Len returns the number of rallies shown.
func (r RallyTable) Len() int {
	return len(r.rallies)
}

// Update forwards scrolling keys to the table.
func (r RallyTable) Update(msg tea.Msg) (RallyTable, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the table or an empty message inside a panel.
func (r RallyTable) View() string {
	title := titleStyle.Render("RALLIES")
	if len(r.rallies) == 0 {
		return panelStyle.Render(title + "\n" + emptyStyle.Render("No points played yet."))
	}
	return panelStyle.Render(title + "\n" + r.table.View())
}

func sideName(side int) string {
	if side == 0 {
		return "you"
	}
	return "computer"
}
