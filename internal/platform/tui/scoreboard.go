package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns        = 50 // Max runs to load
	tableMinHeight = 3
)

// Scoreboard shows the runs of the current session, best first. It is a
// sub-view of Model, not a program of its own.
type Scoreboard struct {
	store  *storage.Store
	runs   []storage.RunEntry
	stats  storage.Stats
	err    error
	table  table.Model
	width  int
	height int
}

// NewScoreboard creates a scoreboard reading from store. A nil store shows
// an empty board.
func NewScoreboard(store *storage.Store, width, height int) Scoreboard {
	s := Scoreboard{
		store:  store,
		width:  width,
		height: height,
	}
	s.table = s.createTable()
	return s
}

// createTable creates a new table with appropriate columns.
func (s *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Cause", Width: 10},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(s.height-8, tableMinHeight)), // Leave room for title, stats, and help
	)

	// Table styles
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// Refresh reloads runs and aggregates from the store.
func (s *Scoreboard) Refresh() {
	if s.store == nil {
		s.runs = nil
		s.stats = storage.Stats{}
		s.updateTableRows()
		return
	}

	s.runs, s.err = s.store.TopRuns(maxRuns)
	if s.err == nil {
		s.stats, s.err = s.store.Stats()
	}
	s.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (s *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(s.runs))
	for i, r := range s.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%03d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Ticks),
			r.Cause,
			r.Duration.Round(100 * time.Millisecond).String(),
		}
	}
	s.table.SetRows(rows)

	// Reset cursor to top
	s.table.GotoTop()
}

// Resize adapts the table to a new window size.
func (s *Scoreboard) Resize(width, height int) {
	s.width = width
	s.height = height
	s.table = s.createTable()
	s.updateTableRows()
}

// Update passes scrolling keys to the table.
func (s Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// View renders the scoreboard.
func (s Scoreboard) View() string {
	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString(titleStyle.Render(centerText("RUNS THIS SESSION", s.width)))
	b.WriteString("\n\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := fmt.Sprintf("Runs: %d   Best: %03d   Average: %.1f   Ticks: %d",
		s.stats.Runs, s.stats.Best, s.stats.Average, s.stats.TotalTicks)
	b.WriteString(statsStyle.Render(centerText(stats, s.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(s.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (s Scoreboard) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if s.err != nil {
		return emptyStyle.Render("Could not load runs:\n" + s.err.Error())
	}
	if len(s.runs) == 0 {
		return emptyStyle.Render("No runs finished yet.\nPress tab to get back to the board.")
	}

	return s.table.View()
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
