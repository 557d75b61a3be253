package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxHistoryRuns = 50

// history shows the finished runs of this session.
type history struct {
	store  *storage.Store
	preset string
	runs   []storage.Run
	stats  *storage.Stats
	table  table.Model
	err    error
}

func newHistory(store *storage.Store, preset string, width, height int) history {
	h := history{store: store, preset: preset}
	h.table = newHistoryTable(width, height)
	return h
}

// newHistoryTable creates a table sized for the terminal.
func newHistoryTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Preset", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Result", Width: 10},
		{Title: "Time", Width: 8},
	}
	if width > 70 {
		columns = append(columns, table.Column{Title: "Ended", Width: 10})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches runs and stats from the store.
func (h *history) reload() {
	h.runs, h.stats, h.err = nil, nil, nil
	if h.store == nil {
		h.updateRows()
		return
	}

	h.runs, h.err = h.store.RecentRuns(maxHistoryRuns)
	if h.err == nil {
		h.stats, h.err = h.store.Stats(h.preset)
	}
	h.updateRows()
}

func (h *history) resize(width, height int) {
	h.table = newHistoryTable(width, height)
	h.updateRows()
}

// historyRows converts runs to table rows, newest first.
func historyRows(runs []storage.Run, wide bool) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "crashed"
		if r.Status == "won" {
			result = "won"
		}
		row := table.Row{
			fmt.Sprintf("%d", len(runs)-i),
			r.Preset,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			result,
			r.Duration().Round(100 * time.Millisecond).String(),
		}
		if wide {
			row = append(row, r.EndedAt.Format("15:04:05"))
		}
		rows[i] = row
	}
	return rows
}

func (h *history) updateRows() {
	wide := len(h.table.Columns()) > 6
	h.table.SetRows(historyRows(h.runs, wide))
	h.table.GotoTop()
}

// view renders the history panel.
func (h history) view(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION HISTORY", width)))
	b.WriteString("\n\n")

	if h.stats != nil && h.stats.Runs > 0 {
		summary := fmt.Sprintf("%s: %d runs, %d won, best %d, average %.1f",
			h.preset, h.stats.Runs, h.stats.Wins, h.stats.BestScore, h.stats.AvgScore)
		b.WriteString(centerText(summary, width))
		b.WriteString("\n\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case h.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render("Could not load history: " + h.err.Error())
	case len(h.runs) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No finished runs yet.\nHistory lasts until you quit.")
	default:
		content = h.table.View()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, boxStyle.Render(content)))
	return b.String()
}
