package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/clony-bird/internal/storage"
)

// maxSummaryRows caps the attempts listed in the exit summary.
const maxSummaryRows = 10

// Summary renders the best attempts of the session as a table for printing
// after the full-screen session has ended. total is the number of attempts
// played. It returns an empty string when nothing was played.
func Summary(attempts []storage.Attempt, total, tickRate int) string {
	if len(attempts) == 0 {
		return ""
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Attempt", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 8},
	}

	shown := attempts
	if len(shown) > maxSummaryRows {
		shown = shown[:maxSummaryRows]
	}

	rows := make([]table.Row, len(shown))
	for i, a := range shown {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.FormatInt(a.ID, 10),
			strconv.Itoa(a.Score),
			strconv.Itoa(a.Level),
			playTime(a.Ticks, tickRate),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("SESSION - %d attempts", total)))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(t.View()))
	b.WriteString("\n")
	return b.String()
}

// playTime formats a tick count as seconds at the given rate.
func playTime(ticks, tickRate int) string {
	if tickRate <= 0 {
		return strconv.Itoa(ticks) + "t"
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(tickRate))
}
