package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/KuberLakshman/PacMan/internal/storage"
)

// maxScores is the number of games listed in the session summary.
const maxScores = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// newScoreTable creates a table sized for n rows.
func newScoreTable(n int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 7},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(n+3), // header and its border take two lines
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed summary
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// SessionSummary renders the games finished this session, best first.
// It returns an empty string when no game was finished.
func SessionSummary(ctx context.Context, store *storage.Store, gameID string) (string, error) {
	if store == nil {
		return "", nil
	}

	scores, err := store.TopScores(ctx, gameID, maxScores)
	if err != nil {
		return "", err
	}
	stats, err := store.GameStats(ctx, gameID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SESSION SCORES"))
	b.WriteString("\n")

	if len(scores) == 0 {
		b.WriteString(emptyStyle.Render("No finished games this session."))
		b.WriteString("\n")
		return b.String(), nil
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Local().Format("15:04:05"),
		}
	}
	t := newScoreTable(len(rows))
	t.SetRows(rows)

	b.WriteString(boxStyle.Render(t.View()))
	b.WriteString("\n")
	b.WriteString(emptyStyle.Render(fmt.Sprintf("%d games, best %d, average %.0f, furthest level %d",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)))
	b.WriteString("\n")
	return b.String(), nil
}
