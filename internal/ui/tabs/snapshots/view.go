package snapshots

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
)

const createdLayout = "Jan 2 15:04"

// View renders the snapshots tab.
func (m *Model) View() string {
	snaps := m.state.GetSnapshots()
	if len(snaps) == 0 {
		return m.renderEmpty()
	}

	title := fmt.Sprintf("Snapshots (%d)", len(snaps))
	if total := m.state.SnapshotTotal(); total > len(snaps) {
		title = fmt.Sprintf("Snapshots (newest %d of %d)", len(snaps), total)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(title),
		m.renderTable(snaps),
		"",
		m.renderDetail(),
	)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Snapshots"),
		"",
		styles.HelpStyle.Render("No snapshots saved yet."),
		styles.HelpStyle.Render("Press s on the dashboard to save the current selection."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderTable(snaps []models.Snapshot) string {
	nameWidth := max(m.viewport.Width/3, 12)

	rows := make([][]string, len(snaps))
	for i, s := range snaps {
		rows[i] = []string{
			ansi.Truncate(s.Name, nameWidth, "…"),
			fmt.Sprint(s.Plays),
			fmt.Sprint(s.UniqueUsers),
			s.CreatedAt.Local().Format(createdLayout),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Subtle)).
		Headers("Name", "Plays", "Users", "Saved").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := styles.TableCellStyle
			switch {
			case row == table.HeaderRow:
				s = s.Bold(true).Foreground(styles.Primary)
			case row == m.cursor:
				s = s.Inherit(styles.TableSelectedStyle)
			}
			if col == 1 || col == 2 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	return t.Render()
}

func (m *Model) renderDetail() string {
	snap, ok := m.selected()
	if !ok {
		return ""
	}

	label := func(s string) string { return styles.HelpStyle.Width(12).Render(s) }
	value := func(s string) string {
		if s == "" {
			s = "-"
		}
		return styles.InfoTextStyle.Render(s)
	}

	sel := snap.Selection()
	lines := []string{
		styles.CardTitleStyle.Render(snap.Name),
		label("Selection") + value(sel.String()),
		label("Plays") + value(fmt.Sprint(snap.Plays)),
		label("Users") + value(fmt.Sprint(snap.UniqueUsers)),
		label("Top song") + value(snap.TopSong),
		label("Top artist") + value(snap.TopArtist),
		label("Saved") + value(snap.CreatedAt.Local().Format("2006-01-02 15:04:05")),
	}

	return styles.CardStyle.
		Width(max(m.viewport.Width-2, 30)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
