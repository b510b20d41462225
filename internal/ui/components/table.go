package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
)

// RenderRankedTable renders the top songs with Rank, Song and Plays columns.
func RenderRankedTable(songs []models.RankedSong, width int) string {
	if len(songs) == 0 {
		return Placeholder()
	}

	songWidth := max(width-18, 8)
	rows := make([][]string, len(songs))
	for i, s := range songs {
		rows[i] = []string{
			fmt.Sprint(s.Rank),
			ansi.Truncate(s.Song, songWidth, "…"),
			fmt.Sprint(s.Plays),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Subtle)).
		BorderColumn(false).
		Headers("Rank", "Song", "Plays").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := styles.TableCellStyle
			if row == table.HeaderRow {
				s = s.Bold(true).Foreground(styles.Primary)
			}
			if col != 1 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	return t.Render()
}
