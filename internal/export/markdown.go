package export

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// TopSongsMarkdown renders the ranked songs as a markdown table.
func TopSongsMarkdown(songs []models.RankedSong) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Rank", "Song", "Plays"})
	for _, s := range songs {
		t.AppendRow(table.Row{s.Rank, s.Song, s.Plays})
	}
	if len(songs) == 0 {
		t.AppendRow(table.Row{"", placeholder, ""})
	}
	return t.RenderMarkdown()
}
