package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
)

// cloudTiers style words from most to least played.
var cloudTiers = []lipgloss.Style{
	lipgloss.NewStyle().Bold(true).Underline(true).Foreground(styles.Primary),
	lipgloss.NewStyle().Bold(true).Foreground(styles.Secondary),
	lipgloss.NewStyle().Foreground(styles.Info),
	lipgloss.NewStyle().Foreground(styles.TextSecondary),
	lipgloss.NewStyle().Foreground(styles.TextMuted),
}

// cloudTier maps plays relative to the top artist onto a tier index.
func cloudTier(plays, top int) int {
	if top <= 0 {
		return len(cloudTiers) - 1
	}
	ratio := float64(plays) / float64(top)
	switch {
	case ratio >= 0.8:
		return 0
	case ratio >= 0.5:
		return 1
	case ratio >= 0.25:
		return 2
	case ratio >= 0.1:
		return 3
	default:
		return 4
	}
}

// RenderWordCloud lays out up to maxWords artists as wrapped text where
// emphasis grows with play count.
func RenderWordCloud(freqs []models.ArtistFrequency, width, maxWords int) string {
	if len(freqs) == 0 {
		return Placeholder()
	}
	width = max(width, 10)
	if maxWords > 0 && len(freqs) > maxWords {
		freqs = freqs[:maxWords]
	}

	top := freqs[0].Plays
	var lines []string
	var line []string
	lineWidth := 0

	for _, f := range freqs {
		word := ansi.Truncate(f.Artist, width, "…")
		w := lipgloss.Width(word)

		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineWidth = nil, 0
		}
		if lineWidth > 0 {
			lineWidth++
		}
		line = append(line, cloudTiers[cloudTier(f.Plays, top)].Render(word))
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}

	return strings.Join(lines, "\n")
}
