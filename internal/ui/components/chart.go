// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
)

// PlaceholderText is shown in place of a chart whose data is empty.
const PlaceholderText = "No data for this selection"

// Chart colors. Levels use green/red, genders blue/orange.
var (
	LevelColors  = []lipgloss.Color{"#2ca02c", "#d62728"}
	GenderColors = []lipgloss.Color{"#1f77b4", "#ff7f0e"}
)

// Placeholder renders the empty-data message.
func Placeholder() string {
	return styles.HelpStyle.Render(PlaceholderText)
}

func colorAt(colors []lipgloss.Color, i int) lipgloss.Color {
	if len(colors) == 0 {
		return styles.Primary
	}
	return colors[i%len(colors)]
}

func maxCount(d models.Distribution) int {
	m := 0
	for _, c := range d.Counts {
		m = max(m, c.Count)
	}
	return m
}

// RenderHorizontalBars draws one labeled bar per category, scaled to the
// largest count.
func RenderHorizontalBars(d models.Distribution, width int, colors []lipgloss.Color) string {
	if d.IsEmpty() {
		return Placeholder()
	}

	labelWidth := 0
	for _, c := range d.Counts {
		labelWidth = max(labelWidth, lipgloss.Width(c.Category))
	}
	labelWidth = min(labelWidth, max(width/3, 4))

	top := maxCount(d)
	valueWidth := len(fmt.Sprint(top)) + 1
	barWidth := max(width-labelWidth-valueWidth-3, 5)

	lines := make([]string, 0, len(d.Counts))
	for i, c := range d.Counts {
		label := ansi.Truncate(c.Category, labelWidth, "…")
		n := 0
		if top > 0 {
			n = c.Count * barWidth / top
		}
		if c.Count > 0 && n == 0 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(colorAt(colors, i)).Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("%*s │%s %d", labelWidth, label, bar, c.Count))
	}
	return strings.Join(lines, "\n")
}

// RenderVerticalBars draws columns of the given height with the category
// labels underneath.
func RenderVerticalBars(d models.Distribution, height int, colors []lipgloss.Color) string {
	if d.IsEmpty() {
		return Placeholder()
	}
	height = max(height, 3)

	colWidth := 0
	for _, c := range d.Counts {
		colWidth = max(colWidth, lipgloss.Width(c.Category), len(fmt.Sprint(c.Count)))
	}
	colWidth = min(max(colWidth, 3), 12)

	top := maxCount(d)
	heights := make([]int, len(d.Counts))
	for i, c := range d.Counts {
		if top > 0 {
			heights[i] = c.Count * height / top
		}
		if c.Count > 0 && heights[i] == 0 {
			heights[i] = 1
		}
	}

	cell := lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center)
	var rows []string

	// Counts sit on top of their column.
	for row := height; row >= 0; row-- {
		cells := make([]string, len(d.Counts))
		for i, c := range d.Counts {
			switch {
			case heights[i] == row:
				cells[i] = cell.Render(fmt.Sprint(c.Count))
			case heights[i] > row:
				block := strings.Repeat("█", max(colWidth-2, 1))
				cells[i] = cell.Foreground(colorAt(colors, i)).Render(block)
			default:
				cells[i] = cell.Render("")
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	labels := make([]string, len(d.Counts))
	for i, c := range d.Counts {
		labels[i] = cell.Render(ansi.Truncate(c.Category, colWidth, "…"))
	}
	rows = append(rows, strings.Join(labels, " "))

	return strings.Join(rows, "\n")
}

// RenderHourly plots plays per hour of day as an ASCII line chart.
func RenderHourly(h models.HourlyActivity, width, height int) string {
	if h.Total() == 0 {
		return Placeholder()
	}

	// Ensure minimum dimensions
	if width < 24 {
		width = 24
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(h.Values(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Blue),
		asciigraph.Caption("plays by hour (UTC)"),
	)
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}

// DistributionLegend builds a legend entry for every category of d.
func DistributionLegend(d models.Distribution, colors []lipgloss.Color) []LegendItem {
	items := make([]LegendItem, len(d.Counts))
	for i, c := range d.Counts {
		items[i] = LegendItem{Label: c.Category, Color: colorAt(colors, i)}
	}
	return items
}
