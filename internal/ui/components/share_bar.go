package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/cadence-dashboard-tui/internal/logger"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
)

// Share palette endpoints; categories are colored along the gradient.
const (
	shareColorFrom = "#7D56F4"
	shareColorTo   = "#51cf66"
)

// ShareBar renders the fraction of a whole held by one category.
type ShareBar struct {
	progress progress.Model
}

// NewShareBar creates a share bar filled with color.
func NewShareBar(color string) ShareBar {
	p := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)
	return ShareBar{progress: p}
}

// View renders the bar with its label and percentage.
func (b ShareBar) View(share float64, label string, width int) string {
	labelWidth := min(max(width/3, 8), 28)
	barWidth := max(width-labelWidth-8, 5)
	b.progress.Width = barWidth

	bar := b.progress.ViewAs(share)

	percentStr := styles.ProgressPercentStyle.Render(fmt.Sprintf("%.1f%%", share*100))
	labelStr := styles.ProgressLabelStyle.Width(labelWidth).Render(ansi.Truncate(label, labelWidth-1, "…"))

	return lipgloss.JoinHorizontal(lipgloss.Center, labelStr, bar, " ", percentStr)
}

// ShareColors returns n colors spread along the share gradient.
func ShareColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = interpolateColor(shareColorFrom, shareColorTo, t)
	}
	return colors
}

// RenderShareRing draws the whole distribution as one stacked bar, the
// terminal stand-in for a donut chart.
func RenderShareRing(d models.Distribution, width int) string {
	if d.IsEmpty() || d.Total == 0 {
		return Placeholder()
	}
	width = max(width, 10)
	colors := ShareColors(len(d.Counts))

	var b strings.Builder
	used := 0
	for i := range d.Counts {
		n := int(d.Share(i) * float64(width))
		if i == len(d.Counts)-1 {
			n = width - used
		}
		n = max(min(n, width-used), 0)
		used += n
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render(strings.Repeat("█", n)))
	}
	return b.String()
}

// RenderDonut draws the ring followed by one share bar per category.
func RenderDonut(d models.Distribution, width int) string {
	if d.IsEmpty() || d.Total == 0 {
		return Placeholder()
	}
	colors := ShareColors(len(d.Counts))

	lines := []string{RenderShareRing(d, width), ""}
	for i, c := range d.Counts {
		lines = append(lines, NewShareBar(colors[i]).View(d.Share(i), c.Category, width))
	}
	return strings.Join(lines, "\n")
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
