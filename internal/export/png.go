package export

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// placeholder is shown in place of a chart when nothing matched.
const placeholder = "No data for this selection"

// errEmptyDistribution is returned by the PNG renderers for empty input,
// which go-chart cannot draw.
var errEmptyDistribution = errors.New("empty distribution")

var (
	levelColors  = []string{"#2ca02c", "#d62728"}
	genderColors = []string{"#1f77b4", "#ff7f0e"}
)

// LevelsPNG draws account levels as bars in green and red.
func LevelsPNG(w io.Writer, dist models.Distribution) error {
	return barPNG(w, dist, levelColors)
}

// GendersPNG draws gender counts as bars in blue and orange.
func GendersPNG(w io.Writer, dist models.Distribution) error {
	return barPNG(w, dist, genderColors)
}

// PlatformsPNG draws the platform shares as a pie.
func PlatformsPNG(w io.Writer, dist models.Distribution) error {
	if dist.IsEmpty() {
		return errEmptyDistribution
	}

	values := make([]chart.Value, len(dist.Counts))
	for i, c := range dist.Counts {
		values[i] = chart.Value{Value: float64(c.Count), Label: truncateLabel(c.Category, 40)}
	}

	pie := chart.PieChart{
		Title:  dist.Title,
		Width:  1024,
		Height: 1024,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

func barPNG(w io.Writer, dist models.Distribution, palette []string) error {
	if dist.IsEmpty() {
		return errEmptyDistribution
	}

	maxCount := 0
	bars := make([]chart.Value, len(dist.Counts))
	for i, c := range dist.Counts {
		bars[i] = chart.Value{
			Value: float64(c.Count),
			Label: truncateLabel(c.Category, 20),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(palette[i%len(palette)]),
				StrokeColor: drawing.ColorFromHex(palette[i%len(palette)]),
				StrokeWidth: 1,
			},
		}
		maxCount = max(maxCount, c.Count)
	}

	graph := chart.BarChart{
		Title: dist.Title,
		Background: chart.Style{
			Padding: chart.Box{Top: 60},
		},
		Height:   512,
		Width:    1024,
		BarWidth: barWidth(len(bars)),
		Bars:     bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount) * 1.1},
		},
	}
	return graph.Render(chart.PNG, w)
}

// barWidth keeps many unknown categories inside the canvas.
func barWidth(n int) int {
	return max(8, min(80, 900/(2*max(n, 1))))
}

func truncateLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
