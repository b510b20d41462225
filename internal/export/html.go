package export

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// maxCloudWords caps the artists sent to the word cloud.
const maxCloudWords = 150

// HTML renders the dashboard as a single go-echarts page.
func HTML(w io.Writer, d models.Dashboard) error {
	page := components.NewPage()
	page.SetPageTitle("Cadence - " + d.Selection.String())

	page.AddCharts(
		levelsChart(d.Levels),
		platformsChart(d.Platforms),
		gendersChart(d.Genders),
		artistsChart(d.TopArtists),
	)

	return page.Render(w)
}

func chartTitle(dist models.Distribution) opts.Title {
	t := opts.Title{Title: dist.Title}
	if dist.IsEmpty() {
		t.Subtitle = placeholder
	}
	return t
}

func levelsChart(dist models.Distribution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(chartTitle(dist)))

	labels := make([]string, len(dist.Counts))
	data := make([]opts.BarData, len(dist.Counts))
	for i, c := range dist.Counts {
		labels[i] = c.Category
		data[i] = opts.BarData{
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: levelColors[i%len(levelColors)]},
		}
	}

	bar.SetXAxis(labels).AddSeries("Users", data)
	bar.XYReversal()
	return bar
}

func platformsChart(dist models.Distribution) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(chartTitle(dist)))

	data := make([]opts.PieData, len(dist.Counts))
	for i, c := range dist.Counts {
		data[i] = opts.PieData{Name: c.Category, Value: c.Count}
	}

	pie.AddSeries("Platforms", data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"60%", "80%"}}),
	)
	return pie
}

func gendersChart(dist models.Distribution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(chartTitle(dist)))

	labels := make([]string, len(dist.Counts))
	data := make([]opts.BarData, len(dist.Counts))
	for i, c := range dist.Counts {
		labels[i] = c.Category
		data[i] = opts.BarData{
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: genderColors[i%len(genderColors)]},
		}
	}

	bar.SetXAxis(labels).AddSeries("Users", data)
	return bar
}

func artistsChart(artists []models.ArtistFrequency) *charts.WordCloud {
	wc := charts.NewWordCloud()
	title := opts.Title{Title: "Top Artists"}
	if len(artists) == 0 {
		title.Subtitle = placeholder
	}
	wc.SetGlobalOptions(charts.WithTitleOpts(title))

	if len(artists) > maxCloudWords {
		artists = artists[:maxCloudWords]
	}
	data := make([]opts.WordCloudData, len(artists))
	for i, a := range artists {
		data[i] = opts.WordCloudData{Name: a.Artist, Value: a.Plays}
	}

	wc.AddSeries("Artists", data)
	return wc
}
