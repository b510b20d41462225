package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

func TestTableSpinner(t *testing.T) {
	s := NewTableSpinner([]string{"omega_raw.json", "est_df.json"})
	if s.Init() == nil {
		t.Error("Init should start the animation")
	}
	if _, cmd := s.Update(spinner.TickMsg{}); cmd == nil {
		t.Error("Update should schedule the next tick")
	}

	view := s.View(80)
	for _, want := range []string{"Reading 2 listening tables", "omega_raw.json, est_df.json"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q, got %q", want, view)
		}
	}
}

func TestTableSpinner_Label(t *testing.T) {
	tests := []struct {
		files []string
		want  string
	}{
		{nil, "Reading 0 listening tables..."},
		{[]string{"a.json"}, "Reading listening table..."},
		{[]string{"a.json", "b.json", "c.json"}, "Reading 3 listening tables..."},
	}
	for _, tt := range tests {
		if got := NewTableSpinner(tt.files).Label(); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.files, got, tt.want)
		}
	}
}

func TestTableSpinner_TruncatesFiles(t *testing.T) {
	files := []string{"omega_raw.json", "est_df.json", "cst_df.json", "mst_df.json", "pst_df.json", "hst_df.json"}
	view := NewTableSpinner(files).View(20)
	for _, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w > 32 {
			t.Errorf("line %q is %d columns wide", line, w)
		}
	}
	if !strings.Contains(view, "…") {
		t.Error("long file list should be truncated")
	}
}

func TestRenderTableSpinner(t *testing.T) {
	view := RenderTableSpinner(NewTableSpinner([]string{"omega_raw.json"}), 40, 5)
	if !strings.Contains(view, "omega_raw.json") {
		t.Error("RenderTableSpinner should show the file name")
	}
	if h := lipgloss.Height(view); h != 5 {
		t.Errorf("height = %d, want 5", h)
	}
}

func levels() models.Distribution {
	return models.Distribution{
		Title:  "Paid vs Free Accounts",
		Counts: []models.CategoryCount{{Category: "paid", Count: 6}, {Category: "free", Count: 2}},
		Total:  8,
	}
}

func TestRenderHorizontalBars(t *testing.T) {
	s := RenderHorizontalBars(levels(), 40, LevelColors)
	lines := strings.Split(s, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 bars, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "paid") || !strings.HasSuffix(lines[0], " 6") {
		t.Errorf("First bar = %q", lines[0])
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Error("Larger count should draw a longer bar")
	}
}

func TestRenderVerticalBars(t *testing.T) {
	s := RenderVerticalBars(levels(), 4, GenderColors)
	if !strings.Contains(s, "paid") || !strings.Contains(s, "free") {
		t.Error("Vertical bars should show category labels")
	}
	if !strings.Contains(s, "6") || !strings.Contains(s, "2") {
		t.Error("Vertical bars should show counts")
	}
}

func TestRenderCharts_Empty(t *testing.T) {
	empty := models.Distribution{Title: "Gender Counts"}
	for name, s := range map[string]string{
		"horizontal": RenderHorizontalBars(empty, 40, LevelColors),
		"vertical":   RenderVerticalBars(empty, 5, GenderColors),
		"donut":      RenderDonut(empty, 40),
		"ring":       RenderShareRing(empty, 40),
		"table":      RenderRankedTable(nil, 40),
		"cloud":      RenderWordCloud(nil, 40, 10),
		"hourly":     RenderHourly(models.HourlyActivity{}, 40, 5),
	} {
		if !strings.Contains(s, PlaceholderText) {
			t.Errorf("%s: expected placeholder, got %q", name, s)
		}
	}
}

func TestRenderCharts_SingleCategory(t *testing.T) {
	single := models.Distribution{
		Title:  "Paid vs Free Accounts",
		Counts: []models.CategoryCount{{Category: "paid", Count: 5}},
		Total:  5,
	}

	horizontal := RenderHorizontalBars(single, 40, LevelColors)
	if lines := strings.Split(horizontal, "\n"); len(lines) != 1 {
		t.Errorf("horizontal: got %d bars, want 1", len(lines))
	}
	// 40 minus the label, the count and the separators leaves 31 cells.
	if got := strings.Count(horizontal, "█"); got != 31 {
		t.Errorf("horizontal: bar is %d cells, want 31", got)
	}

	vertical := RenderVerticalBars(single, 4, GenderColors)
	if !strings.Contains(vertical, "paid") || !strings.Contains(vertical, "5") {
		t.Errorf("vertical: missing label or count:\n%s", vertical)
	}
	filled := 0
	for _, line := range strings.Split(vertical, "\n") {
		if strings.Contains(line, "█") {
			filled++
		}
	}
	if filled != 4 {
		t.Errorf("vertical: column is %d rows tall, want 4", filled)
	}

	donut := RenderDonut(single, 40)
	if !strings.Contains(donut, "100.0%") {
		t.Errorf("donut: want 100.0%%, got %q", donut)
	}
	if got := lipgloss.Width(RenderShareRing(single, 20)); got != 20 {
		t.Errorf("ring: width = %d, want 20", got)
	}

	table := RenderRankedTable([]models.RankedSong{{Rank: 1, Song: "Yellow", Plays: 5}}, 40)
	if strings.Count(table, "Yellow") != 1 {
		t.Errorf("table: want one Yellow row:\n%s", table)
	}

	cloud := RenderWordCloud([]models.ArtistFrequency{{Artist: "Coldplay", Plays: 5}}, 40, 10)
	if lines := strings.Split(cloud, "\n"); len(lines) != 1 || !strings.Contains(cloud, "Coldplay") {
		t.Errorf("cloud: want one line with Coldplay, got %q", cloud)
	}

	for name, out := range map[string]string{
		"horizontal": horizontal,
		"vertical":   vertical,
		"donut":      donut,
		"table":      table,
		"cloud":      cloud,
	} {
		if strings.Contains(out, PlaceholderText) {
			t.Errorf("%s: single category should not render the placeholder", name)
		}
	}
}

func TestRenderHourly(t *testing.T) {
	var h models.HourlyActivity
	h[3], h[21] = 4, 9
	s := RenderHourly(h, 30, 5)
	if !strings.Contains(s, "plays by hour") {
		t.Error("Hourly chart should have a caption")
	}
}

func TestRenderDonut(t *testing.T) {
	d := models.Distribution{
		Counts: []models.CategoryCount{{Category: "Windows", Count: 3}, {Category: "Macintosh", Count: 1}},
		Total:  4,
	}
	s := RenderDonut(d, 60)
	if !strings.Contains(s, "75.0%") || !strings.Contains(s, "25.0%") {
		t.Errorf("Shares should show percentages, got %q", s)
	}
	if !strings.Contains(s, "Windows") {
		t.Error("Shares should show labels")
	}
}

func TestRenderShareRing_Width(t *testing.T) {
	d := models.Distribution{
		Counts: []models.CategoryCount{{Category: "a", Count: 1}, {Category: "b", Count: 1}, {Category: "c", Count: 1}},
		Total:  3,
	}
	ring := RenderShareRing(d, 20)
	if got := lipgloss.Width(ring); got != 20 {
		t.Errorf("Ring width = %d, want 20", got)
	}
}

func TestShareColors(t *testing.T) {
	colors := ShareColors(3)
	if len(colors) != 3 {
		t.Fatalf("len = %d, want 3", len(colors))
	}
	if colors[0] != "#7d56f4" || colors[2] != "#51cf66" {
		t.Errorf("Gradient endpoints = %v", colors)
	}
	if got := ShareColors(1); got[0] != "#7d56f4" {
		t.Errorf("Single color = %s", got[0])
	}
}

func TestRenderRankedTable(t *testing.T) {
	songs := []models.RankedSong{
		{Rank: 1, Song: "Yellow", Plays: 9},
		{Rank: 2, Song: "A very long song title that will not fit in the column", Plays: 3},
	}
	s := RenderRankedTable(songs, 30)
	for _, want := range []string{"Rank", "Song", "Plays", "Yellow", "9", "…"} {
		if !strings.Contains(s, want) {
			t.Errorf("Table missing %q:\n%s", want, s)
		}
	}
}

func TestRenderWordCloud(t *testing.T) {
	freqs := []models.ArtistFrequency{
		{Artist: "Coldplay", Plays: 10},
		{Artist: "Muse", Plays: 6},
		{Artist: "Daft Punk", Plays: 1},
	}
	s := RenderWordCloud(freqs, 14, 2)
	if !strings.Contains(s, "Coldplay") || !strings.Contains(s, "Muse") {
		t.Error("Cloud should contain top artists")
	}
	if strings.Contains(s, "Daft Punk") {
		t.Error("Cloud should respect maxWords")
	}
	for _, line := range strings.Split(s, "\n") {
		if lipgloss.Width(line) > 14 {
			t.Errorf("Line %q wider than 14", line)
		}
	}
}

func TestCloudTier(t *testing.T) {
	tests := []struct {
		plays, top, want int
	}{
		{10, 10, 0},
		{6, 10, 1},
		{3, 10, 2},
		{1, 10, 3},
		{1, 100, 4},
		{1, 0, 4},
	}
	for _, tt := range tests {
		if got := cloudTier(tt.plays, tt.top); got != tt.want {
			t.Errorf("cloudTier(%d, %d) = %d, want %d", tt.plays, tt.top, got, tt.want)
		}
	}
}

func TestMultiSelect(t *testing.T) {
	m := NewMultiSelect("Time Zones", []string{"EST", "CST", "PST"})
	m.MoveUp()
	if m.Cursor != 0 {
		t.Error("Cursor should stop at the top")
	}
	m.MoveDown()
	m.MoveDown()
	m.MoveDown()
	if item, _ := m.Current(); item != "PST" {
		t.Errorf("Current = %s, want PST", item)
	}

	m.Focused = true
	view := m.View(func(item string) bool { return item == "CST" }, 30)
	if !strings.Contains(view, "[x] CST") || !strings.Contains(view, "[ ] EST") {
		t.Errorf("Unexpected view:\n%s", view)
	}
}

func TestRenderLegend(t *testing.T) {
	items := DistributionLegend(levels(), LevelColors)
	if len(items) != 2 || items[0].Label != "paid" {
		t.Fatalf("Unexpected legend items %v", items)
	}
	s := RenderLegend(items)
	if !strings.Contains(s, "paid") {
		t.Error("RenderLegend should list labels")
	}
}
