package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
)

const (
	sidebarMinWidth = 22
	sidebarMaxWidth = 30
	// maxCloudWords bounds the artists shown in the terminal word cloud.
	maxCloudWords = 60
)

// columnWeights are the relative widths of the left, middle and right columns.
var columnWeights = [3]int{3, 4, 3}

// columnWidths splits total between the three columns by columnWeights.
func columnWidths(total int) [3]int {
	sum := columnWeights[0] + columnWeights[1] + columnWeights[2]
	var widths [3]int
	used := 0
	for i := 0; i < 2; i++ {
		widths[i] = total * columnWeights[i] / sum
		used += widths[i]
	}
	widths[2] = total - used
	return widths
}

// View renders the dashboard component.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	d := m.state.GetDashboard()
	sel := m.state.GetSelection()

	// Layout against the viewport so no line is cut or rewrapped.
	available := m.viewport.Width
	sidebarWidth := min(max(available/5, sidebarMinWidth), sidebarMaxWidth)
	contentWidth := max(available-sidebarWidth-1, 30)
	widths := columnWidths(contentWidth)

	sidebar := m.renderSidebar(sel, d, sidebarWidth)
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderLeftColumn(d, widths[0]),
		m.renderMiddleColumn(d, widths[1]),
		m.renderRightColumn(d, widths[2]),
	)

	content := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", columns)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderTableSpinner(m.spinner, m.width, m.height)
}

func (m *Model) renderSidebar(sel models.Selection, d models.Dashboard, width int) string {
	title := styles.TitleStyle.Render("Cadence")

	checkedZone := func(item string) bool { return sel.HasTimeZone(models.TimeZone(item)) }
	checkedWeek := func(item string) bool { return sel.HasWeek(models.Week(item)) }

	summary := []string{
		styles.HelpStyle.Render("Showing"),
		wrap(sel.String(), width-2),
		"",
		fmt.Sprintf("%s %s", styles.HelpStyle.Render("Plays:"), styles.InfoTextStyle.Render(fmt.Sprint(d.Plays))),
		fmt.Sprintf("%s %s", styles.HelpStyle.Render("Users:"), styles.InfoTextStyle.Render(fmt.Sprint(d.UniqueUsers))),
	}

	hint := styles.HelpStyle.Render("space toggle · f switch\na all · c clear")

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.zones.View(checkedZone, width),
		m.weeks.View(checkedWeek, width),
		"",
		lipgloss.JoinVertical(lipgloss.Left, summary...),
		"",
		hint,
	))
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(max(width, 1)).Render(s)
}

// card wraps body in a titled card that occupies width columns.
func card(title, body string, width int) string {
	return styles.CardStyle.
		Width(max(width-2, 10)).
		Render(lipgloss.JoinVertical(lipgloss.Left, styles.CardTitleStyle.Render(title), body))
}

// innerWidth is the usable text width inside a card of width columns.
func innerWidth(width int) int {
	return max(width-6, 8)
}

func (m *Model) renderLeftColumn(d models.Dashboard, width int) string {
	inner := innerWidth(width)

	levels := components.RenderHorizontalBars(d.Levels, inner, components.LevelColors)
	if !d.Levels.IsEmpty() {
		legend := components.RenderLegend(components.DistributionLegend(d.Levels, components.LevelColors))
		levels = lipgloss.JoinVertical(lipgloss.Left, levels, "", legend)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		card(d.Levels.Title, levels, width),
		card(d.Platforms.Title, components.RenderDonut(d.Platforms, inner), width),
	)
}

func (m *Model) renderMiddleColumn(d models.Dashboard, width int) string {
	inner := innerWidth(width)

	return lipgloss.JoinVertical(lipgloss.Left,
		card(d.Genders.Title, components.RenderVerticalBars(d.Genders, 6, components.GenderColors), width),
		card("Top 10 Songs", components.RenderRankedTable(d.TopSongs, inner), width),
		card("Plays by Hour", components.RenderHourly(d.Hourly, inner-8, 6), width),
	)
}

func (m *Model) renderRightColumn(d models.Dashboard, width int) string {
	inner := innerWidth(width)

	hours := styles.HelpStyle.Render("Not implemented yet")

	return lipgloss.JoinVertical(lipgloss.Left,
		card("Hours Listening", hours, width),
		card("Top Artists", components.RenderWordCloud(d.TopArtists, inner, maxCloudWords), width),
	)
}
