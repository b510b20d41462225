package info

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
	"github.com/j-veylop/cadence-dashboard-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	sections := []string{
		m.renderTitle(),
		m.renderConfigCard(),
		m.renderTablesCard(),
		m.renderAboutCard(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderTitle renders the info tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration, loaded tables and build information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	return min(max(m.viewport.Width-2, 50), 80)
}

// renderConfigCard renders the configuration card.
func (m *Model) renderConfigCard() string {
	rows := []string{styles.CardTitleStyle.Render("Configuration")}

	if m.config != nil {
		rows = append(rows,
			m.renderConfigRow("Data Directory", m.config.DataDir),
			m.renderConfigRow("Database", m.config.DatabasePath),
			m.renderConfigRow("Export Directory", m.config.ExportDir),
			m.renderConfigRow("Log File", orNone(m.config.LogFile)),
			m.renderConfigRow("Log Level", orNone(m.config.LogLevel)),
			m.renderConfigRow("Reload Debounce", m.config.ReloadDebounce.String()),
			m.renderConfigRow("Watch Files", onOff(m.config.Watch)),
			m.renderConfigRow("Desktop Alerts", onOff(m.config.Notify)),
		)
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderTablesCard lists the row count of every loaded table.
func (m *Model) renderTablesCard() string {
	rows := []string{styles.CardTitleStyle.Render("Tables")}

	tables := m.state.GetTables()
	if tables == nil {
		rows = append(rows, styles.WarningTextStyle.Render("No data loaded"))
	} else {
		counts := tables.Counts()
		names := []string{events.RawFile}
		for _, tz := range models.AllTimeZones() {
			names = append(names, events.ZoneFile(tz))
		}
		for _, name := range names {
			rows = append(rows, m.renderConfigRow(name, strconv.Itoa(counts[name])+" rows"))
		}
		if dir := tables.Dir(); dir != "" {
			rows = append(rows, "", styles.HelpStyle.Render("Loaded from "+dir))
		}
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigRow renders a key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// renderAboutCard renders the version information card.
func (m *Model) renderAboutCard() string {
	rows := []string{
		styles.CardTitleStyle.Render("About Cadence"),
		m.renderConfigRow("Version", version.GetVersion()),
		m.renderConfigRow("Git Commit", version.GetCommit()),
		m.renderConfigRow("Build Date", version.GetDate()),
		m.renderConfigRow("Go Version", runtime.Version()),
		m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)),
		"",
		fmt.Sprintf("Snapshots: %s", styles.InfoTextStyle.Render(strconv.Itoa(m.state.SnapshotTotal()))),
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
