// Package dashboard provides the main dashboard tab: the selection sidebar
// and the three chart columns.
package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/cadence-dashboard-tui/internal/app"
	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/logger"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/components"
)

// focusArea is the sidebar list receiving cursor keys.
type focusArea int

const (
	focusZones focusArea = iota
	focusWeeks
)

// keyMap defines the key bindings specific to the dashboard tab.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	SwitchFocus key.Binding
	SelectAll   key.Binding
	Clear       key.Binding
	Save        key.Binding
	Export      key.Binding
}

// defaultKeyMap returns the default key bindings for the dashboard tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "zones/weeks"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save snapshot"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
	}
}

// Model represents the dashboard tab state.
type Model struct {
	state    *app.State
	spinner  components.TableSpinner
	keys     keyMap
	viewport viewport.Model
	zones    components.MultiSelect
	weeks    components.MultiSelect
	focus    focusArea
	width    int
	height   int
}

// New creates a new dashboard model.
func New(state *app.State) *Model {
	zones := make([]string, 0, len(models.AllTimeZones()))
	for _, tz := range models.AllTimeZones() {
		zones = append(zones, tz.String())
	}
	weeks := make([]string, 0, len(models.WeekOptions()))
	for _, w := range models.WeekOptions() {
		weeks = append(weeks, w.String())
	}

	m := &Model{
		state:    state,
		spinner:  components.NewTableSpinner(events.Files()),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
		zones:    components.NewMultiSelect("Time Zones", zones),
		weeks:    components.NewMultiSelect("Weeks", weeks),
	}
	m.setFocus(focusZones)
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		if m.state.IsInitialLoading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.focused().MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.focused().MoveDown()
	case key.Matches(msg, m.keys.SwitchFocus):
		if m.focus == focusZones {
			m.setFocus(focusWeeks)
		} else {
			m.setFocus(focusZones)
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()
	case key.Matches(msg, m.keys.SelectAll):
		m.selectAll()
	case key.Matches(msg, m.keys.Clear):
		m.clear()
	case key.Matches(msg, m.keys.Save):
		return func() tea.Msg { return app.SaveSnapshotMsg{} }
	case key.Matches(msg, m.keys.Export):
		return func() tea.Msg { return app.ExportMsg{} }
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) focused() *components.MultiSelect {
	if m.focus == focusWeeks {
		return &m.weeks
	}
	return &m.zones
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.zones.Focused = f == focusZones
	m.weeks.Focused = f == focusWeeks
}

// toggleCurrent flips the item under the cursor. The dashboard is recomputed
// before this returns.
func (m *Model) toggleCurrent() {
	item, ok := m.focused().Current()
	if !ok {
		return
	}

	sel := m.state.GetSelection()
	if m.focus == focusWeeks {
		sel = sel.ToggleWeek(models.Week(item))
	} else {
		sel = sel.ToggleTimeZone(models.TimeZone(item))
	}
	m.apply(sel)
}

func (m *Model) selectAll() {
	sel := m.state.GetSelection()
	if m.focus == focusWeeks {
		sel = sel.WithAllWeeks()
	} else {
		sel = sel.WithAllTimeZones()
	}
	m.apply(sel)
}

func (m *Model) clear() {
	sel := m.state.GetSelection()
	if m.focus == focusWeeks {
		sel = sel.WithoutWeeks()
	} else {
		sel = sel.WithoutTimeZones()
	}
	m.apply(sel)
}

func (m *Model) apply(sel models.Selection) {
	m.state.SetSelection(sel)
	logger.Debug("Selection changed", "selection", sel.String())
}

// SetSize sets the available size for the dashboard.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	// DocStyle pads one column on each side.
	m.viewport.Width = max(width-2, 0)
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Toggle,
		m.keys.SwitchFocus,
		m.keys.SelectAll,
		m.keys.Clear,
		m.keys.Save,
		m.keys.Export,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.Toggle},
		{m.keys.SwitchFocus, m.keys.SelectAll, m.keys.Clear},
		{m.keys.Save, m.keys.Export},
	}
}
