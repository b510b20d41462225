// Package snapshots provides the tab listing saved selections.
package snapshots

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/cadence-dashboard-tui/internal/app"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// keyMap defines the key bindings specific to the snapshots tab.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Apply  key.Binding
	Delete key.Binding
}

// defaultKeyMap returns the default key bindings for the snapshots tab.
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
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply selection"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
	}
}

// Model represents the snapshots tab state.
type Model struct {
	state    *app.State
	keys     keyMap
	viewport viewport.Model
	cursor   int
	width    int
	height   int
}

// New creates a new snapshots model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the snapshots tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the snapshots tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case app.DataLoadedMsg, app.SnapshotSavedMsg, app.SnapshotDeletedMsg, app.ServiceEventMsg:
		m.clampCursor()
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	snaps := m.state.GetSnapshots()
	m.clampCursor()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(snaps)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Apply):
		if snap, ok := m.selected(); ok {
			return func() tea.Msg { return app.ApplySnapshotMsg{Snapshot: snap} }
		}

	case key.Matches(msg, m.keys.Delete):
		if snap, ok := m.selected(); ok {
			return func() tea.Msg { return app.DeleteSnapshotMsg{ID: snap.ID} }
		}

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// selected returns the snapshot under the cursor.
func (m *Model) selected() (models.Snapshot, bool) {
	snaps := m.state.GetSnapshots()
	if m.cursor < 0 || m.cursor >= len(snaps) {
		return models.Snapshot{}, false
	}
	return snaps[m.cursor], true
}

// clampCursor keeps the cursor inside the list after it shrinks.
func (m *Model) clampCursor() {
	n := len(m.state.GetSnapshots())
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// SetSize sets the available size for the snapshots tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(width-2, 0)
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Apply, m.keys.Delete}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down},
		{m.keys.Apply, m.keys.Delete},
	}
}
