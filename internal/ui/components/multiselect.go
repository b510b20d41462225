package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
)

// MultiSelect is a titled checklist with a cursor. It does not own the
// checked state; callers pass it in when rendering.
type MultiSelect struct {
	Title   string
	Items   []string
	Cursor  int
	Focused bool
}

// NewMultiSelect creates a checklist over items.
func NewMultiSelect(title string, items []string) MultiSelect {
	return MultiSelect{Title: title, Items: items}
}

// MoveUp moves the cursor up, stopping at the first item.
func (m *MultiSelect) MoveUp() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// MoveDown moves the cursor down, stopping at the last item.
func (m *MultiSelect) MoveDown() {
	if m.Cursor < len(m.Items)-1 {
		m.Cursor++
	}
}

// Current returns the item under the cursor.
func (m MultiSelect) Current() (string, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return "", false
	}
	return m.Items[m.Cursor], true
}

// View renders the checklist. checked reports whether an item is selected.
func (m MultiSelect) View(checked func(item string) bool, width int) string {
	titleStyle := styles.BlurredStyle.Bold(true)
	if m.Focused {
		titleStyle = styles.FocusedStyle
	}

	lines := []string{titleStyle.Render(m.Title)}
	for i, item := range m.Items {
		box := "[ ]"
		if checked != nil && checked(item) {
			box = styles.SuccessTextStyle.Render("[x]")
		}

		row := box + " " + item
		if m.Focused && i == m.Cursor {
			row = styles.SelectedListItemStyle.String() + lipgloss.NewStyle().Bold(true).Render(row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	style := styles.BlurredBorderStyle
	if m.Focused {
		style = styles.FocusedBorderStyle
	}
	return style.Width(max(width-2, 10)).Render(strings.Join(lines, "\n"))
}
