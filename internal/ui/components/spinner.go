package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/cadence-dashboard-tui/internal/ui/styles"
)

// TableSpinner is shown while the listening tables are read from disk.
type TableSpinner struct {
	model spinner.Model
	files []string
}

// NewTableSpinner creates a spinner for reading files.
func NewTableSpinner(files []string) TableSpinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)
	return TableSpinner{model: s, files: files}
}

// Init starts the animation.
func (t TableSpinner) Init() tea.Cmd {
	return t.model.Tick
}

// Update advances the animation on tick messages.
func (t TableSpinner) Update(msg tea.Msg) (TableSpinner, tea.Cmd) {
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// Label describes what is being loaded.
func (t TableSpinner) Label() string {
	if len(t.files) == 1 {
		return "Reading listening table..."
	}
	return fmt.Sprintf("Reading %d listening tables...", len(t.files))
}

// View renders the spinner, its label and the file names cut to width.
func (t TableSpinner) View(width int) string {
	head := t.model.View() + " " + lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(t.Label())
	if len(t.files) == 0 {
		return head
	}
	files := ansi.Truncate(strings.Join(t.files, ", "), max(width, 10), "…")
	return lipgloss.JoinVertical(lipgloss.Center, head, styles.HelpStyle.Render(files))
}

// RenderTableSpinner centers the spinner in a width x height area.
func RenderTableSpinner(t TableSpinner, width, height int) string {
	return styles.CenterBoth(t.View(width-4), width, height)
}
