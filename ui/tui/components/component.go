package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"admindash/ui/tui/styles"
)

// Component is the interface that all dashboard widgets implement.
// It is similar to tea.Model but adds theming and resizing.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
	SetTheme(t styles.Theme)
	Resize(w, h int)
}

var (
	_ Component = (*ProjectionsWidget)(nil)
	_ Component = (*TrendWidget)(nil)
)
