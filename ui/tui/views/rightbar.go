package views

import (
	"github.com/charmbracelet/lipgloss"

	"admindash/internal/orders"
	"admindash/ui/tui/state"
	"admindash/ui/tui/styles"
)

// RightPanelWidth is the fully open width of the right bar.
const RightPanelWidth = 32

var feedIcons = map[string]string{
	"bug":       "✗",
	"user":      "☺",
	"subscribe": "✦",
	"activity":  "•",
}

var feedColors = map[string]lipgloss.AdaptiveColor{
	"bug":       {Light: "#DC2626", Dark: "#F87171"},
	"user":      {Light: "#2563EB", Dark: "#60A5FA"},
	"subscribe": {Light: "#16A34A", Dark: "#4ADE80"},
}

type RightBarView struct{}

func (v RightBarView) Render(s state.AppState, props ViewProps) string {
	if props.RightWidth <= 0 {
		return ""
	}
	t := props.Theme

	contacts := []string{t.Title().Render("Contacts")}
	for _, c := range s.Data.Contacts {
		contacts = append(contacts, "  "+c)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		t.Title().Render("Notifications"),
		renderFeed(t, s.Data.Notifications),
		t.Title().Render("Activities"),
		renderFeed(t, s.Data.Activities),
		lipgloss.JoinVertical(lipgloss.Left, contacts...),
	)

	return t.Panel().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		Width(props.RightWidth).
		MaxWidth(props.RightWidth).
		Height(max(props.Height, 1)).
		Render(body)
}

func renderFeed(t styles.Theme, items []orders.FeedItem) string {
	lines := make([]string, 0, len(items)*2+1)
	for _, it := range items {
		icon, ok := feedIcons[it.Kind]
		if !ok {
			icon = "•"
		}
		iconStyle := t.Subtle()
		if col, ok := feedColors[it.Kind]; ok {
			c := col.Light
			if t.Dark {
				c = col.Dark
			}
			iconStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
		}
		lines = append(lines,
			iconStyle.Render(icon)+" "+it.Message,
			"  "+t.Subtle().Render(it.Time),
		)
	}
	lines = append(lines, "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
