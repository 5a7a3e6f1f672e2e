package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"admindash/ui/tui/state"
)

// LeftPanelWidth is the fully open width of the sidebar.
const LeftPanelWidth = 26

type SidebarView struct{}

func (v SidebarView) Render(s state.AppState, props ViewProps) string {
	if props.LeftWidth <= 0 {
		return ""
	}
	t := props.Theme
	d := s.Data

	group := func(title string, items []string) string {
		lines := []string{t.Subtle().Render(title)}
		for _, it := range items {
			lines = append(lines, "  "+it)
		}
		return strings.Join(lines, "\n")
	}

	dashboards := []string{t.Subtle().Render("Dashboards")}
	for _, name := range d.Dashboards {
		line := "  " + name
		// Default maps to the dashboard page, eCommerce to orders
		switch name {
		case "Default":
			line = zone.Mark(ZoneSidebarLink(state.PageDashboard.String()), tabLine(t.Base(), name, s.CurrentPage == state.PageDashboard))
		case "eCommerce":
			line = zone.Mark(ZoneSidebarLink(state.PageOrders.String()), tabLine(t.Base(), name, s.CurrentPage == state.PageOrders))
		}
		dashboards = append(dashboards, line)
	}

	menus := make([]string, 0, len(d.Menus))
	for _, m := range d.Menus {
		menus = append(menus, "▸ "+m.Title)
	}

	sections := []string{
		t.Title().Render("◉ admindash"),
		"",
		group("Favorites", d.Favorites),
		"",
		group("Recently", d.Recent),
		"",
		strings.Join(dashboards, "\n"),
		"",
		group("Pages", menus),
	}

	return t.Panel().
		Width(props.LeftWidth).
		MaxWidth(props.LeftWidth).
		Height(max(props.Height, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func tabLine(base lipgloss.Style, name string, active bool) string {
	if active {
		return base.Bold(true).Render("▌ " + name)
	}
	return "  " + name
}
