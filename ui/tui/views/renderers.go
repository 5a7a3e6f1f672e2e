package views

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"admindash/ui/tui/state"
)

// RenderHeader draws the top bar: panel toggles, page tabs and the theme
// switch.
func RenderHeader(s state.AppState, props ViewProps) string {
	t := props.Theme

	tab := func(p state.Page) string {
		st := t.Subtle().Padding(0, 1)
		if p == s.CurrentPage {
			st = t.Base().Bold(true).Underline(true).Padding(0, 1)
		}
		return zone.Mark(ZoneTab(p.String()), st.Render(p.String()))
	}

	themeIcon := "☾ dark"
	if s.Flags.DarkMode() {
		themeIcon = "☼ light"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		zone.Mark(ZoneToggleLeft, t.Base().Padding(0, 1).Render("◧")),
		props.SpinnerView,
		t.Subtle().Render(" Dashboards / "),
		tab(state.PageDashboard),
		tab(state.PageOrders),
		lipgloss.NewStyle().Width(max(props.Width-70, 2)).Render(""),
		zone.Mark(ZoneToggleDark, t.Base().Padding(0, 1).Render(themeIcon)),
		zone.Mark(ZoneToggleRight, t.Base().Padding(0, 1).Render("◨")),
	)
}

// RenderApp lays out header, side panels, the current page and the help
// line, then scans the result for zones.
func RenderApp(s state.AppState, props ViewProps) string {
	header := RenderHeader(s, props)
	footer := props.HelpView

	bodyHeight := props.Height - lipgloss.Height(header) - lipgloss.Height(footer)
	panelProps := props
	panelProps.Height = max(bodyHeight, 1)

	var page View = DashboardView{}
	if s.CurrentPage == state.PageOrders {
		page = OrdersView{}
	}
	mainWidth := max(props.Width-props.LeftWidth-props.RightWidth, 1)
	main := lipgloss.NewStyle().
		Width(mainWidth).
		MaxWidth(mainWidth).
		MaxHeight(panelProps.Height).
		Padding(0, 1).
		Render(page.Render(s, props))

	cols := []string{}
	if left := (SidebarView{}).Render(s, panelProps); left != "" {
		cols = append(cols, left)
	}
	cols = append(cols, main)
	if right := (RightBarView{}).Render(s, panelProps); right != "" {
		cols = append(cols, right)
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		footer,
	)

	t := props.Theme
	return zone.Scan(lipgloss.NewStyle().
		Foreground(t.Foreground).
		Background(t.Background).
		Render(screen))
}
