package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"admindash/ui/tui/state"
)

type OrdersView struct{}

func (v OrdersView) Render(s state.AppState, props ViewProps) string {
	if s.Err != nil {
		return fmt.Sprintf("Error: %v", s.Err)
	}
	t := props.Theme
	page := s.Orders

	header := t.Subtle().Render(fmt.Sprintf("%-9s %-16s %-20s %-22s %-14s %s",
		"Order ID", "User", "Project", "Address", "Date", "Status"))

	lines := []string{t.Title().Render("Order List"), header}
	if len(page.Rows) == 0 {
		lines = append(lines, t.Subtle().Render("No orders"))
	}
	for _, row := range page.Rows {
		o := row.Order
		status := t.Status(row.Category).Render("● " + o.Status)
		lines = append(lines, fmt.Sprintf("%-9s %-16s %-20s %-22s %-14s %s",
			o.ID, truncate(o.User, 16), truncate(o.Project, 20), truncate(o.Address, 22), o.Date, status))
	}

	footer := t.Subtle().Render(fmt.Sprintf("Page %d of %d • %d orders", page.Page+1, page.PageCount, page.Total))

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Card().Render(strings.Join(lines, "\n")),
		RenderPager(s, props),
		footer,
	)
}

// RenderPager draws the previous/next controls and the page links, each
// marked for mouse clicks.
func RenderPager(s state.AppState, props ViewProps) string {
	t := props.Theme
	page := s.Orders

	enabled := func(ok bool) lipgloss.Style {
		if ok {
			return t.Base()
		}
		return t.Subtle().Faint(true)
	}

	parts := []string{zone.Mark(ZonePagePrev, enabled(page.HasPrev).Render("‹ Prev"))}
	for _, link := range page.Links {
		switch {
		case link.Break:
			parts = append(parts, t.Subtle().Render(link.Label()))
		case link.Active:
			parts = append(parts, zone.Mark(ZonePage(link.Page),
				t.Base().Bold(true).Reverse(true).Padding(0, 1).Render(link.Label())))
		default:
			parts = append(parts, zone.Mark(ZonePage(link.Page),
				t.Base().Padding(0, 1).Render(link.Label())))
		}
	}
	parts = append(parts, zone.Mark(ZonePageNext, enabled(page.HasNext).Render("Next ›")))

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, " "))
}
