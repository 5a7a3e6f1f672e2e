package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"admindash/internal/output"
	"admindash/ui/tui/state"
)

type DashboardView struct{}

func (v DashboardView) Render(s state.AppState, props ViewProps) string {
	if s.Err != nil {
		return fmt.Sprintf("Error: %v", s.Err)
	}
	t := props.Theme
	dash := s.Dashboard

	// KPI cards; a card with a target page is clickable
	cards := make([]string, 0, len(dash.Cards))
	for _, c := range dash.Cards {
		change := ColorForTrend(t, c).Render(fmt.Sprintf("%s %s", c.Change, TrendArrow(c.Trend)))
		card := t.Card().Width(20).Render(lipgloss.JoinVertical(lipgloss.Left,
			t.Subtle().Render(c.Name),
			t.Title().Render(c.Value)+"  "+change,
		))
		if c.Page == "orders" {
			card = zone.Mark(ZoneNavOrders, card)
		}
		cards = append(cards, card)
	}
	kpiRow := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	chartRow := lipgloss.JoinHorizontal(lipgloss.Top, props.ProjectionsView, props.TrendView)

	var revenue, channels string
	if sec := dash.SectionByID(output.SectionRevenue); sec != nil {
		revenue = t.Card().Render(RenderSection(t, sec, "$%.0f"))
	}
	if sec := dash.SectionByID(output.SectionChannels); sec != nil {
		channels = t.Card().Render(RenderSection(t, sec, "$%.2f"))
	}
	locations := renderLocations(props, dash.SectionByID(output.SectionLocations))

	figuresRow := lipgloss.JoinHorizontal(lipgloss.Top, revenue, locations, channels)

	return lipgloss.JoinVertical(lipgloss.Left,
		kpiRow,
		chartRow,
		figuresRow,
		renderProducts(props, dash),
	)
}

func renderLocations(props ViewProps, sec *output.Section) string {
	if sec == nil {
		return ""
	}
	t := props.Theme
	// Values are thousands; bars are scaled against 100K as in a percentage meter
	lines := []string{t.Title().Render(sec.Title)}
	for _, it := range sec.Items {
		lines = append(lines,
			fmt.Sprintf("%-14s %3.0fK", it.Label, it.Value),
			RenderMeter(t, it.Value, 100, 18),
		)
	}
	return t.Card().Render(strings.Join(lines, "\n"))
}

// productRows caps the products table so the page fits a terminal.
const productRows = 6

func renderProducts(props ViewProps, dash output.DashboardView) string {
	t := props.Theme
	header := t.Subtle().Render(fmt.Sprintf("%-26s %9s %9s %10s", "Name", "Price", "Quantity", "Amount"))
	lines := []string{t.Title().Render("Top Selling Products"), header}
	for i, p := range dash.Products {
		if i >= productRows {
			lines = append(lines, t.Subtle().Render(fmt.Sprintf("… %d more", len(dash.Products)-productRows)))
			break
		}
		lines = append(lines, fmt.Sprintf("%-26s %9s %9d %10s", truncate(p.Name, 26), p.Price, p.Quantity, p.Amount))
	}
	return t.Card().Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
