package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"admindash/internal/engine"
	"admindash/internal/output"
	"admindash/ui/tui/styles"
)

// Zone IDs for mouse hit-testing
const (
	ZoneToggleLeft  = "toggle_left"
	ZoneToggleRight = "toggle_right"
	ZoneToggleDark  = "toggle_dark"
	ZoneNavOrders   = "nav_orders"
	ZonePagePrev    = "page_prev"
	ZonePageNext    = "page_next"
)

// ZoneTab names the header tab for a page.
func ZoneTab(name string) string {
	return "tab_" + strings.ToLower(name)
}

// ZoneSidebarLink names the sidebar entry that opens a page.
func ZoneSidebarLink(name string) string {
	return "side_" + strings.ToLower(name)
}

// ZonePage names the pager link for a zero-based page index.
func ZonePage(index int) string {
	return fmt.Sprintf("page_%d", index)
}

// RenderSection lists a section's items as label/value rows.
func RenderSection(t styles.Theme, sec *output.Section, format string) string {
	if sec == nil {
		return ""
	}
	rows := make([]string, 0, len(sec.Items)+1)
	rows = append(rows, t.Title().Render(sec.Title))
	for _, item := range sec.Items {
		rows = append(rows, fmt.Sprintf("%-15s %s", item.Label, t.Base().Render(fmt.Sprintf(format, item.Value))))
	}
	return strings.Join(rows, "\n")
}

// RenderMeter draws a proportional bar, as used for revenue by location.
func RenderMeter(t styles.Theme, value, total float64, width int) string {
	if width < 1 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = int(float64(width) * value / total)
	}
	filled = min(max(filled, 0), width)
	return lipgloss.NewStyle().Foreground(styles.RevenueColor).Render(strings.Repeat("█", filled)) +
		t.Subtle().Render(strings.Repeat("░", width-filled))
}

// ColorForTrend colours a KPI change by its trend.
func ColorForTrend(t styles.Theme, r engine.KPIResult) lipgloss.Style {
	switch r.Trend {
	case engine.TrendUp:
		return t.Trend(true)
	case engine.TrendDown:
		return t.Trend(false)
	}
	return t.Subtle()
}

// TrendArrow is the glyph shown next to a KPI change.
func TrendArrow(trend string) string {
	switch trend {
	case engine.TrendUp:
		return "↗"
	case engine.TrendDown:
		return "↘"
	}
	return "→"
}
