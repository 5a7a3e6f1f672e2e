package console

import (
	"fmt"
	"io"
	"strings"

	"admindash/internal/engine"
	"admindash/internal/output"
	"admindash/internal/table"
)

const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorGrey   = "\033[90m"

	// Bright variants used on dark terminals
	colorBrightGreen  = "\033[92m"
	colorBrightYellow = "\033[93m"
	colorBrightBlue   = "\033[94m"
	colorBrightCyan   = "\033[96m"
)

// PrintOrders renders one page of the order list with status colours and a
// pager line.
func PrintOrders(w io.Writer, page output.OrdersPage, dark bool) {
	accent := colorCyan
	if dark {
		accent = colorBrightCyan
	}

	fmt.Fprintf(w, "%s■ ORDER LIST%s  %spage %d/%d · %d orders%s\n",
		accent, colorReset, colorGrey, page.Page+1, page.PageCount, page.Total, colorReset)
	fmt.Fprintf(w, "%s%-9s %-16s %-20s %-22s %-14s %s%s\n",
		colorBold, "ID", "User", "Project", "Address", "Date", "Status", colorReset)

	if len(page.Rows) == 0 {
		fmt.Fprintf(w, "  %sno orders%s\n", colorGrey, colorReset)
	}
	for _, row := range page.Rows {
		o := row.Order
		fmt.Fprintf(w, "%-9s %-16s %-20s %-22s %-14s %s● %s%s\n",
			o.ID, clip(o.User, 16), clip(o.Project, 20), clip(o.Address, 22), o.Date,
			colorForCategory(row.Category, dark), o.Status, colorReset)
	}

	fmt.Fprintf(w, "%s\n", pagerLine(page, accent))
}

// pagerLine formats the page links, e.g. "‹ 1 [2] 3 4 ›".
func pagerLine(page output.OrdersPage, accent string) string {
	parts := make([]string, 0, len(page.Links)+2)
	if page.HasPrev {
		parts = append(parts, "‹")
	}
	for _, l := range page.Links {
		if l.Active {
			parts = append(parts, accent+"["+l.Label()+"]"+colorReset)
			continue
		}
		parts = append(parts, l.Label())
	}
	if page.HasNext {
		parts = append(parts, "›")
	}
	return strings.Join(parts, " ")
}

// PrintDashboard renders the KPI cards and the dashboard sections in a
// compact format.
func PrintDashboard(w io.Writer, view output.DashboardView) {
	fmt.Fprintf(w, "%s■ %s%s\n", colorCyan, "DASHBOARD", colorReset)

	for _, c := range view.Cards {
		fmt.Fprintf(w, "  %-10s %10s  %s%s %s%s\n",
			c.Name, c.Value, colorForTrend(c.Trend), c.Change, arrow(c.Trend), colorReset)
	}

	for _, sec := range view.Sections {
		// Section Header
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			label := clip(it.Label, 20)

			// Dots leader
			dots := strings.Repeat("·", max(22-len([]rune(label)), 1))

			// Format: "  Label............... Value"
			fmt.Fprintf(w, "  %s%s %12s\n", label, colorCyan+dots+colorReset, formatValue(it.Value))
		}
	}

	// Single-line Summary
	fmt.Fprintf(w, "%s─ Summary%s: %d top products\n\n", colorCyan, colorReset, len(view.Products))
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func colorForCategory(c table.Category, dark bool) string {
	switch c {
	case table.InProgress:
		if dark {
			return colorBrightBlue
		}
		return colorBlue
	case table.Complete:
		if dark {
			return colorBrightGreen
		}
		return colorGreen
	case table.Pending:
		if dark {
			return colorBrightCyan
		}
		return colorCyan
	case table.Approved:
		if dark {
			return colorBrightYellow
		}
		return colorYellow
	case table.Rejected:
		return colorGrey
	default:
		return ""
	}
}

func colorForTrend(trend string) string {
	switch trend {
	case engine.TrendUp:
		return colorGreen
	case engine.TrendDown:
		return colorRed
	default:
		return colorGrey
	}
}

func arrow(trend string) string {
	switch trend {
	case engine.TrendUp:
		return "↗"
	case engine.TrendDown:
		return "↘"
	default:
		return "→"
	}
}
