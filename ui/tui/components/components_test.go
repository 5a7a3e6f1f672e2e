package components

import (
	"strings"
	"testing"

	"admindash/internal/orders"
	"admindash/ui/tui/styles"
)

func TestProjectionsWidget(t *testing.T) {
	w := NewProjectionsWidget(orders.SeedDashboard().Projections, 30, 8)

	out := w.View()
	if !strings.Contains(out, "Projections vs Actuals") {
		t.Error("Expected chart title")
	}

	w.Resize(40, 10)
	if w.Width != 40 || w.Height != 10 {
		t.Errorf("Expected 40x10 after resize, got %dx%d", w.Width, w.Height)
	}

	// Too small to draw; keep the previous size
	w.Resize(2, 2)
	if w.Width != 40 {
		t.Errorf("Expected tiny resize to be ignored, got width %d", w.Width)
	}

	w.SetTheme(styles.Dark)
	if !w.theme.Dark {
		t.Error("Expected dark theme")
	}
}

func TestTrendWidget(t *testing.T) {
	w := NewTrendWidget(orders.SeedDashboard().Projections, 30, 8)

	out := w.View()
	if !strings.Contains(out, "Revenue Trend") {
		t.Error("Expected chart title")
	}
	if !strings.Contains(out, "Jan to Jun") {
		t.Error("Expected caption with the month range")
	}
}

func TestTrendWidget_Empty(t *testing.T) {
	w := NewTrendWidget(nil, 20, 6)
	if !strings.Contains(w.View(), "no data") {
		t.Error("Expected empty caption")
	}
}
