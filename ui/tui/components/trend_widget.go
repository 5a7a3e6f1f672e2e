package components

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"admindash/internal/orders"
	"admindash/ui/tui/styles"
)

type TrendWidget struct {
	Chart  linechart.Model
	Points []orders.SeriesPoint
	Width  int
	Height int
	theme  styles.Theme
}

func NewTrendWidget(points []orders.SeriesPoint, width, height int) *TrendWidget {
	maxY := 0.0
	for _, pt := range points {
		maxY = max(maxY, pt.Actual, pt.Projection)
	}
	if maxY <= 0 {
		maxY = 1
	}
	maxX := float64(max(len(points)-1, 1))

	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, maxX, 0, maxY*1.2)
	return &TrendWidget{
		Chart:  lc,
		Points: points,
		Width:  width,
		Height: height,
		theme:  styles.Light,
	}
}

func (c *TrendWidget) Init() tea.Cmd {
	return nil
}

func (c *TrendWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *TrendWidget) SetTheme(t styles.Theme) {
	c.theme = t
}

func (c *TrendWidget) Resize(w, h int) {
	if w < 8 || h < 4 {
		return
	}
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *TrendWidget) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.Points)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.Points[i].Actual},
			canvas.Float64Point{X: float64(i + 1), Y: c.Points[i+1].Actual},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	caption := "no data"
	if n := len(c.Points); n > 0 {
		caption = fmt.Sprintf("monthly actuals, %s to %s", c.Points[0].Month, c.Points[n-1].Month)
	}

	return c.theme.Card().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			c.theme.Title().Render("Revenue Trend"),
			c.Chart.View(),
			c.theme.Subtle().Render(caption),
		),
	)
}
