package components

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"admindash/internal/orders"
	"admindash/ui/tui/styles"
)

// ProjectionsWidget draws actuals stacked under the remaining projection
// for each month.
type ProjectionsWidget struct {
	Chart  barchart.Model
	Points []orders.SeriesPoint
	Width  int
	Height int
	theme  styles.Theme
}

func NewProjectionsWidget(points []orders.SeriesPoint, width, height int) *ProjectionsWidget {
	w := &ProjectionsWidget{
		Points: points,
		Width:  width,
		Height: height,
		theme:  styles.Light,
	}
	w.rebuild()
	return w
}

func (p *ProjectionsWidget) Init() tea.Cmd {
	return nil
}

func (p *ProjectionsWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return p, nil
}

func (p *ProjectionsWidget) SetTheme(t styles.Theme) {
	p.theme = t
	p.rebuild()
}

// Resize recreates the chart; barchart has no in-place resize that keeps
// pushed data.
func (p *ProjectionsWidget) Resize(w, h int) {
	if w < 8 || h < 4 {
		return
	}
	p.Width = w
	p.Height = h
	p.rebuild()
}

func (p *ProjectionsWidget) rebuild() {
	actual := lipgloss.NewStyle().Foreground(styles.ActualColor)
	projected := lipgloss.NewStyle().Foreground(styles.ProjectionColor)

	data := make([]barchart.BarData, 0, len(p.Points))
	for _, pt := range p.Points {
		gap := pt.Projection - pt.Actual
		if gap < 0 {
			gap = 0
		}
		data = append(data, barchart.BarData{
			Label: pt.Month,
			Values: []barchart.BarValue{
				{Name: "Actual", Value: pt.Actual, Style: actual},
				{Name: "Projection", Value: gap, Style: projected},
			},
		})
	}

	p.Chart = barchart.New(p.Width, p.Height)
	p.Chart.PushAll(data)
	p.Chart.Draw()
}

func (p *ProjectionsWidget) View() string {
	legend := lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().Foreground(styles.ActualColor).Render("■ actual  "),
		lipgloss.NewStyle().Foreground(styles.ProjectionColor).Render("■ projection"),
	)
	return p.theme.Card().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			p.theme.Title().Render("Projections vs Actuals"),
			p.Chart.View(),
			legend,
		),
	)
}
