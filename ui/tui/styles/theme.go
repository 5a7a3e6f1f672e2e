package styles

import (
	"github.com/charmbracelet/lipgloss"

	"admindash/internal/table"
)

// Theme is one colour palette. Views derive every style from the active
// theme so a dark mode flip re-renders the whole screen.
type Theme struct {
	Dark       bool
	Background lipgloss.Color
	Surface    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Up         lipgloss.Color
	Down       lipgloss.Color
}

var (
	Light = Theme{
		Dark:       false,
		Background: lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#F4F4F5"),
		Foreground: lipgloss.Color("#18181B"),
		Muted:      lipgloss.Color("#71717A"),
		Border:     lipgloss.Color("#D4D4D8"),
		Accent:     lipgloss.Color("#95A4FD"),
		Up:         lipgloss.Color("#16A34A"),
		Down:       lipgloss.Color("#DC2626"),
	}

	Dark = Theme{
		Dark:       true,
		Background: lipgloss.Color("#18181B"),
		Surface:    lipgloss.Color("#27272A"),
		Foreground: lipgloss.Color("#F4F4F5"),
		Muted:      lipgloss.Color("#A1A1AA"),
		Border:     lipgloss.Color("#52525B"),
		Accent:     lipgloss.Color("#B1E3FE"),
		Up:         lipgloss.Color("#4ADE80"),
		Down:       lipgloss.Color("#F87171"),
	}

	// Series colours for projections vs actuals
	ActualColor     = lipgloss.Color("#A8C5DA")
	ProjectionColor = lipgloss.Color("#CFDFEB")
	RevenueColor    = lipgloss.Color("#95A4FD")
)

// ForMode picks the palette for the dark_mode flag.
func ForMode(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// CategoryColor maps a status category onto its text colour. Unknown has
// no colour of its own and renders in the theme foreground.
func CategoryColor(c table.Category) (lipgloss.Color, bool) {
	switch c {
	case table.InProgress:
		return lipgloss.Color("#3B82F6"), true
	case table.Complete:
		return lipgloss.Color("#22C55E"), true
	case table.Pending:
		return lipgloss.Color("#B1E3FE"), true
	case table.Approved:
		return lipgloss.Color("#FFE898"), true
	case table.Rejected:
		return lipgloss.Color("#71717A"), true
	}
	return "", false
}

func (t Theme) Base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Foreground)
}

func (t Theme) Subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Foreground)
}

func (t Theme) Header() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Background).
		Background(t.Foreground).
		Padding(0, 2)
}

func (t Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Foreground).
		Padding(0, 1).
		Margin(0, 1, 1, 0)
}

func (t Theme) Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(t.Border).
		Foreground(t.Foreground).
		Padding(0, 1)
}

// Status renders an order status in its category colour.
func (t Theme) Status(c table.Category) lipgloss.Style {
	if col, ok := CategoryColor(c); ok {
		return lipgloss.NewStyle().Foreground(col)
	}
	return t.Base()
}

// Trend colours a KPI change by direction.
func (t Theme) Trend(up bool) lipgloss.Style {
	if up {
		return lipgloss.NewStyle().Foreground(t.Up)
	}
	return lipgloss.NewStyle().Foreground(t.Down)
}
