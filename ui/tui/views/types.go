package views

import (
	"admindash/ui/tui/state"
	"admindash/ui/tui/styles"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int
	Theme         styles.Theme

	// Animated panel widths; zero hides the panel
	LeftWidth  int
	RightWidth int

	// Component States
	SpinnerView     string
	ProjectionsView string
	TrendView       string
	HelpView        string
}

// View defines the contract for any renderable region of the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
