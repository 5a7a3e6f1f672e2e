package tui

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"admindash/internal/orders"
	"admindash/internal/output"
	"admindash/internal/table"
	"admindash/internal/uistate"
	"admindash/ui/tui/components"
	"admindash/ui/tui/state"
	"admindash/ui/tui/styles"
	"admindash/ui/tui/views"
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	store       *uistate.Store
	orders      *table.View[orders.Order]
	state       state.AppState
	theme       styles.Theme
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	projections *components.ProjectionsWidget
	trend       *components.TrendWidget
	logger      *slog.Logger
	unsubscribe func()

	// Panel widths are driven by springs towards 0 or the open width
	spring     harmonica.Spring
	leftWidth  float64
	leftVel    float64
	rightWidth float64
	rightVel   float64
	animating  bool

	quitting bool
	width    int
	height   int
}

// Messages
type AnimateMsg time.Time

// InitialModel wires a model to the flag store and the order table. The
// model subscribes to the store so every flag change, from a key press, a
// click or anything else holding the store, re-themes the screen.
func InitialModel(store *uistate.Store, view *table.View[orders.Order], data orders.Dashboard, logger *slog.Logger) *MainModel {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.RevenueColor)

	dash := output.BuildDashboard(data)

	// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	m := &MainModel{
		store:       store,
		orders:      view,
		keys:        keys,
		help:        help.New(),
		spinner:     s,
		projections: components.NewProjectionsWidget(data.Projections, 36, 8),
		trend:       components.NewTrendWidget(data.Projections, 36, 8),
		logger:      logger,
		spring:      spring,
		state: state.AppState{
			Data:        data,
			Dashboard:   dash,
			CurrentPage: state.PageDashboard,
		},
	}

	m.applyFlags(store.Snapshot())
	m.leftWidth, m.rightWidth = m.panelTargets()
	m.refreshOrders()
	m.unsubscribe = store.Subscribe(m.applyFlags)
	return m
}

func (m *MainModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

// applyFlags is the store subscriber.
func (m *MainModel) applyFlags(snap uistate.Snapshot) {
	m.state.Flags = snap
	m.theme = styles.ForMode(snap.DarkMode())
	m.projections.SetTheme(m.theme)
	m.trend.SetTheme(m.theme)
	m.help.Styles.ShortKey = m.theme.Base().Bold(true)
	m.help.Styles.ShortDesc = m.theme.Subtle()
	m.help.Styles.ShortSeparator = m.theme.Subtle()
	m.help.Styles.FullKey = m.theme.Base().Bold(true)
	m.help.Styles.FullDesc = m.theme.Subtle()
	m.help.Styles.FullSeparator = m.theme.Subtle()
}

func (m *MainModel) panelTargets() (left, right float64) {
	if m.state.Flags.LeftPanelOpen() {
		left = views.LeftPanelWidth
	}
	if m.state.Flags.RightPanelOpen() {
		right = views.RightPanelWidth
	}
	return left, right
}

func (m *MainModel) refreshOrders() {
	m.state.Orders = output.BuildOrdersPage(m.orders)
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ToggleLeft):
		return m, m.toggle(uistate.LeftPanelOpen)

	case key.Matches(msg, m.keys.ToggleRight):
		return m, m.toggle(uistate.RightPanelOpen)

	case key.Matches(msg, m.keys.ToggleDark):
		return m, m.toggle(uistate.DarkMode)

	case key.Matches(msg, m.keys.SwitchView):
		m.navigate(m.state.CurrentPage.Next())
		return m, nil
	}

	if m.state.CurrentPage != state.PageOrders {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevPage):
		m.orders.PrevPage()
	case key.Matches(msg, m.keys.NextPage):
		m.orders.NextPage()
	case key.Matches(msg, m.keys.FirstPage):
		m.orders.FirstPage()
	case key.Matches(msg, m.keys.LastPage):
		m.orders.LastPage()
	case key.Matches(msg, m.keys.JumpPage):
		m.orders.GoToPage(int(msg.Runes[0] - '1'))
	default:
		return m, nil
	}
	m.refreshOrders()
	m.logger.Debug("orders page", "page", m.orders.CurrentPage())
	return m, nil
}

// toggle flips a flag in the store; the subscriber does the rest. It
// returns the animation command when the panels have somewhere to go.
func (m *MainModel) toggle(f uistate.Flag) tea.Cmd {
	if err := m.store.Toggle(f); err != nil {
		m.logger.Error("toggle flag", "flag", f, "err", err)
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	return animateCmd()
}

func (m *MainModel) navigate(p state.Page) {
	if m.state.CurrentPage == p {
		return
	}
	m.state.CurrentPage = p
	m.logger.Debug("navigate", "page", p.String())
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	leftTarget, rightTarget := m.panelTargets()
	m.leftWidth, m.leftVel = m.spring.Update(m.leftWidth, m.leftVel, leftTarget)
	m.rightWidth, m.rightVel = m.spring.Update(m.rightWidth, m.rightVel, rightTarget)

	if settled(m.leftWidth, m.leftVel, leftTarget) && settled(m.rightWidth, m.rightVel, rightTarget) {
		m.leftWidth, m.leftVel = leftTarget, 0
		m.rightWidth, m.rightVel = rightTarget, 0
		m.animating = false
		return m, nil
	}
	return m, animateCmd()
}

func settled(pos, vel, target float64) bool {
	return math.Abs(pos-target) < 0.5 && math.Abs(vel) < 0.5
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	mainW := msg.Width - views.LeftPanelWidth - views.RightPanelWidth
	chartW := mainW/2 - 6
	if chartW > 10 {
		m.projections.Resize(chartW, 8)
		m.trend.Resize(chartW, 8)
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch {
	case zone.Get(views.ZoneToggleLeft).InBounds(msg):
		return m, m.toggle(uistate.LeftPanelOpen)
	case zone.Get(views.ZoneToggleRight).InBounds(msg):
		return m, m.toggle(uistate.RightPanelOpen)
	case zone.Get(views.ZoneToggleDark).InBounds(msg):
		return m, m.toggle(uistate.DarkMode)
	case zone.Get(views.ZoneNavOrders).InBounds(msg):
		m.navigate(state.PageOrders)
		return m, nil
	}

	for _, p := range []state.Page{state.PageDashboard, state.PageOrders} {
		if zone.Get(views.ZoneTab(p.String())).InBounds(msg) || zone.Get(views.ZoneSidebarLink(p.String())).InBounds(msg) {
			m.navigate(p)
			return m, nil
		}
	}

	if m.state.CurrentPage != state.PageOrders {
		return m, nil
	}

	switch {
	case zone.Get(views.ZonePagePrev).InBounds(msg):
		m.orders.PrevPage()
	case zone.Get(views.ZonePageNext).InBounds(msg):
		m.orders.NextPage()
	default:
		clicked := false
		for _, link := range m.state.Orders.Links {
			if !link.Break && zone.Get(views.ZonePage(link.Page)).InBounds(msg) {
				m.orders.GoToPage(link.Page)
				clicked = true
				break
			}
		}
		if !clicked {
			return m, nil
		}
	}
	m.refreshOrders()
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	return views.RenderApp(m.state, views.ViewProps{
		Width:           m.width,
		Height:          m.height,
		Theme:           m.theme,
		LeftWidth:       int(math.Round(m.leftWidth)),
		RightWidth:      int(math.Round(m.rightWidth)),
		SpinnerView:     m.spinner.View(),
		ProjectionsView: m.projections.View(),
		TrendView:       m.trend.View(),
		HelpView:        m.help.View(m.keys),
	})
}

// Start runs the dashboard until the user quits.
func Start(store *uistate.Store, view *table.View[orders.Order], data orders.Dashboard, logger *slog.Logger) error {
	zone.NewGlobal()
	defer zone.Close()

	m := InitialModel(store, view, data, logger)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
