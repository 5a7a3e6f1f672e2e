package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"admindash/internal/orders"
	"admindash/internal/table"
	"admindash/internal/uistate"
	"admindash/ui/tui/state"
	"admindash/ui/tui/styles"
	"admindash/ui/tui/views"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestModel(t *testing.T) (*MainModel, *uistate.Store) {
	t.Helper()
	store := uistate.New()
	view, err := table.New(orders.Seed(), 5)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return InitialModel(store, view, orders.SeedDashboard(), nil), store
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, m *MainModel, msg tea.Msg) (*MainModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(*MainModel), cmd
}

func TestInitialModel(t *testing.T) {
	m, _ := newTestModel(t)

	if m.state.CurrentPage != state.PageDashboard {
		t.Errorf("Expected initial page Dashboard, got %v", m.state.CurrentPage)
	}
	if m.theme.Dark {
		t.Error("Expected light theme by default")
	}
	if m.leftWidth != views.LeftPanelWidth || m.rightWidth != views.RightPanelWidth {
		t.Errorf("Expected panels open, got left=%v right=%v", m.leftWidth, m.rightWidth)
	}
	if m.state.Orders.PageCount != 4 {
		t.Errorf("Expected 4 order pages, got %d", m.state.Orders.PageCount)
	}
}

func TestPanelToggleKeys(t *testing.T) {
	m, store := newTestModel(t)

	m, cmd := send(t, m, runeKey('['))
	if store.Get(uistate.LeftPanelOpen) {
		t.Error("Expected left panel closed after '['")
	}
	if cmd == nil {
		t.Error("Expected animation command after toggle")
	}

	m, _ = send(t, m, runeKey(']'))
	if store.Get(uistate.RightPanelOpen) {
		t.Error("Expected right panel closed after ']'")
	}
	if m.state.Flags.RightPanelOpen() != store.Get(uistate.RightPanelOpen) {
		t.Error("Model flags out of sync with store")
	}

	m, _ = send(t, m, runeKey('['))
	if !store.Get(uistate.LeftPanelOpen) {
		t.Error("Expected left panel open after second '['")
	}
}

func TestDarkModeFollowsStore(t *testing.T) {
	m, store := newTestModel(t)

	m, _ = send(t, m, runeKey('t'))
	if !m.theme.Dark {
		t.Error("Expected dark theme after 't'")
	}
	if m.theme != styles.Dark {
		t.Error("Expected the dark palette")
	}

	// Changes made elsewhere reach the model through its subscription
	if err := store.Set(uistate.DarkMode, false); err != nil {
		t.Fatal(err)
	}
	if m.theme.Dark {
		t.Error("Expected light theme after external Set")
	}
}

func TestPanelAnimation(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, runeKey('['))

	frame := AnimateMsg(time.Now())

	m, _ = send(t, m, frame)
	if m.leftWidth >= views.LeftPanelWidth {
		t.Errorf("Expected left panel to start closing, got %f", m.leftWidth)
	}
	if m.leftWidth <= 0 {
		t.Errorf("Expected left panel not to close immediately, got %f", m.leftWidth)
	}

	prev := m.leftWidth
	m, _ = send(t, m, frame)
	if m.leftWidth >= prev {
		t.Errorf("Expected left panel to keep closing, got %f (prev %f)", m.leftWidth, prev)
	}

	// Run until the spring settles
	var cmd tea.Cmd
	for i := 0; i < 600 && m.animating; i++ {
		m, cmd = send(t, m, frame)
	}
	if m.animating || cmd != nil {
		t.Fatal("Expected animation to settle")
	}
	if m.leftWidth != 0 {
		t.Errorf("Expected left panel width 0, got %f", m.leftWidth)
	}
	if m.rightWidth != views.RightPanelWidth {
		t.Errorf("Expected right panel untouched, got %f", m.rightWidth)
	}
}

func TestPageTransition(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state.CurrentPage != state.PageOrders {
		t.Errorf("Expected Orders page after tab, got %v", m.state.CurrentPage)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state.CurrentPage != state.PageDashboard {
		t.Errorf("Expected Dashboard page after second tab, got %v", m.state.CurrentPage)
	}
}

func TestOrdersPagination(t *testing.T) {
	m, _ := newTestModel(t)

	// Paging keys are ignored on the dashboard
	m, _ = send(t, m, runeKey('l'))
	if m.orders.CurrentPage() != 0 {
		t.Errorf("Expected page 0 on dashboard, got %d", m.orders.CurrentPage())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{runeKey('h'), 0},
		{runeKey('l'), 1},
		{tea.KeyMsg{Type: tea.KeyRight}, 2},
		{runeKey('G'), 3},
		{runeKey('l'), 3},
		{runeKey('g'), 0},
		{runeKey('3'), 2},
		{runeKey('9'), 3},
		{tea.KeyMsg{Type: tea.KeyLeft}, 2},
	}
	for i, s := range steps {
		m, _ = send(t, m, s.msg)
		if got := m.orders.CurrentPage(); got != s.want {
			t.Errorf("step %d (%s): expected page %d, got %d", i, s.msg.String(), s.want, got)
		}
		if m.state.Orders.Page != s.want {
			t.Errorf("step %d: rendered page %d out of sync", i, m.state.Orders.Page)
		}
	}

	if first := m.state.Orders.Rows[0].Order.ID; first != "#CM9811" {
		t.Errorf("Expected page 3 to start with #CM9811, got %s", first)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("Expected full help after '?'")
	}
	m, _ = send(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("Expected short help after second '?'")
	}
}

func TestQuitUnsubscribes(t *testing.T) {
	m, store := newTestModel(t)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Fatal("Expected quit")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Unexpected quit view %q", m.View())
	}

	if err := store.Toggle(uistate.DarkMode); err != nil {
		t.Fatal(err)
	}
	if m.theme.Dark {
		t.Error("Expected no updates after quitting")
	}
}

func TestViewRendersCurrentPage(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})

	out := m.View()
	if !strings.Contains(out, "Customers") {
		t.Error("Expected KPI cards on the dashboard")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	out = m.View()
	if !strings.Contains(out, "Order List") {
		t.Error("Expected order list on the orders page")
	}
	if !strings.Contains(out, "#CM9801") {
		t.Error("Expected first order on page 1")
	}
}
