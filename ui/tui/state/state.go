package state

import (
	"admindash/internal/orders"
	"admindash/internal/output"
	"admindash/internal/uistate"
)

type Page int

const (
	PageDashboard Page = iota
	PageOrders
)

func (p Page) String() string {
	switch p {
	case PageOrders:
		return "Orders"
	default:
		return "Dashboard"
	}
}

// Next cycles to the following page.
func (p Page) Next() Page {
	if p == PageOrders {
		return PageDashboard
	}
	return PageOrders
}

// AppState holds everything the views render from
type AppState struct {
	Flags       uistate.Snapshot
	Data        orders.Dashboard
	Dashboard   output.DashboardView
	Orders      output.OrdersPage
	CurrentPage Page
	Err         error
}
