package output

import (
	"admindash/internal/engine"
	"admindash/internal/orders"
	"admindash/internal/table"
)

// Section constants to avoid hardcoded strings
const (
	SectionProjections = "projections"
	SectionRevenue     = "revenue"
	SectionLocations   = "locations"
	SectionChannels    = "channels"
)

// OrderRow is an order paired with its classification.
type OrderRow struct {
	Order    orders.Order
	Category table.Category
}

// OrdersPage is everything a renderer needs to draw one page of the order
// list.
type OrdersPage struct {
	Rows      []OrderRow
	Page      int // zero-based
	PageCount int
	Total     int
	HasPrev   bool
	HasNext   bool
	Links     []table.PageLink
}

// BuildOrdersPage converts the view's current window into a renderable page.
func BuildOrdersPage(v *table.View[orders.Order]) OrdersPage {
	window := v.CurrentWindow()
	rows := make([]OrderRow, 0, len(window))
	for _, o := range window {
		rows = append(rows, OrderRow{Order: o, Category: v.Classify(o)})
	}
	return OrdersPage{
		Rows:      rows,
		Page:      v.CurrentPage(),
		PageCount: v.PageCount(),
		Total:     v.Len(),
		HasPrev:   v.HasPrev(),
		HasNext:   v.HasNext(),
		Links:     v.PageLinks(table.DefaultLinkOptions()),
	}
}

// Item is one labelled figure inside a section.
type Item struct {
	Label string
	Value float64
	Note  string
}

type Section struct {
	ID    string
	Title string
	Items []Item
}

// DashboardView is the renderer-neutral model of the dashboard page.
type DashboardView struct {
	Cards       []engine.KPIResult
	Projections []orders.SeriesPoint
	Sections    []Section
	Products    []orders.Product
}

// BuildDashboard evaluates the KPI cards and groups the remaining figures
// into sections.
func BuildDashboard(d orders.Dashboard) DashboardView {
	toItems := func(vals []orders.LabeledValue) []Item {
		items := make([]Item, 0, len(vals))
		for _, v := range vals {
			items = append(items, Item{Label: v.Label, Value: v.Value})
		}
		return items
	}

	projections := make([]Item, 0, len(d.Projections))
	for _, p := range d.Projections {
		projections = append(projections, Item{Label: p.Month, Value: p.Actual, Note: "actual"})
	}

	return DashboardView{
		Cards:       engine.Evaluate(d.KPIs),
		Projections: d.Projections,
		Sections: []Section{
			{ID: SectionProjections, Title: "Projections vs Actuals", Items: projections},
			{ID: SectionRevenue, Title: "Revenue", Items: toItems(d.WeeklyRevenue)},
			{ID: SectionLocations, Title: "Revenue by Location", Items: toItems(d.ByLocation)},
			{ID: SectionChannels, Title: "Total Sales", Items: toItems(d.SalesChannels)},
		},
		Products: d.TopProducts,
	}
}

func (v DashboardView) SectionByID(id string) *Section {
	for i := range v.Sections {
		if v.Sections[i].ID == id {
			return &v.Sections[i]
		}
	}
	return nil
}

// Total sums the section's values.
func (s Section) Total() float64 {
	var sum float64
	for _, it := range s.Items {
		sum += it.Value
	}
	return sum
}
