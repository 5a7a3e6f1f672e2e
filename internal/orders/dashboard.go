package orders

// KPI is one of the headline cards on the dashboard.
type KPI struct {
	Name   string
	Value  string
	Change string // signed percentage, e.g. "+11.01%"
	Page   string // page the card links to, empty for none
}

// SeriesPoint is one month of projections vs. actuals.
type SeriesPoint struct {
	Month      string
	Actual     float64
	Projection float64
}

// LabeledValue is a named figure (revenue by week, by location, by channel).
type LabeledValue struct {
	Label string
	Value float64
}

// Product is a row of the top-selling products table.
type Product struct {
	Name     string
	Price    string
	Quantity int
	Amount   string
}

// FeedItem is an entry in the right panel's notification or activity feed.
type FeedItem struct {
	Kind    string // bug, user, subscribe, activity
	Message string
	Time    string
}

// MenuGroup is a collapsible section of the left panel.
type MenuGroup struct {
	Title string
	Items []string
}

// Dashboard bundles every mock data set the dashboard page draws from.
type Dashboard struct {
	KPIs          []KPI
	Projections   []SeriesPoint
	WeeklyRevenue []LabeledValue
	ByLocation    []LabeledValue
	SalesChannels []LabeledValue
	TopProducts   []Product
	Notifications []FeedItem
	Activities    []FeedItem
	Contacts      []string
	Favorites     []string
	Recent        []string
	Dashboards    []string
	Menus         []MenuGroup
}

// SeedDashboard returns the mock dashboard data.
func SeedDashboard() Dashboard {
	return Dashboard{
		KPIs: []KPI{
			{Name: "Customers", Value: "3,781", Change: "+11.01%"},
			{Name: "Orders", Value: "1,219", Change: "-0.03%", Page: "orders"},
			{Name: "Revenue", Value: "$695", Change: "+15.03%"},
			{Name: "Growth", Value: "30.1%", Change: "+6.08%"},
		},
		Projections: []SeriesPoint{
			{Month: "Jan", Actual: 18, Projection: 22},
			{Month: "Feb", Actual: 20, Projection: 25},
			{Month: "Mar", Actual: 22, Projection: 23},
			{Month: "Apr", Actual: 24, Projection: 27},
			{Month: "May", Actual: 15, Projection: 20},
			{Month: "Jun", Actual: 19, Projection: 23},
		},
		WeeklyRevenue: []LabeledValue{
			{Label: "Current Week", Value: 58211},
			{Label: "Previous Week", Value: 68768},
		},
		ByLocation: []LabeledValue{
			{Label: "New York", Value: 72},
			{Label: "San Francisco", Value: 39},
			{Label: "Sydney", Value: 25},
			{Label: "Singapore", Value: 61},
		},
		SalesChannels: []LabeledValue{
			{Label: "Direct", Value: 300.56},
			{Label: "Affiliate", Value: 135.18},
			{Label: "Sponsored", Value: 154.02},
			{Label: "E-mail", Value: 48.96},
		},
		TopProducts: topProducts(),
		Notifications: []FeedItem{
			{Kind: "bug", Message: "You have a bug that needs ...", Time: "Just now"},
			{Kind: "user", Message: "New user registered", Time: "59 minutes ago"},
			{Kind: "bug", Message: "You have a bug that needs ...", Time: "12 hours ago"},
			{Kind: "subscribe", Message: "Andi Lane subscribed to you", Time: "Today, 11:59 AM"},
		},
		Activities: []FeedItem{
			{Kind: "activity", Message: "You have a bug that needs...", Time: "Just now"},
			{Kind: "activity", Message: "Released a new version", Time: "59 minutes ago"},
			{Kind: "activity", Message: "Submitted a bug", Time: "12 hours ago"},
			{Kind: "activity", Message: "Modified A data in Page X", Time: "Today, 11:59 AM"},
			{Kind: "activity", Message: "Deleted a page in Project X", Time: "Feb 2, 2023"},
		},
		Contacts: []string{
			"Natali Craig", "Drew Cano", "Orlando Diggs",
			"Andi Lane", "Kate Morrison", "Koray Occumos",
		},
		Favorites:  []string{"Overview", "Projects"},
		Recent:     []string{"Recent Project 1", "Recent Project 2"},
		Dashboards: []string{"Default", "eCommerce", "Projects", "Online Courses"},
		Menus: []MenuGroup{
			{Title: "User Profile", Items: []string{"Overview", "User Projects", "Campaigns", "Documents", "Followers"}},
			{Title: "Account", Items: []string{"Profile", "Settings", "Billing", "Notifications", "Security"}},
			{Title: "Corporate", Items: []string{"Company", "Departments", "Corporate Projects", "Tasks", "Calendar"}},
			{Title: "Blog", Items: []string{"Posts", "Categories", "Tags", "Comments", "Authors"}},
			{Title: "Social", Items: []string{"Feed", "Messages", "Friends", "Groups", "Notifications"}},
		},
	}
}

// topProducts repeats the six base products three times.
func topProducts() []Product {
	base := []Product{
		{Name: "ASOS Ridley High Waist", Price: "$79.49", Quantity: 82, Amount: "$6518.18"},
		{Name: "Marco Lightweight Shirt", Price: "$128.50", Quantity: 37, Amount: "$4754.50"},
		{Name: "Half Sleeve Shirt", Price: "$39.99", Quantity: 64, Amount: "$2559.36"},
		{Name: "Lightweight Jacket", Price: "$20.00", Quantity: 184, Amount: "$3680.00"},
		{Name: "Long Sleeve Shirt", Price: "$25.50", Quantity: 10, Amount: "$255.00"},
		{Name: "Cotton T-Shirt", Price: "$10.99", Quantity: 184, Amount: "$2023.16"},
	}
	out := make([]Product, 0, len(base)*3)
	for i := 0; i < 3; i++ {
		out = append(out, base...)
	}
	return out
}
