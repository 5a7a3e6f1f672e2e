// Package orders defines the dashboard's order rows and the mock data sets
// the views are populated from.
package orders

import "context"

// Order is one row of the order list.
type Order struct {
	ID      string `json:"order_id"`
	User    string `json:"user"`
	Project string `json:"project"`
	Address string `json:"address"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// RowStatus implements table.Row.
func (o Order) RowStatus() string { return o.Status }

// Provider loads the order data set.
type Provider interface {
	ListOrders(ctx context.Context) ([]Order, error)
}

// StaticProvider serves the seed orders from memory.
type StaticProvider struct{}

func (StaticProvider) ListOrders(ctx context.Context) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Seed(), nil
}

// Seed returns the mock order list.
func Seed() []Order {
	return []Order{
		{ID: "#CM9801", User: "Natali Craig", Project: "Landing Page", Address: "Meadow Lane Oakland", Date: "Just now", Status: "In Progress"},
		{ID: "#CM9802", User: "Kate Morrison", Project: "CRM Admin pages", Address: "Larry San Francisco", Date: "A minute ago", Status: "Complete"},
		{ID: "#CM9803", User: "Drew Cano", Project: "Client Project", Address: "Bagwell Avenue Ocala", Date: "1 hour ago", Status: "Pending"},
		{ID: "#CM9804", User: "Orlando Diggs", Project: "Admin Dashboard", Address: "Washburn Baton Rouge", Date: "Yesterday", Status: "Approved"},
		{ID: "#CM9805", User: "Andi Lane", Project: "App Landing Page", Address: "Nest Lane Olivette", Date: "Feb 2, 2023", Status: "Rejected"},
		{ID: "#CM9806", User: "Mason Clark", Project: "Marketing Site", Address: "Greenwood Seattle", Date: "3 hours ago", Status: "In Progress"},
		{ID: "#CM9807", User: "Lara Bennett", Project: "E-Commerce App", Address: "Maple Street Austin", Date: "4 days ago", Status: "Complete"},
		{ID: "#CM9808", User: "Ethan Hall", Project: "Mobile App", Address: "Elm Avenue Denver", Date: "2 weeks ago", Status: "Pending"},
		{ID: "#CM9809", User: "Sophia King", Project: "Website Redesign", Address: "Oak Street Miami", Date: "Yesterday", Status: "Approved"},
		{ID: "#CM9810", User: "James Wright", Project: "Dashboard", Address: "Pine Lane Boston", Date: "Jan 15, 2023", Status: "Rejected"},
		{ID: "#CM9811", User: "Isabella Scott", Project: "Landing Page", Address: "Lakeview Road Chicago", Date: "Just now", Status: "In Progress"},
		{ID: "#CM9812", User: "Oliver Green", Project: "CRM Admin pages", Address: "Sunset Boulevard LA", Date: "A minute ago", Status: "Complete"},
		{ID: "#CM9813", User: "Mia Adams", Project: "Client Project", Address: "Broadway NYC", Date: "1 hour ago", Status: "Pending"},
		{ID: "#CM9814", User: "Noah Baker", Project: "Admin Dashboard", Address: "River Road Houston", Date: "Yesterday", Status: "Approved"},
		{ID: "#CM9815", User: "Emily Carter", Project: "App Landing Page", Address: "Cedar Lane Dallas", Date: "Feb 2, 2023", Status: "Rejected"},
		{ID: "#CM9816", User: "Liam Evans", Project: "Marketing Site", Address: "Oakwood Drive Atlanta", Date: "3 hours ago", Status: "In Progress"},
		{ID: "#CM9817", User: "Ava Foster", Project: "E-Commerce App", Address: "Birch Street Portland", Date: "4 days ago", Status: "Complete"},
		{ID: "#CM9818", User: "Benjamin Gray", Project: "Mobile App", Address: "Chestnut Avenue Minneapolis", Date: "2 weeks ago", Status: "Pending"},
		{ID: "#CM9819", User: "Charlotte Harris", Project: "Website Redesign", Address: "Willow Lane Orlando", Date: "Yesterday", Status: "Approved"},
		{ID: "#CM9820", User: "Elijah Johnson", Project: "Dashboard", Address: "Elmwood Road Seattle", Date: "Jan 15, 2023", Status: "Rejected"},
	}
}
