package relational

import (
	"context"

	"admindash/internal/orders"
)

// OrderRepository stores the order data set the table view pages over.
type OrderRepository interface {
	orders.Provider

	// Migrate creates the schema if it does not exist.
	Migrate(ctx context.Context) error
	// SeedOrders inserts or replaces the given orders by ID.
	SeedOrders(ctx context.Context, rows []orders.Order) error
	// CountByStatus returns how many orders carry each status string.
	CountByStatus(ctx context.Context) (map[string]int, error)
	Close() error
}

var _ OrderRepository = (*OrderRepo)(nil)
