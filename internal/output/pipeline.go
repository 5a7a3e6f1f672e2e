package output

import (
	"context"
	"fmt"

	"admindash/internal/orders"
	"admindash/internal/table"
)

// LoadOrdersView pulls the order data set from p and wraps it in a table
// view of the given page size.
func LoadOrdersView(ctx context.Context, p orders.Provider, pageSize int) (*table.View[orders.Order], error) {
	rows, err := p.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	v, err := table.New(rows, pageSize)
	if err != nil {
		return nil, fmt.Errorf("build order table: %w", err)
	}
	return v, nil
}
