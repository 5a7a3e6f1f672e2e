package relational

import (
	"context"
	"fmt"

	"admindash/internal/orders"
)

// ListOrders returns every order in ID order.
func (r *OrderRepo) ListOrders(ctx context.Context) ([]orders.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, user_name, project, address, date_text, status
		FROM orders
		ORDER BY order_id`)
	if err != nil {
		return nil, fmt.Errorf("query orders failed: %w", err)
	}
	defer rows.Close()

	out := []orders.Order{} // empty, not nil, so an empty table still pages
	for rows.Next() {
		var o orders.Order
		if err := rows.Scan(&o.ID, &o.User, &o.Project, &o.Address, &o.Date, &o.Status); err != nil {
			return nil, fmt.Errorf("scan order failed: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

// CountByStatus groups orders by their raw status string.
func (r *OrderRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count orders failed: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count failed: %w", err)
		}
		counts[status] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}
