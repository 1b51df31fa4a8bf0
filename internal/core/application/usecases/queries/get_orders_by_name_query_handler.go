package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByNameQueryHandler retrieves the order read models of one customer.
// Results are sorted by order ID for consistent output.
type GetOrdersByNameQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByNameQueryHandler creates a handler for customer order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByNameQueryHandler(db *gorm.DB) GetOrdersByNameQueryHandler {
	return GetOrdersByNameQueryHandler{db: db}
}

// Handle executes the query. A customer with no orders yields an empty slice,
// not an error.
func (h GetOrdersByNameQueryHandler) Handle(ctx context.Context, query GetOrdersByNameQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			tip,
			tax_rate,
			total_price,
			status
		FROM orders
		WHERE name = ?
		ORDER BY id
	`, query.Name()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	return attachLines(ctx, h.db, orders, `
		SELECT
			order_id,
			item_id,
			item_name,
			price,
			amount
		FROM order_lines
		WHERE order_id IN (SELECT id FROM orders WHERE name = ?)
		ORDER BY id
	`, query.Name())
}
