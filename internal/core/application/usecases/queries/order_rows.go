package queries

import (
	"context"
	"database/sql"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scanOrders reads order rows (id, name, tip, tax_rate, total_price, status)
// into responses without their lines.
func scanOrders(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id uuid.UUID
		var status int

		if err := rows.Scan(&id, &resp.Name, &resp.Tip, &resp.TaxRate,
			&resp.TotalPrice, &status); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.ID = orderID
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLines runs the given line query and buckets the resulting line
// snapshots onto the matching orders.
func attachLines(ctx context.Context, db *gorm.DB, orders []OrderResponse,
	lineSQL string, args ...any) ([]OrderResponse, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	rows, err := db.WithContext(ctx).Raw(lineSQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[kernel.UUID][]OrderLineResponse)

	for rows.Next() {
		var line OrderLineResponse
		var orderID, itemID uuid.UUID

		if err = rows.Scan(&orderID, &itemID, &line.ItemName, &line.Price, &line.Amount); err != nil {
			return nil, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		line.ItemID, idErr = kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}

		byOrder[oid] = append(byOrder[oid], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, ok := byOrder[orders[i].ID]
		if !ok {
			lines = make([]OrderLineResponse, 0)
		}
		orders[i].Lines = lines
	}

	return orders, nil
}
