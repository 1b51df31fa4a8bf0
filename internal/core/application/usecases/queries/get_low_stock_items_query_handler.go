package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLowStockItemsQueryHandler retrieves items running low on stock.
// Results are sorted by amount, emptiest first.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockItemsQueryHandler creates a handler for low-stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

// Handle executes the query for items at or under the threshold.
func (h GetLowStockItemsQueryHandler) Handle(ctx context.Context, query GetLowStockItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			amount,
			price
		FROM items
		WHERE amount <= ?
		ORDER BY amount, name
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}
