package queries

import (
	"context"
	"database/sql"

	"cafe/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllItemsQueryHandler retrieves all catalog item read models.
// Results are sorted by name.
type GetAllItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllItemsQueryHandler creates a handler for catalog listing.
// Requires a GORM database connection for query execution.
func NewGetAllItemsQueryHandler(db *gorm.DB) GetAllItemsQueryHandler {
	return GetAllItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve the catalog.
func (h GetAllItemsQueryHandler) Handle(ctx context.Context, query GetAllItemsQuery) ([]ItemResponse, error) {
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
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// scanItems reads item rows (id, name, description, amount, price) into
// responses.
func scanItems(rows *sql.Rows) ([]ItemResponse, error) {
	items := make([]ItemResponse, 0)

	for rows.Next() {
		var resp ItemResponse
		var id uuid.UUID

		if err := rows.Scan(&id, &resp.Name, &resp.Description, &resp.Amount, &resp.Price); err != nil {
			return nil, err
		}

		itemID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.ID = itemID
		items = append(items, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
