package queries

import (
	"context"

	"cafe/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetItemQueryHandler retrieves a single catalog item read model by ID.
type GetItemQueryHandler struct {
	db *gorm.DB
}

// NewGetItemQueryHandler creates a handler for single-item queries.
// Requires a GORM database connection for query execution.
func NewGetItemQueryHandler(db *gorm.DB) GetItemQueryHandler {
	return GetItemQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no item with
// the given ID exists.
func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return ItemResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			amount,
			price
		FROM items
		WHERE id = ?
	`, query.ItemID().Bytes()).Rows()
	if err != nil {
		return ItemResponse{}, err
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return ItemResponse{}, err
	}

	if len(items) == 0 {
		return ItemResponse{}, errs.NewObjectNotFoundError("item", query.ItemID())
	}

	return items[0], nil
}
