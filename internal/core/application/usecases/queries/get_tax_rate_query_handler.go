package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTaxRateQueryHandler retrieves the active tax rate.
// An unconfigured registry reads as 0, never as an error.
type GetTaxRateQueryHandler struct {
	db *gorm.DB
}

// NewGetTaxRateQueryHandler creates a handler for the tax rate query.
// Requires a GORM database connection for query execution.
func NewGetTaxRateQueryHandler(db *gorm.DB) GetTaxRateQueryHandler {
	return GetTaxRateQueryHandler{db: db}
}

// Handle executes the query against the single-row tax_rates table.
func (h GetTaxRateQueryHandler) Handle(ctx context.Context, query GetTaxRateQuery) (GetTaxRateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTaxRateQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT rate FROM tax_rates LIMIT 1
	`).Rows()
	if err != nil {
		return GetTaxRateQueryResponse{}, err
	}
	defer rows.Close()

	var resp GetTaxRateQueryResponse

	if rows.Next() {
		if err = rows.Scan(&resp.Rate); err != nil {
			return GetTaxRateQueryResponse{}, err
		}
	}

	if err = rows.Err(); err != nil {
		return GetTaxRateQueryResponse{}, err
	}

	return resp, nil
}
