package ports

import (
	"context"

	"cafe/internal/core/domain/model/tax"
)

// TaxRateRepository defines the persistence contract for the single active
// tax rate.
type TaxRateRepository interface {
	// Get retrieves the currently configured tax rate.
	// When no rate has ever been set it returns the zero rate, never an error.
	Get(ctx context.Context) (tax.Rate, error)

	// Set replaces the active tax rate.
	Set(ctx context.Context, rate tax.Rate) error
}
