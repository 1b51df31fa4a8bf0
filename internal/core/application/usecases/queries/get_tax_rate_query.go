package queries

import (
	"errors"

	"cafe/internal/pkg/guard"
)

var ErrGetTaxRateQueryIsNotConstructed = errors.New(
	"GetTaxRateQuery must be created via NewGetTaxRateQuery constructor",
)

// GetTaxRateQuery retrieves the currently active tax rate percentage.
type GetTaxRateQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTaxRateQuery creates a query for the active tax rate.
// This is a parameterless query.
func NewGetTaxRateQuery() GetTaxRateQuery {
	return GetTaxRateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTaxRateQueryIsNotConstructed if validation fails.
func (q GetTaxRateQuery) Validate() error {
	return q.guard.Validate(ErrGetTaxRateQueryIsNotConstructed)
}

// GetTaxRateQueryResponse carries the active tax rate percentage.
// Rate is 0 when no rate has ever been configured.
type GetTaxRateQueryResponse struct {
	Rate float64
}
