package queries

import (
	"errors"
	"fmt"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
	"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
)

// GetLowStockItemsQuery retrieves catalog items at or under a stock
// threshold. The low-stock report job runs it on a schedule.
type GetLowStockItemsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates a query for items whose on-hand amount is
// at or below the given threshold. The threshold must be non-negative.
func NewGetLowStockItemsQuery(threshold int) (GetLowStockItemsQuery, error) {
	if threshold < 0 {
		return GetLowStockItemsQuery{}, errs.NewValueIsInvalidErrorWithCause("threshold",
			fmt.Errorf("%d is negative", threshold))
	}

	return GetLowStockItemsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockItemsQueryIsNotConstructed if validation fails.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

// Threshold returns the stock threshold.
func (q GetLowStockItemsQuery) Threshold() int {
	return q.threshold
}
