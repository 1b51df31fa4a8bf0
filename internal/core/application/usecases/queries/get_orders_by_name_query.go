package queries

import (
	"errors"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrGetOrdersByNameQueryIsNotConstructed = errors.New(
	"GetOrdersByNameQuery must be created via NewGetOrdersByNameQuery constructor",
)

// GetOrdersByNameQuery retrieves the orders placed by one customer.
// Customers use this to see their own order history.
type GetOrdersByNameQuery struct {
	name string

	guard guard.ConstructorGuard
}

// NewGetOrdersByNameQuery creates a query for the given customer username.
func NewGetOrdersByNameQuery(name string) (GetOrdersByNameQuery, error) {
	if name == "" {
		return GetOrdersByNameQuery{}, errs.NewValueIsRequiredError("customer name")
	}

	return GetOrdersByNameQuery{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByNameQueryIsNotConstructed if validation fails.
func (q GetOrdersByNameQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByNameQueryIsNotConstructed)
}

// Name returns the queried customer username.
func (q GetOrdersByNameQuery) Name() string {
	return q.name
}
