package queries

import (
	"errors"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/guard"
)

var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery retrieves a single catalog item by ID.
type GetItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetItemQuery creates a query for the given item ID.
func NewGetItemQuery(itemID kernel.UUID) (GetItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemQuery{}, err
	}

	return GetItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetItemQueryIsNotConstructed if validation fails.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

// ItemID returns the queried item identifier.
func (q GetItemQuery) ItemID() kernel.UUID {
	return q.itemID
}
