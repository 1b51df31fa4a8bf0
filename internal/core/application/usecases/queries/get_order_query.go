// Package queries contains read-only operations over the persistence layer.
// Implements the Query side of the CQRS architecture: handlers run raw SQL
// against the database and return flat response structs, bypassing the
// aggregate constructors the write side uses.
package queries

import (
	"errors"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line snapshots.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s: %s, total %.2f\n", resp.ID, resp.Status, resp.TotalPrice)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the queried order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineResponse represents one line snapshot of an order read model.
type OrderLineResponse struct {
	ItemID   kernel.UUID
	ItemName string
	Price    float64
	Amount   int
}

// OrderResponse represents the order read model returned by the order
// queries. Status is the wire-format string (PENDING, FULFILLED, PICKED_UP).
type OrderResponse struct {
	ID         kernel.UUID
	Name       string
	Lines      []OrderLineResponse
	Tip        float64
	TaxRate    float64
	TotalPrice float64
	Status     string
}
