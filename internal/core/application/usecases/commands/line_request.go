package commands

import (
	"context"
	"errors"
	"fmt"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/ports"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrLineRequestIsNotConstructed = errors.New(
	"LineRequest must be created via NewLineRequest constructor",
)

// LineRequest is the incoming (itemID, amount) pair of an order placement or
// update. It carries no price: prices are snapshotted from the catalog when
// the request is resolved into an order line.
type LineRequest struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	amount int

	guard guard.ConstructorGuard
}

// NewLineRequest creates a line request for the given item and quantity.
// Validates that the item ID is valid and the amount is positive.
func NewLineRequest(itemID kernel.UUID, amount int) (LineRequest, error) {
	if err := itemID.Validate(); err != nil {
		return LineRequest{}, err
	}

	if amount <= 0 {
		return LineRequest{}, errs.NewValueIsInvalidErrorWithCause("line amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	return LineRequest{
		itemID: itemID,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the request was created through the constructor.
func (r LineRequest) Validate() error {
	return r.guard.Validate(ErrLineRequestIsNotConstructed)
}

// ItemID returns the requested catalog item identifier.
func (r LineRequest) ItemID() kernel.UUID {
	return r.itemID
}

// Amount returns the requested quantity.
func (r LineRequest) Amount() int {
	return r.amount
}

// buildOrderLines resolves line requests against the catalog into order line
// snapshots. A request referencing a missing item fails the whole build with
// ObjectNotFoundError. Create and update share this path, so both price an
// order the same way.
func buildOrderLines(ctx context.Context, repo ports.ItemRepository, requests []LineRequest) ([]order.OrderLine, error) {
	lines := make([]order.OrderLine, 0, len(requests))

	for _, request := range requests {
		if err := request.Validate(); err != nil {
			return nil, err
		}

		it, err := repo.Get(ctx, request.ItemID())
		if err != nil {
			return nil, err
		}

		line, err := order.NewOrderLine(it, request.Amount())
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
