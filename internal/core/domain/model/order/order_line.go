package order

import (
	"fmt"

	"cafe/internal/core/domain/model/item"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
)

// OrderLine is an immutable value object capturing one item position of an
// order. The item's name and unit price are snapshotted at line-build time,
// so later catalog edits never change what an existing order charges.
type OrderLine struct {
	itemID   kernel.UUID
	itemName string
	price    float64
	amount   int

	isConstructed bool
}

// NewOrderLine builds a line from the current state of a catalog item.
//
// Parameters:
//   - it: the catalog item to snapshot (must be a constructed Item)
//   - amount: ordered quantity (must be strictly positive)
//
// Returns the line, or a validation error if the item is invalid or the
// amount is not greater than zero.
func NewOrderLine(it *item.Item, amount int) (OrderLine, error) {
	if err := it.Validate(); err != nil {
		return OrderLine{}, err
	}

	return RestoreOrderLine(it.ID(), it.Name(), it.Price(), amount)
}

// RestoreOrderLine reconstructs a line from persisted snapshot values.
// It applies the same validation as NewOrderLine.
func RestoreOrderLine(itemID kernel.UUID, itemName string, price float64, amount int) (OrderLine, error) {
	if err := itemID.Validate(); err != nil {
		return OrderLine{}, err
	}

	if itemName == "" {
		return OrderLine{}, errs.NewValueIsRequiredError("order line item name")
	}

	if price < 0 {
		return OrderLine{}, errs.NewValueIsInvalidErrorWithCause("order line price",
			fmt.Errorf("%v is negative", price))
	}

	if amount <= 0 {
		return OrderLine{}, errs.NewValueIsInvalidErrorWithCause("order line amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	return OrderLine{
		itemID:        itemID,
		itemName:      itemName,
		price:         price,
		amount:        amount,
		isConstructed: true,
	}, nil
}

// Validate ensures the line was created through a constructor.
func (l OrderLine) Validate() error {
	if !l.isConstructed {
		return errs.NewValueIsRequiredError("OrderLine must be created via NewOrderLine or RestoreOrderLine")
	}
	return nil
}

// ItemID returns the identifier of the ordered catalog item.
func (l OrderLine) ItemID() kernel.UUID {
	return l.itemID
}

// ItemName returns the item name snapshotted when the line was built.
func (l OrderLine) ItemName() string {
	return l.itemName
}

// Price returns the unit price snapshotted when the line was built.
func (l OrderLine) Price() float64 {
	return l.price
}

// Amount returns the ordered quantity.
func (l OrderLine) Amount() int {
	return l.amount
}

// Subtotal returns the line total: snapshotted unit price times quantity.
func (l OrderLine) Subtotal() float64 {
	return l.price * float64(l.amount)
}
