package item

import (
	"errors"
	"fmt"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem or RestoreItem factory methods. This ensures all items are properly validated.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item represents a priced, stock-tracked catalog entry. It is the aggregate
// root for inventory: fulfillment decrements its on-hand amount and catalog
// management mutates its details.
//
// Item follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name (unique across the catalog, enforced by persistence)
//   - On-hand amount is never negative; decrements are pre-checked, never clamped
//   - Price is never negative
//   - Can only be created through NewItem or RestoreItem
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// name is the unique display name of the item
	name string

	// description is optional free text shown in the catalog
	description string

	// amount is the on-hand stock quantity (never negative)
	amount int

	// price is the current unit price (never negative)
	price float64

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a new Item instance with validation. This is the only way,
// besides RestoreItem, to create a valid Item.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - description: Optional free text
//   - amount: On-hand stock quantity (must be non-negative)
//   - price: Unit price (must be non-negative)
//
// Returns the created item if all validations pass, or a joined validation error.
func NewItem(id kernel.UUID, name, description string, amount int, price float64) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setAmount(amount),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.description = description
	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
// It applies the same validation as NewItem.
func RestoreItem(id kernel.UUID, name, description string, amount int, price float64) (*Item, error) {
	return NewItem(id, name, description, amount, price)
}

// Validate ensures the Item instance was properly constructed through a factory method.
// Returns ErrItemIsNotConstructed otherwise.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item's description.
func (i *Item) Description() string {
	return i.description
}

// Amount returns the on-hand stock quantity.
func (i *Item) Amount() int {
	return i.amount
}

// Price returns the current unit price.
func (i *Item) Price() float64 {
	return i.price
}

// CanCover reports whether the on-hand amount covers the requested quantity.
// Used by the fulfillment availability pass before any decrement happens.
func (i *Item) CanCover(quantity int) bool {
	return i.amount >= quantity
}

// Decrement reduces the on-hand amount by the given quantity.
//
// The decrement is pre-checked: if the on-hand amount cannot cover the
// quantity, the item is left unchanged and an InsufficientInventoryError
// naming this item is returned. The amount is never clamped to zero.
func (i *Item) Decrement(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if !i.CanCover(quantity) {
		return errs.NewInsufficientInventoryError(i.name, quantity, i.amount)
	}

	i.amount -= quantity
	return nil
}

// Update replaces the item's catalog details.
// Applies the same validation as construction; the item is unchanged on error.
func (i *Item) Update(name, description string, amount int, price float64) error {
	updated := Item{isConstructed: true}

	if err := errors.Join(
		updated.setName(name),
		updated.setAmount(amount),
		updated.setPrice(price),
	); err != nil {
		return err
	}

	i.name = name
	i.description = description
	i.amount = amount
	i.price = price
	return nil
}

// setID validates and sets the item's unique identifier.
// This is a private method used only during construction.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setName validates and sets the item's name.
func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

// setAmount validates and sets the on-hand amount.
// Amount must be non-negative.
func (i *Item) setAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item amount",
			fmt.Errorf("%d is negative", amount))
	}
	i.amount = amount
	return nil
}

// setPrice validates and sets the unit price.
// Price must be non-negative.
func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}
