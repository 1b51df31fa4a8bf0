package services

import (
	"cafe/internal/core/domain/model/item"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"
)

// StockReservation is a domain service that reserves inventory for an order
// at fulfillment time.
//
// Key responsibilities:
//   - Validating the order and every involved item
//   - Checking availability for ALL lines before touching any stock
//   - Decrementing stock line by line once the check passed
//
// Business rules:
//   - Fulfillment is all-or-nothing: if any line cannot be covered, no
//     item's stock changes
//   - The failure names the first under-stocked item in line order
//   - Stock is never clamped; a failed reservation leaves amounts intact
//
// Example usage:
//
//	reservation := services.NewStockReservation()
//	items, _ := loadLockedItems(order) // keyed by item ID
//
//	if err := reservation.Reserve(order, items); err != nil {
//	    // InsufficientInventoryError or ObjectNotFoundError; nothing was decremented
//	    return err
//	}
//	// Persist the decremented items in the same transaction
type StockReservation struct{}

// NewStockReservation creates a new StockReservation instance.
func NewStockReservation() StockReservation {
	return StockReservation{}
}

// Reserve checks and decrements stock for every line of the order.
//
// Parameters:
//   - ord: The order being fulfilled (must be valid)
//   - items: The catalog items referenced by the order's lines, keyed by
//     item ID string. The caller is expected to have locked them.
//
// Returns:
//   - nil if every line was covered and decremented
//   - ObjectNotFoundError if a line references an item missing from the map
//   - InsufficientInventoryError naming the first line whose item cannot
//     cover the requested amount; in that case no item was decremented
func (s StockReservation) Reserve(ord *order.Order, items map[string]*item.Item) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	lines := ord.Lines()

	// Availability pass over all lines before any decrement.
	for _, line := range lines {
		it, err := s.lookup(items, line)
		if err != nil {
			return err
		}

		if !it.CanCover(line.Amount()) {
			return errs.NewInsufficientInventoryError(it.Name(), line.Amount(), it.Amount())
		}
	}

	for _, line := range lines {
		it, err := s.lookup(items, line)
		if err != nil {
			return err
		}

		if err := it.Decrement(line.Amount()); err != nil {
			return err
		}
	}

	return nil
}

// lookup resolves the catalog item behind a line and validates it.
func (s StockReservation) lookup(items map[string]*item.Item, line order.OrderLine) (*item.Item, error) {
	it, ok := items[line.ItemID().String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("item", line.ItemID())
	}

	if err := it.Validate(); err != nil {
		return nil, err
	}

	return it, nil
}
