package commands

import (
	"context"
	"sort"

	"cafe/internal/core/domain/model/item"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/services"
	"cafe/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler drives the order lifecycle.
//
// All transition guards live on the Order aggregate; this handler supplies
// the transactional discipline around them. For fulfillment it locks the
// order row and every referenced item row, runs the stock reservation, and
// persists the decremented items and the transitioned order atomically. A
// failed transition rolls back and leaves both order and catalog unchanged.
type ChangeOrderStatusCommandHandler struct {
	uowFactory  UoWFactory
	reservation services.StockReservation
}

// NewChangeOrderStatusCommandHandler creates a handler for order transitions.
// Requires a UoWFactory spanning orders and items, and the stock reservation
// domain service used during fulfillment.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory,
	reservation services.StockReservation) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		reservation: reservation,
	}
}

// Handle processes the transition command.
//
// The order row is locked first, so concurrent transitions on the same order
// serialize: the loser of the race re-reads the already-transitioned status
// and fails its guard instead of double-decrementing stock. A commit failure
// is surfaced as ConflictError.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case order.Fulfilled:
		if err = h.fulfill(ctx, uow, ord, cmd); err != nil {
			return err
		}
	case order.PickedUp:
		if err = ord.Pickup(cmd.Username()); err != nil {
			return err
		}
	default:
		// The state machine only moves forward; PENDING is never a target.
		return errs.NewInvalidTransitionError(ord.Status().String(), cmd.Target().String())
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewConflictErrorWithCause("order transition", err)
	}

	return nil
}

// fulfill moves the order to FULFILLED and reserves stock for its lines.
//
// Items are locked in ascending ID order so two fulfillments touching the
// same items never deadlock. The availability check and the decrements run
// against the locked rows inside the surrounding transaction.
func (h *ChangeOrderStatusCommandHandler) fulfill(ctx context.Context, uow UoW,
	ord *order.Order, cmd ChangeOrderStatusCommand) error {
	if err := ord.Fulfill(cmd.Role()); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	items := make(map[string]*item.Item)

	for _, id := range lineItemIDs(ord) {
		it, err := itemRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		items[id.String()] = it
	}

	if err := h.reservation.Reserve(ord, items); err != nil {
		return err
	}

	for _, id := range lineItemIDs(ord) {
		if err := itemRepo.Update(ctx, items[id.String()]); err != nil {
			return err
		}
	}

	return nil
}

// lineItemIDs returns the distinct item IDs referenced by the order's lines,
// sorted ascending. The sort fixes the lock acquisition order.
func lineItemIDs(ord *order.Order) []kernel.UUID {
	seen := make(map[string]kernel.UUID)
	for _, line := range ord.Lines() {
		seen[line.ItemID().String()] = line.ItemID()
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ids := make([]kernel.UUID, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, seen[key])
	}

	return ids
}
