package commands

import (
	"context"

	"cafe/internal/core/domain/model/order"
	"cafe/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the business logic for replacing the
// contents of a pending order. Only staff and admins may edit orders.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
// Requires a UoWFactory because the update reads the catalog and tax rate and
// rewrites the order in one transaction.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
//
// The order row is locked so a concurrent fulfillment cannot interleave with
// the rewrite. Lines are rebuilt from the current catalog, the total is
// recomputed at the current tax rate, and the original tip is retained, so an
// updated order charges the same formula as a freshly placed one.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Role().CanManageOrders() {
		return nil, errs.NewForbiddenError("update order", cmd.Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	lines, err := buildOrderLines(ctx, uow.ItemRepository(), cmd.Lines())
	if err != nil {
		return nil, err
	}

	rate, err := uow.TaxRateRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	if err = ord.Rebuild(cmd.Name(), lines, rate); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
