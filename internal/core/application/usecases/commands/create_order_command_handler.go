package commands

import (
	"context"

	"cafe/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the requested lines against the catalog, snapshots the tax rate in
// force, and persists the priced order in PENDING status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "alice", lines, 0)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// placed carries the computed total the customer was quoted
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory because placement reads the catalog and tax rate and
// writes the order in one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
//
// Prices are snapshotted inside the transaction: a catalog edit or tax change
// committed after this transaction begins does not leak into the order.
// Returns the placed order so callers can present the computed total.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines, err := buildOrderLines(ctx, uow.ItemRepository(), cmd.Lines())
	if err != nil {
		return nil, err
	}

	rate, err := uow.TaxRateRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.Name(), lines, rate, cmd.Tip())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
