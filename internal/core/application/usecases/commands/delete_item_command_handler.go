package commands

import (
	"context"

	"cafe/internal/pkg/errs"
)

// DeleteItemCommandHandler handles removing items from the catalog.
// Only staff and admins may manage the catalog.
type DeleteItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for catalog deletion operations.
func NewDeleteItemCommandHandler(uowFactory ItemUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item deletion command.
// The item is fetched first so a missing ID reports ObjectNotFoundError.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Role().CanManageCatalog() {
		return errs.NewForbiddenError("delete item", cmd.Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	if _, err := itemRepo.Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := itemRepo.Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
