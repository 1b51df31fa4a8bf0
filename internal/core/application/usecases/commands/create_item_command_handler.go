package commands

import (
	"context"
	"errors"
	"fmt"

	"cafe/internal/core/domain/model/item"
	"cafe/internal/pkg/errs"
)

// CreateItemCommandHandler handles adding items to the catalog.
// Only staff and admins may manage the catalog, and item names are unique.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for catalog creation operations.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item creation command.
// The name uniqueness check and the insert run in one transaction.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Role().CanManageCatalog() {
		return errs.NewForbiddenError("create item", cmd.Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()

	if _, err := itemRepo.GetByName(ctx, cmd.Name()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("item name",
			fmt.Errorf("%q already exists", cmd.Name()))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	created, err := item.NewItem(cmd.ItemID(), cmd.Name(), cmd.Description(), cmd.Amount(), cmd.Price())
	if err != nil {
		return err
	}

	if err = itemRepo.Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
