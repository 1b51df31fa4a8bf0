package commands

import (
	"context"
	"errors"
	"fmt"

	"cafe/internal/pkg/errs"
)

// UpdateItemCommandHandler handles replacing a catalog item's details.
// Only staff and admins may manage the catalog, and item names stay unique.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for catalog update operations.
func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item update command.
// Renaming onto another item's name is rejected; keeping the same name is not.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Role().CanManageCatalog() {
		return errs.NewForbiddenError("update item", cmd.Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	it, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if existing, err := itemRepo.GetByName(ctx, cmd.Name()); err == nil {
		if !existing.IsEqual(it) {
			return errs.NewValueIsInvalidErrorWithCause("item name",
				fmt.Errorf("%q already exists", cmd.Name()))
		}
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = it.Update(cmd.Name(), cmd.Description(), cmd.Amount(), cmd.Price()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
