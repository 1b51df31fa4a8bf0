package commands

import (
	"errors"
	"fmt"

	"cafe/internal/core/domain/model/identity"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a staff request to replace a catalog item's
// details. Existing order lines keep their snapshots; only future orders see
// the new name and price.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	amount      int
	price       float64
	role        identity.Role

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update a catalog item.
// Applies the same validation as NewCreateItemCommand.
func NewUpdateItemCommand(itemID kernel.UUID, name, description string,
	amount int, price float64, role identity.Role) (UpdateItemCommand, error) {
	itemCommand := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
		itemCommand.setAmount(amount),
		itemCommand.setPrice(price),
		itemCommand.setRole(role),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	itemCommand.description = description
	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateItemCommandIsNotConstructed if validation fails.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateItemCommand) Description() string {
	return c.description
}

// Amount returns the new stock quantity.
func (c UpdateItemCommand) Amount() int {
	return c.amount
}

// Price returns the new unit price.
func (c UpdateItemCommand) Price() float64 {
	return c.price
}

// Role returns the caller's role.
func (c UpdateItemCommand) Role() identity.Role {
	return c.role
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	c.name = name
	return nil
}

func (c *UpdateItemCommand) setAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item amount",
			fmt.Errorf("%d is negative", amount))
	}

	c.amount = amount
	return nil
}

func (c *UpdateItemCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%v is negative", price))
	}

	c.price = price
	return nil
}

func (c *UpdateItemCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
