package commands

import (
	"errors"
	"fmt"

	"cafe/internal/core/domain/model/identity"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand represents a staff request to add an item to the catalog.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	amount      int
	price       float64
	role        identity.Role

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to add a catalog item.
// Validates that the item ID is valid, the name is not empty, the amount and
// price are non-negative, and the caller role is valid.
func NewCreateItemCommand(itemID kernel.UUID, name, description string,
	amount int, price float64, role identity.Role) (CreateItemCommand, error) {
	itemCommand := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
		itemCommand.setAmount(amount),
		itemCommand.setPrice(price),
		itemCommand.setRole(role),
	); err != nil {
		return CreateItemCommand{}, err
	}

	itemCommand.description = description
	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateItemCommandIsNotConstructed if validation fails.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the new item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item's display name.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Description returns the item's description.
func (c CreateItemCommand) Description() string {
	return c.description
}

// Amount returns the initial stock quantity.
func (c CreateItemCommand) Amount() int {
	return c.amount
}

// Price returns the unit price.
func (c CreateItemCommand) Price() float64 {
	return c.price
}

// Role returns the caller's role.
func (c CreateItemCommand) Role() identity.Role {
	return c.role
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	c.name = name
	return nil
}

func (c *CreateItemCommand) setAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item amount",
			fmt.Errorf("%d is negative", amount))
	}

	c.amount = amount
	return nil
}

func (c *CreateItemCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%v is negative", price))
	}

	c.price = price
	return nil
}

func (c *CreateItemCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
