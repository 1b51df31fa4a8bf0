package commands

import (
	"errors"

	"cafe/internal/core/domain/model/identity"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand represents a staff request to remove an item from the
// catalog. Lines on existing orders keep their snapshots of the item.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	role   identity.Role

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a command to delete a catalog item.
func NewDeleteItemCommand(itemID kernel.UUID, role identity.Role) (DeleteItemCommand, error) {
	itemCommand := DeleteItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setRole(role),
	); err != nil {
		return DeleteItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteItemCommandIsNotConstructed if validation fails.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to delete.
func (c DeleteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Role returns the caller's role.
func (c DeleteItemCommand) Role() identity.Role {
	return c.role
}

func (c *DeleteItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *DeleteItemCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
