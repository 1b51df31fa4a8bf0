package commands

import (
	"errors"

	"cafe/internal/core/domain/model/identity"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a staff request to replace the contents of a
// pending order. The lines are replaced wholesale and the order is repriced
// at the current tax rate; the original tip is retained.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	name    string
	lines   []LineRequest
	role    identity.Role

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to replace an order's contents.
// Validates that the order ID is valid, the customer name is not empty,
// every line request is constructed, and the caller role is valid.
func NewUpdateOrderCommand(orderID kernel.UUID, name string, lines []LineRequest, role identity.Role) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setName(name),
		orderCommand.setLines(lines),
		orderCommand.setRole(role),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the customer username the order should carry.
func (c UpdateOrderCommand) Name() string {
	return c.name
}

// Lines returns the replacement item lines.
func (c UpdateOrderCommand) Lines() []LineRequest {
	return c.lines
}

// Role returns the caller's role.
func (c UpdateOrderCommand) Role() identity.Role {
	return c.role
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.name = name
	return nil
}

func (c *UpdateOrderCommand) setLines(lines []LineRequest) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *UpdateOrderCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
