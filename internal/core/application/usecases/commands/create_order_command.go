package commands

import (
	"errors"
	"fmt"

	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// The customer name comes from the authenticated identity, never from the
// request body, and the lines reference catalog items by ID.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "alice", lines, 1.50)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %.2f", placed.ID(), placed.TotalPrice())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	name    string
	lines   []LineRequest
	tip     float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the customer name is not empty,
// every line request is constructed, and the tip is non-negative.
func NewCreateOrderCommand(orderID kernel.UUID, name string, lines []LineRequest, tip float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setName(name),
		orderCommand.setLines(lines),
		orderCommand.setTip(tip),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the customer username placing the order.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Lines returns the requested item lines.
func (c CreateOrderCommand) Lines() []LineRequest {
	return c.lines
}

// Tip returns the gratuity amount.
func (c CreateOrderCommand) Tip() float64 {
	return c.tip
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}

	c.name = name
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineRequest) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setTip(tip float64) error {
	if tip < 0 {
		return errs.NewValueIsInvalidErrorWithCause("tip",
			fmt.Errorf("%v is negative", tip))
	}

	c.tip = tip
	return nil
}
