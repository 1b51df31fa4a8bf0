package order

import (
	"errors"
	"fmt"

	"cafe/internal/core/domain/model/identity"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/tax"
	"cafe/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order in the café ordering workflow.
// It is the aggregate root of the lifecycle engine: it owns the line
// snapshots, the priced total, and the status machine, and it enforces
// who may move the order between states.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer name
//   - Lines are snapshots; the total never drifts when the catalog changes
//   - Tip is never negative and the tax rate is snapshotted per order
//   - totalPrice = subtotal + subtotal*(rate/100) + tip, fixed at build time
//   - Status only moves forward: Pending -> Fulfilled -> PickedUp
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// name is the username of the customer who placed the order
	name string

	// lines are the item snapshots making up the order
	lines []OrderLine

	// tip is the gratuity added on top of the taxed subtotal (never negative)
	tip float64

	// taxRate is the rate in force when the order was built or rebuilt
	taxRate tax.Rate

	// totalPrice is the charged total, computed once per build
	totalPrice float64

	// status is the current lifecycle state
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new pending Order with validation. This is the only way,
// besides RestoreOrder, to create a valid Order.
//
// The total is computed here and never recomputed implicitly:
// subtotal of all lines, plus tax at the given rate, plus the tip.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - name: Customer username (must be non-empty)
//   - lines: Item snapshots (each must be a constructed OrderLine)
//   - rate: Tax rate in force at placement time
//   - tip: Gratuity (must be non-negative)
//
// Returns the created order if all validations pass, or a joined validation error.
func NewOrder(id kernel.UUID, name string, lines []OrderLine, rate tax.Rate, tip float64) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setName(name),
		order.setLines(lines),
		order.setTaxRate(rate),
		order.setTip(tip),
	); err != nil {
		return nil, err
	}

	order.status = Pending
	order.totalPrice = order.calculateTotal()
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// Unlike NewOrder it takes the stored total and status as-is: the total is a
// historical record of what the customer was charged and must not be
// recomputed against the current catalog or tax rate.
func RestoreOrder(id kernel.UUID, name string, lines []OrderLine,
	rate tax.Rate, tip, totalPrice float64, status Status) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setName(name),
		order.setLines(lines),
		order.setTaxRate(rate),
		order.setTip(tip),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	order.totalPrice = totalPrice
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Name returns the username of the customer who placed the order.
func (o *Order) Name() string {
	return o.name
}

// Lines returns a copy of the order's line snapshots.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Tip returns the gratuity amount.
func (o *Order) Tip() float64 {
	return o.tip
}

// TaxRate returns the tax rate snapshotted for this order.
func (o *Order) TaxRate() tax.Rate {
	return o.taxRate
}

// TotalPrice returns the charged total computed at build time.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Subtotal returns the sum of all line totals, before tax and tip.
func (o *Order) Subtotal() float64 {
	var subtotal float64
	for _, line := range o.lines {
		subtotal += line.Subtotal()
	}
	return subtotal
}

// Rebuild replaces the order's contents while it is still pending.
//
// The lines are replaced wholesale with fresh snapshots and the total is
// recomputed against the given tax rate. The original tip is retained and
// re-added, so an update charges the same formula as placement.
//
// Returns a validation error if the order has already been fulfilled or
// picked up, or if any of the new values is invalid.
func (o *Order) Rebuild(name string, lines []OrderLine, rate tax.Rate) error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%s order can no longer be updated", o.status))
	}

	rebuilt := Order{isConstructed: true, tip: o.tip}
	if err := errors.Join(
		rebuilt.setName(name),
		rebuilt.setLines(lines),
		rebuilt.setTaxRate(rate),
	); err != nil {
		return err
	}

	o.name = rebuilt.name
	o.lines = rebuilt.lines
	o.taxRate = rebuilt.taxRate
	o.totalPrice = o.calculateTotal()
	return nil
}

// Fulfill transitions the order from Pending to Fulfilled.
//
// Guards, in order:
//   - An order that was already fulfilled or picked up reports
//     AlreadyCompletedError, so stock is never decremented twice.
//   - Only staff and admin callers may fulfill; anyone else gets
//     ForbiddenError.
//
// Fulfill only moves the status. Checking and decrementing stock for the
// order's lines is the stock reservation service's job and must happen in
// the same transaction.
func (o *Order) Fulfill(role identity.Role) error {
	if o.status.IsCompleted() {
		return errs.NewAlreadyCompletedError(o.id.String())
	}

	if !role.CanFulfill() {
		return errs.NewForbiddenError("fulfill order", role.String())
	}

	o.status = Fulfilled
	return nil
}

// Pickup transitions the order from Fulfilled to PickedUp.
//
// Guards, in order:
//   - A picked-up order is terminal and reports AlreadyCompletedError.
//   - Only the customer who placed the order may pick it up; a different
//     username gets OwnershipMismatchError.
//   - The order must have been fulfilled first; picking up a pending order
//     reports InvalidTransitionError.
func (o *Order) Pickup(username string) error {
	if o.status.IsTerminal() {
		return errs.NewAlreadyCompletedError(o.id.String())
	}

	if username != o.name {
		return errs.NewOwnershipMismatchError(o.name, username)
	}

	if o.status != Fulfilled {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), PickedUp.String(),
			errors.New("order must be fulfilled before pickup"))
	}

	o.status = PickedUp
	return nil
}

// calculateTotal prices the order: line subtotals, plus tax at the
// snapshotted rate, plus the tip.
func (o *Order) calculateTotal() float64 {
	subtotal := o.Subtotal()
	return subtotal + o.taxRate.ApplyTo(subtotal) + o.tip
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setName validates and sets the customer username.
func (o *Order) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("order customer name")
	}
	o.name = name
	return nil
}

// setLines validates each line and stores a copy of the slice.
func (o *Order) setLines(lines []OrderLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]OrderLine, len(lines))
	copy(o.lines, lines)
	return nil
}

// setTip validates and sets the gratuity.
// Tip must be non-negative.
func (o *Order) setTip(tip float64) error {
	if tip < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order tip",
			fmt.Errorf("%v is negative", tip))
	}
	o.tip = tip
	return nil
}

// setTaxRate validates and snapshots the tax rate.
func (o *Order) setTaxRate(rate tax.Rate) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	o.taxRate = rate
	return nil
}
