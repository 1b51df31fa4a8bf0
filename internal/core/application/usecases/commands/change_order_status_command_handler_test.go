package commands_test

import (
	"errors"
	"sort"
	"testing"

	"cafe/internal/core/application/usecases/commands"
	"cafe/internal/core/domain/model/identity"
	"cafe/internal/core/domain/model/item"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/tax"
	"cafe/internal/core/domain/services"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transitionFixture struct {
	latte    *item.Item
	espresso *item.Item
	order    *order.Order
}

// newTransitionFixture builds a pending order for alice with 2x Latte and
// 1x Espresso against items holding 10 units each.
func newTransitionFixture(t *testing.T) transitionFixture {
	t.Helper()

	latte, err := item.NewItem(kernel.NewUUID(), "Latte", "", 10, 3.00)
	require.NoError(t, err)
	espresso, err := item.NewItem(kernel.NewUUID(), "Espresso", "", 10, 4.00)
	require.NoError(t, err)

	latteLine, err := order.NewOrderLine(latte, 2)
	require.NoError(t, err)
	espressoLine, err := order.NewOrderLine(espresso, 1)
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), "alice",
		[]order.OrderLine{latteLine, espressoLine}, tax.ZeroRate(), 0)
	require.NoError(t, err)

	return transitionFixture{latte: latte, espresso: espresso, order: ord}
}

// lockOrder returns the fixture items in the ascending-ID order the handler
// acquires locks in.
func (f transitionFixture) lockOrder() []*item.Item {
	items := []*item.Item{f.latte, f.espresso}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID().String() < items[j].ID().String()
	})
	return items
}

func newTransitionHandler(factory commands.UoWFactory) commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(factory, services.NewStockReservation())
}

func TestChangeOrderStatusCommandHandler_Handle_FulfillSuccess(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)
	first, second := fixture.lockOrder()[0], fixture.lockOrder()[1]

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.Fulfilled,
		"barista1", identity.Staff)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once(),
		itemRepo.On("GetForUpdate", ctx, second.ID()).Return(second, nil).Once(),
		itemRepo.On("Update", ctx, first).Return(nil).Once(),
		itemRepo.On("Update", ctx, second).Return(nil).Once(),
		orderRepo.On("Update", ctx, fixture.order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Fulfilled, fixture.order.Status())
	assert.Equal(t, 8, fixture.latte.Amount())
	assert.Equal(t, 9, fixture.espresso.Amount())

	itemRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_FulfillForbidden(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.Fulfilled,
		"alice", identity.Customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Pending, fixture.order.Status())
	assert.Equal(t, 10, fixture.latte.Amount())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestChangeOrderStatusCommandHandler_Handle_FulfillInsufficientStock(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)
	first, second := fixture.lockOrder()[0], fixture.lockOrder()[1]

	// Drain the espresso stock below the ordered amount.
	require.NoError(t, fixture.espresso.Update("Espresso", "", 0, 4.00))

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.Fulfilled,
		"barista1", identity.Staff)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetForUpdate", ctx, first.ID()).Return(first, nil).Once(),
		itemRepo.On("GetForUpdate", ctx, second.ID()).Return(second, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInsufficientInventory)

	var invErr *errs.InsufficientInventoryError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, "Espresso", invErr.ItemName)

	// Rolled back: no stock was written, no item update issued.
	assert.Equal(t, 10, fixture.latte.Amount())
	itemRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestChangeOrderStatusCommandHandler_Handle_FulfillTwice(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)
	require.NoError(t, fixture.order.Fulfill(identity.Staff))

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.Fulfilled,
		"barista1", identity.Staff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAlreadyCompleted)
	assert.Equal(t, 10, fixture.latte.Amount())
}

func TestChangeOrderStatusCommandHandler_Handle_PickupSuccess(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)
	require.NoError(t, fixture.order.Fulfill(identity.Staff))

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.PickedUp,
		"alice", identity.Customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		orderRepo.On("Update", ctx, fixture.order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, fixture.order.Status())
	// Pickup never touches inventory.
	assert.Equal(t, 10, fixture.latte.Amount())
	assert.Equal(t, 10, fixture.espresso.Amount())
}

func TestChangeOrderStatusCommandHandler_Handle_PickupWrongCustomer(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)
	require.NoError(t, fixture.order.Fulfill(identity.Staff))

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.PickedUp,
		"bob", identity.Customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrOwnershipMismatch)
	assert.Equal(t, order.Fulfilled, fixture.order.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_PickupBeforeFulfillment(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.PickedUp,
		"alice", identity.Customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, fixture.order.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_PendingTarget(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)
	require.NoError(t, fixture.order.Fulfill(identity.Staff))

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.Pending,
		"barista1", identity.Staff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Fulfilled, fixture.order.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_CommitConflict(t *testing.T) {
	ctx := t.Context()
	fixture := newTransitionFixture(t)
	require.NoError(t, fixture.order.Fulfill(identity.Staff))

	cmd, err := commands.NewChangeOrderStatusCommand(fixture.order.ID(), order.PickedUp,
		"alice", identity.Customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, fixture.order.ID()).Return(fixture.order, nil).Once(),
		orderRepo.On("Update", ctx, fixture.order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("serialization failure")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "order transition")
}
