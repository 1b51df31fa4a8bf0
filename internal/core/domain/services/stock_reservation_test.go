package services_test

import (
	"testing"

	"cafe/internal/core/domain/model/item"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/tax"
	"cafe/internal/core/domain/services"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, name string, amount int, price float64) *item.Item {
	t.Helper()

	i, err := item.NewItem(kernel.NewUUID(), name, "", amount, price)
	require.NoError(t, err)
	return i
}

func newOrder(t *testing.T, lineSpecs map[*item.Item]int) *order.Order {
	t.Helper()

	lines := make([]order.OrderLine, 0, len(lineSpecs))
	for it, amount := range lineSpecs {
		line, err := order.NewOrderLine(it, amount)
		require.NoError(t, err)
		lines = append(lines, line)
	}

	o, err := order.NewOrder(kernel.NewUUID(), "alice", lines, tax.ZeroRate(), 0)
	require.NoError(t, err)
	return o
}

func itemMap(items ...*item.Item) map[string]*item.Item {
	m := make(map[string]*item.Item, len(items))
	for _, it := range items {
		m[it.ID().String()] = it
	}
	return m
}

func TestStockReservation_Reserve(t *testing.T) {
	reservation := services.NewStockReservation()

	t.Run("decrements stock for every line", func(t *testing.T) {
		latte := newItem(t, "Latte", 10, 3.00)
		espresso := newItem(t, "Espresso", 10, 4.00)
		ord := newOrder(t, map[*item.Item]int{latte: 2, espresso: 1})

		err := reservation.Reserve(ord, itemMap(latte, espresso))

		require.NoError(t, err)
		assert.Equal(t, 8, latte.Amount())
		assert.Equal(t, 9, espresso.Amount())
	})

	t.Run("allows draining an item to zero", func(t *testing.T) {
		latte := newItem(t, "Latte", 2, 3.00)
		ord := newOrder(t, map[*item.Item]int{latte: 2})

		require.NoError(t, reservation.Reserve(ord, itemMap(latte)))
		assert.Equal(t, 0, latte.Amount())
	})

	t.Run("leaves all stock untouched when one line cannot be covered", func(t *testing.T) {
		latte := newItem(t, "Latte", 10, 3.00)
		espresso := newItem(t, "Espresso", 1, 4.00)
		ord := newOrder(t, map[*item.Item]int{latte: 2, espresso: 3})

		err := reservation.Reserve(ord, itemMap(latte, espresso))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInsufficientInventory)

		var invErr *errs.InsufficientInventoryError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, "Espresso", invErr.ItemName)
		assert.Equal(t, 3, invErr.Requested)
		assert.Equal(t, 1, invErr.Available)

		// The covered line was not decremented either.
		assert.Equal(t, 10, latte.Amount())
		assert.Equal(t, 1, espresso.Amount())
	})

	t.Run("fails when a line references a missing item", func(t *testing.T) {
		latte := newItem(t, "Latte", 10, 3.00)
		ord := newOrder(t, map[*item.Item]int{latte: 1})

		err := reservation.Reserve(ord, itemMap())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 10, latte.Amount())
	})

	t.Run("rejects an unconstructed order", func(t *testing.T) {
		err := reservation.Reserve(&order.Order{}, itemMap())

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
